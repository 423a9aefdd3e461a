package casefile

import (
	"fmt"
	"strings"
)

// FieldError describes a single schema violation in a case file.
type FieldError struct {
	// Path names the offending field in dot/bracket notation, e.g. locations[0].id.
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error implements error interface.
func (e FieldError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate checks a plain-data value against the case schema.
//
// It is exhaustive: every violated constraint is reported in one pass so that
// an author can fix all problems in a file at once. Unknown fields are ignored
// so that older game versions keep accepting newer case files.
// On success the returned error list is empty and the Case is complete.
func Validate(value any) (*Case, []FieldError) {
	root, ok := value.(map[string]any)
	if !ok {
		return nil, []FieldError{{Path: "", Message: "case must be a mapping, got " + typeName(value)}}
	}

	var (
		errs []FieldError
		c    Case
	)

	c.ID = requireString(root, "id", &errs)
	c.Title = requireString(root, "title", &errs)

	if raw, ok := root["description"]; ok && raw != nil {
		if s, ok := raw.(string); ok {
			c.Description = s
		} else {
			errs = append(errs, FieldError{Path: "description", Message: "must be a string, got " + typeName(raw)})
		}
	}

	for _, raw := range requireSequence(root, "locations", &errs) {
		c.Locations = append(c.Locations, validateLocation(raw.path, raw.value, &errs))
	}
	for _, raw := range requireSequence(root, "witnesses", &errs) {
		c.Witnesses = append(c.Witnesses, requireRecord(raw.path, raw.value, &errs))
	}
	for _, raw := range requireSequence(root, "evidence", &errs) {
		c.Evidence = append(c.Evidence, requireRecord(raw.path, raw.value, &errs))
	}

	c.Solution = validateSolution(root, &errs)

	if len(errs) != 0 {
		return nil, errs
	}
	return &c, nil
}

// element pairs a sequence entry with its field path for error reporting.
type element struct {
	path  string
	value any
}

func requireString(mapping map[string]any, key string, errs *[]FieldError) string {
	raw, ok := mapping[key]
	if !ok || raw == nil {
		*errs = append(*errs, FieldError{Path: key, Message: "required field is missing"})
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		*errs = append(*errs, FieldError{Path: key, Message: "must be a string, got " + typeName(raw)})
		return ""
	}
	if strings.TrimSpace(s) == "" {
		*errs = append(*errs, FieldError{Path: key, Message: "must not be empty"})
	}
	return s
}

func requireSequence(mapping map[string]any, key string, errs *[]FieldError) []element {
	raw, ok := mapping[key]
	if !ok || raw == nil {
		*errs = append(*errs, FieldError{Path: key, Message: "required field is missing"})
		return nil
	}
	seq, ok := raw.([]any)
	if !ok {
		*errs = append(*errs, FieldError{Path: key, Message: "must be a sequence, got " + typeName(raw)})
		return nil
	}
	if len(seq) == 0 {
		*errs = append(*errs, FieldError{Path: key, Message: "must contain at least one entry"})
		return nil
	}
	elements := make([]element, len(seq))
	for i, v := range seq {
		elements[i] = element{path: fmt.Sprintf("%s[%d]", key, i), value: v}
	}
	return elements
}

func requireRecord(path string, value any, errs *[]FieldError) Record {
	mapping, ok := value.(map[string]any)
	if !ok {
		*errs = append(*errs, FieldError{Path: path, Message: "must be a mapping, got " + typeName(value)})
		return nil
	}
	return Record(mapping)
}

func validateLocation(path string, value any, errs *[]FieldError) Location {
	var loc Location
	mapping, ok := value.(map[string]any)
	if !ok {
		*errs = append(*errs, FieldError{Path: path, Message: "must be a mapping, got " + typeName(value)})
		return loc
	}

	before := len(*errs)
	loc.ID = requireString(mapping, "id", errs)
	loc.Title = requireString(mapping, "title", errs)
	loc.Description = requireString(mapping, "description", errs)
	// Prefix the errors reported by requireString with the location's path.
	for i := before; i < len(*errs); i++ {
		(*errs)[i].Path = path + "." + (*errs)[i].Path
	}

	if loc.ID != "" && loc.ID != strings.ToLower(loc.ID) {
		*errs = append(*errs, FieldError{Path: path + ".id", Message: fmt.Sprintf("must be lowercase, got %q", loc.ID)})
	}
	return loc
}

func validateSolution(root map[string]any, errs *[]FieldError) Record {
	raw, ok := root["solution"]
	if !ok || raw == nil {
		*errs = append(*errs, FieldError{Path: "solution", Message: "required field is missing"})
		return nil
	}
	mapping, ok := raw.(map[string]any)
	if !ok {
		*errs = append(*errs, FieldError{Path: "solution", Message: "must be a mapping, got " + typeName(raw)})
		return nil
	}
	if culprit, ok := mapping["culprit"]; !ok || culprit == nil {
		*errs = append(*errs, FieldError{Path: "solution.culprit", Message: "required field is missing"})
	}
	return Record(mapping)
}

// typeName names a plain-data shape for error messages using YAML vocabulary
// rather than Go type names.
func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case int64, float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "sequence"
	case map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", value)
	}
}
