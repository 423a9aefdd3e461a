// Package casefile loads detective game case definitions from YAML files.
//
// Case authors drop case_<id>.yaml files into a directory. The package
// discovers them, decodes them as plain data, and validates them against the
// case schema, reporting every problem it finds so that authors can fix a
// broken file in one go.
package casefile

import (
	"github.com/myrjola/casefile/internal/errors"
	"gopkg.in/yaml.v3"
	"log/slog"
)

var (
	// ErrEmptyDocument is returned when a case file contains no data.
	ErrEmptyDocument = errors.NewSentinel("empty file")
	// ErrUnsafeContent is returned when a case file uses YAML constructs outside the
	// plain-data subset, e.g. custom tags that would instantiate arbitrary types.
	ErrUnsafeContent = errors.NewSentinel("unsafe content")
)

// maxDepth bounds nesting so that deeply nested or alias-looping documents cannot
// exhaust the stack. Real case files are a handful of levels deep.
const maxDepth = 100

// Parse decodes a case file into a plain-data value.
//
// The result is restricted to six shapes: nil, bool, int64, float64, string,
// []any and map[string]any. Case files come from third-party authors, so any
// YAML construct that would build other types (timestamps, binary blobs,
// custom tags) is rejected with ErrUnsafeContent rather than decoded.
// A file without data returns ErrEmptyDocument.
func Parse(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	value, err := decodeNode(root.Content[0], 0)
	if err != nil {
		return nil, err
	}
	// A document holding a lone null is as empty as a zero-byte file.
	if value == nil {
		return nil, ErrEmptyDocument
	}
	return value, nil
}

func decodeNode(node *yaml.Node, depth int) (any, error) {
	if depth > maxDepth {
		return nil, errors.Wrap(ErrUnsafeContent, "nesting too deep")
	}

	switch node.Kind {
	case yaml.AliasNode:
		return decodeNode(node.Alias, depth+1)

	case yaml.ScalarNode:
		return decodeScalar(node)

	case yaml.SequenceNode:
		if node.Tag != "!!seq" {
			return nil, errors.Wrap(ErrUnsafeContent, "tag not allowed",
				slog.String("tag", node.Tag), slog.Int("line", node.Line))
		}
		seq := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := decodeNode(child, depth+1)
			if err != nil {
				return nil, err
			}
			seq = append(seq, value)
		}
		return seq, nil

	case yaml.MappingNode:
		if node.Tag != "!!map" {
			return nil, errors.Wrap(ErrUnsafeContent, "tag not allowed",
				slog.String("tag", node.Tag), slog.Int("line", node.Line))
		}
		mapping := make(map[string]any, len(node.Content)/2)
		for i := 0; i < len(node.Content)-1; i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind != yaml.ScalarNode || keyNode.Tag != "!!str" {
				return nil, errors.Wrap(ErrUnsafeContent, "mapping keys must be strings",
					slog.String("tag", keyNode.Tag), slog.Int("line", keyNode.Line))
			}
			value, err := decodeNode(node.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			mapping[keyNode.Value] = value
		}
		return mapping, nil

	default:
		return nil, errors.Wrap(ErrUnsafeContent, "unsupported node",
			slog.Int("kind", int(node.Kind)), slog.Int("line", node.Line))
	}
}

func decodeScalar(node *yaml.Node) (any, error) {
	switch node.Tag {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, errors.Wrap(err, "decode bool", slog.Int("line", node.Line))
		}
		return b, nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return nil, errors.Wrap(err, "decode int", slog.Int("line", node.Line))
		}
		return i, nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, errors.Wrap(err, "decode float", slog.Int("line", node.Line))
		}
		return f, nil
	case "!!str":
		return node.Value, nil
	default:
		// Covers !!timestamp, !!binary, !!merge and any local/custom tag.
		return nil, errors.Wrap(ErrUnsafeContent, "tag not allowed",
			slog.String("tag", node.Tag), slog.Int("line", node.Line))
	}
}
