package casefile

import (
	"context"
	"fmt"
	"github.com/myrjola/casefile/internal/errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by LoadOne when no case file exists for the identifier.
var ErrNotFound = errors.NewSentinel("case not found")

// CaseError is the structured failure payload for a single case: the case
// identifier together with everything wrong in its file.
type CaseError struct {
	ID          string       `json:"id"`
	FieldErrors []FieldError `json:"field_errors"`
}

// Error implements error interface.
func (e *CaseError) Error() string {
	messages := make([]string, len(e.FieldErrors))
	for i, fieldErr := range e.FieldErrors {
		messages[i] = fieldErr.Error()
	}
	return fmt.Sprintf("case %s: %s", e.ID, strings.Join(messages, "; "))
}

// Loader runs the case ingestion pipeline: discover files, parse them as plain
// data, and validate them against the case schema.
type Loader struct {
	logger *slog.Logger
}

func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{
		logger: logger.With("source", "Loader"),
	}
}

// Load ingests every case file in dir.
//
// It returns the validated cases and one error string per failed file, both in
// file-sorted order. A bad file never blocks the rest of the batch: failures
// at any stage downgrade to an entry in the error list. When case files reuse
// an id, the first file in sorted order wins and later ones are reported as
// errors. Whether an all-failed batch is a hard failure is the caller's call.
func (l *Loader) Load(ctx context.Context, dir string) ([]Case, []string) {
	files, err := Discover(dir)
	if err != nil {
		l.logger.LogAttrs(ctx, slog.LevelWarn, "case directory unreadable",
			slog.String("dir", dir), errors.SlogError(err))
		return nil, []string{fmt.Sprintf("%s: %s", dir, err)}
	}

	var (
		cases      []Case
		errStrings []string
		seen       = make(map[string]string)
	)
	for _, name := range files {
		c, err := l.loadFile(dir, name)
		if err != nil {
			errStrings = append(errStrings, fmt.Sprintf("%s: %s", name, err))
			l.logger.LogAttrs(ctx, slog.LevelDebug, "case file rejected",
				slog.String("file", name), errors.SlogError(err))
			continue
		}
		if firstFile, ok := seen[c.ID]; ok {
			errStrings = append(errStrings,
				fmt.Sprintf("%s: id: duplicate case id %q, already defined in %s", name, c.ID, firstFile))
			continue
		}
		seen[c.ID] = name
		cases = append(cases, *c)
	}

	l.logger.LogAttrs(ctx, slog.LevelInfo, "loaded cases",
		slog.String("dir", dir), slog.Int("cases", len(cases)), slog.Int("errors", len(errStrings)))

	return cases, errStrings
}

// LoadOne ingests the single case file named after the identifier,
// i.e. case_<id>.yaml.
//
// It returns ErrNotFound when no such file exists and a *CaseError when the
// file fails parsing or validation.
func (l *Loader) LoadOne(ctx context.Context, dir string, id string) (*Case, error) {
	// The identifier becomes part of a file name, so keep path traversal out.
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return nil, ErrNotFound
	}

	name := fmt.Sprintf("case_%s.yaml", id)
	c, err := l.loadFile(dir, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}

		var fieldErrs validationFailure
		if errors.As(err, &fieldErrs) {
			return nil, &CaseError{ID: id, FieldErrors: fieldErrs}
		}
		// Parse and read failures carry no field path.
		l.logger.LogAttrs(ctx, slog.LevelDebug, "case file rejected",
			slog.String("file", name), errors.SlogError(err))
		return nil, &CaseError{ID: id, FieldErrors: []FieldError{{Path: "", Message: err.Error()}}}
	}
	return c, nil
}

// validationFailure carries the field errors of a rejected case through the
// error return of loadFile.
type validationFailure []FieldError

func (v validationFailure) Error() string {
	messages := make([]string, len(v))
	for i, fieldErr := range v {
		messages[i] = fieldErr.Error()
	}
	return strings.Join(messages, "; ")
}

func (l *Loader) loadFile(dir string, name string) (*Case, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}
	value, err := Parse(data)
	if err != nil {
		return nil, err
	}
	c, fieldErrs := Validate(value)
	if len(fieldErrs) != 0 {
		return nil, validationFailure(fieldErrs)
	}
	return c, nil
}
