package casefile_test

import (
	"github.com/myrjola/casefile/internal/casefile"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    any
		wantErr error
	}{
		{
			name:    "empty file",
			input:   "",
			wantErr: casefile.ErrEmptyDocument,
		},
		{
			name:    "only comments and whitespace",
			input:   "# a case file without content\n\n",
			wantErr: casefile.ErrEmptyDocument,
		},
		{
			name:    "lone null",
			input:   "null\n",
			wantErr: casefile.ErrEmptyDocument,
		},
		{
			name:  "scalars decode to plain data",
			input: "id: rue-morgue\nfloor: 4\ntemperature: 19.5\nlocked: true\nnote: null\n",
			want: map[string]any{
				"id":          "rue-morgue",
				"floor":       int64(4),
				"temperature": 19.5,
				"locked":      true,
				"note":        nil,
			},
		},
		{
			name:  "nested sequences and mappings",
			input: "locations:\n  - id: attic\n    witnesses: [one, two]\n",
			want: map[string]any{
				"locations": []any{
					map[string]any{
						"id":        "attic",
						"witnesses": []any{"one", "two"},
					},
				},
			},
		},
		{
			name:  "aliases are resolved",
			input: "culprit: &c sailor\nsolution:\n  culprit: *c\n",
			want: map[string]any{
				"culprit": "sailor",
				"solution": map[string]any{
					"culprit": "sailor",
				},
			},
		},
		{
			name:    "timestamps are not plain data",
			input:   "discovered: 2026-08-29\n",
			wantErr: casefile.ErrUnsafeContent,
		},
		{
			name:    "binary is not plain data",
			input:   "photo: !!binary aGVsbG8=\n",
			wantErr: casefile.ErrUnsafeContent,
		},
		{
			name:    "custom tags are rejected",
			input:   "payload: !!python/object/apply:os.system [\"true\"]\n",
			wantErr: casefile.ErrUnsafeContent,
		},
		{
			name:    "local tags are rejected",
			input:   "payload: !inject {}\n",
			wantErr: casefile.ErrUnsafeContent,
		},
		{
			name:    "merge keys are rejected",
			input:   "base: &b\n  id: attic\nlocation:\n  <<: *b\n",
			wantErr: casefile.ErrUnsafeContent,
		},
		{
			name:    "non-string mapping keys are rejected",
			input:   "1: first\n",
			wantErr: casefile.ErrUnsafeContent,
		},
		{
			name:    "malformed yaml",
			input:   "id: [unclosed\n",
			wantErr: nil, // any parse error will do, asserted below
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := casefile.Parse([]byte(tt.input))

			if tt.want != nil {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			require.Nil(t, got, "no value should be produced on failure")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
