package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func str(s string) *string { return &s }

func TestDefaultValidator(t *testing.T) {
	tests := []struct {
		name  string
		rule  string
		value *string
		want  []string
	}{
		{"required_missing", "required", nil, []string{"The x field is required."}},
		{"required_blank", "required", str("  "), []string{"The x field is required."}},
		{"required_ok", "required", str("a"), nil},
		{"optional_missing_skips", "integer|min:3", nil, nil},
		{"numeric_ok", "numeric", str("-1.5"), nil},
		{"numeric_bad", "numeric", str("1,5"), []string{"The x must be a number."}},
		{"integer_bad", "integer", str("1.5"), []string{"The x must be an integer."}},
		{"alpha_ok", "alpha", str("Zo\u00eb"), nil},
		{"alpha_bad", "alpha", str("a1"), []string{"The x may only contain letters."}},
		{"alpha_num_bad", "alpha_num", str("a-1"), []string{"The x may only contain letters and numbers."}},
		{"min_numeric", "integer|min:10", str("9"), []string{"The x must be at least 10."}},
		{"max_numeric", "numeric|max:1", str("1.01"), []string{"The x may not be greater than 1."}},
		{"min_length", "min:3", str("ab"), []string{"The x must be at least 3 characters."}},
		{"max_length_runes", "max:2", str("✓✓"), nil},
		{"bound_needs_number", "min:abc", str("a"), []string{`The x rule min needs a numeric parameter, got "abc".`}},
		{"in_ok", "in:a,b", str("b"), nil},
		{"in_bad", "in:a,b", str("c"), []string{"The selected x is invalid (expected one of: a, b)."}},
		{"unknown_rule", "uuid", str("a"), []string{`The x has an unknown rule "uuid".`}},
		{"unknown_rule_missing", "uuid", nil, []string{`The x has an unknown rule "uuid".`}},
		{"unknown_rule_beside_required", "required|uuid", nil, []string{
			"The x field is required.",
			`The x has an unknown rule "uuid".`,
		}},
		{"case_and_spaces", " Required | INTEGER ", str("4"), nil},
		{"several", "required|integer|in:1,2", str("q"), []string{
			"The x must be an integer.",
			"The selected x is invalid (expected one of: 1, 2).",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failures := DefaultValidator{}.Validate(
				map[string]*string{"x": tt.value},
				Rules{{Name: "x", Rule: tt.rule}},
			)
			var got []string
			for _, f := range failures {
				assert.Equal(t, "x", f.Name)
				got = append(got, f.Message)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
