package capture

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Failure is one validation message for one argument.
type Failure struct {
	Name    string
	Message string
}

// Validator checks captured arguments against their rules. Values are nil
// when the argument was not supplied.
type Validator interface {
	Validate(args map[string]*string, rules Rules) []Failure
}

// DefaultValidator understands required, numeric, integer, alpha, alpha_num,
// min:N, max:N and in:a,b,c. min and max compare numbers when the rule also
// says numeric or integer, and string length otherwise. Rules other than
// required are skipped for missing or empty values.
type DefaultValidator struct{}

// Validate implements Validator.
func (DefaultValidator) Validate(args map[string]*string, rules Rules) []Failure {
	var failures []Failure
	for _, rule := range rules {
		for _, msg := range checkOne(rule.Name, args[rule.Name], splitRule(rule.Rule)) {
			failures = append(failures, Failure{Name: rule.Name, Message: msg})
		}
	}
	return failures
}

// knownRules is checked whether or not a value was given, so a misspelled
// rule on an omitted argument is still reported.
var knownRules = map[string]bool{
	"required":  true,
	"numeric":   true,
	"integer":   true,
	"alpha":     true,
	"alpha_num": true,
	"min":       true,
	"max":       true,
	"in":        true,
}

type clause struct {
	name  string
	param string
}

func splitRule(rule string) []clause {
	var out []clause
	for _, part := range strings.Split(rule, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, param, _ := strings.Cut(part, ":")
		out = append(out, clause{name: strings.ToLower(name), param: param})
	}
	return out
}

func checkOne(name string, value *string, clauses []clause) []string {
	var msgs []string

	present := value != nil && strings.TrimSpace(*value) != ""
	numericCtx := false
	for _, c := range clauses {
		if c.name == "numeric" || c.name == "integer" {
			numericCtx = true
		}
	}

	for _, c := range clauses {
		if !knownRules[c.name] {
			msgs = append(msgs, fmt.Sprintf("The %s has an unknown rule %q.", name, c.name))
			continue
		}
		if c.name == "required" {
			if !present {
				msgs = append(msgs, fmt.Sprintf("The %s field is required.", name))
			}
			continue
		}
		if !present {
			continue
		}

		v := *value
		switch c.name {
		case "numeric":
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				msgs = append(msgs, fmt.Sprintf("The %s must be a number.", name))
			}
		case "integer":
			if _, err := strconv.Atoi(v); err != nil {
				msgs = append(msgs, fmt.Sprintf("The %s must be an integer.", name))
			}
		case "alpha":
			if !allRunes(v, unicode.IsLetter) {
				msgs = append(msgs, fmt.Sprintf("The %s may only contain letters.", name))
			}
		case "alpha_num":
			if !allRunes(v, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) {
				msgs = append(msgs, fmt.Sprintf("The %s may only contain letters and numbers.", name))
			}
		case "min", "max":
			if msg := checkBound(name, v, c, numericCtx); msg != "" {
				msgs = append(msgs, msg)
			}
		case "in":
			options := strings.Split(c.param, ",")
			if !contains(options, v) {
				msgs = append(msgs, fmt.Sprintf("The selected %s is invalid (expected one of: %s).", name, strings.Join(options, ", ")))
			}
		}
	}
	return msgs
}

func checkBound(name, v string, c clause, numericCtx bool) string {
	limit, err := strconv.ParseFloat(c.param, 64)
	if err != nil {
		return fmt.Sprintf("The %s rule %s needs a numeric parameter, got %q.", name, c.name, c.param)
	}

	size := float64(utf8.RuneCountInString(v))
	unit := " characters"
	if numericCtx {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			// reported by numeric/integer
			return ""
		}
		size = n
		unit = ""
	}

	if c.name == "min" && size < limit {
		return fmt.Sprintf("The %s must be at least %s%s.", name, c.param, unit)
	}
	if c.name == "max" && size > limit {
		return fmt.Sprintf("The %s may not be greater than %s%s.", name, c.param, unit)
	}
	return ""
}

func allRunes(s string, ok func(rune) bool) bool {
	for _, r := range s {
		if !ok(r) {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
