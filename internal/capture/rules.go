package capture

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule binds a positional argument to a name and a pipe-separated rule
// string such as "required|integer|min:1". An empty Rule captures the
// argument without validating it.
type Rule struct {
	Name string `yaml:"name"`
	Rule string `yaml:"rule"`
}

// Rules is ordered: the i-th rule names the i-th argument.
type Rules []Rule

// Names returns the argument names in order.
func (rs Rules) Names() []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	return names
}

// Validate rejects blank and duplicate names.
func (rs Rules) Validate() error {
	seen := make(map[string]bool, len(rs))
	for i, r := range rs {
		if strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("rule %d: name is required", i+1)
		}
		if seen[r.Name] {
			return fmt.Errorf("rule %d: duplicate name %q", i+1, r.Name)
		}
		seen[r.Name] = true
	}
	return nil
}

// ParseRules reads "name=rule" pairs; a bare "name" has no rule.
func ParseRules(pairs []string) (Rules, error) {
	rs := make(Rules, 0, len(pairs))
	for _, p := range pairs {
		name, rule, _ := strings.Cut(p, "=")
		rs = append(rs, Rule{Name: strings.TrimSpace(name), Rule: strings.TrimSpace(rule)})
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

// LoadRules reads a YAML list of {name, rule} entries.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules: %w", err)
	}

	var rs Rules
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules %s: %w", path, err)
	}
	return rs, nil
}
