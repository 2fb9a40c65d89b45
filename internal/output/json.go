package output

import (
	"encoding/json"
	"fmt"
)

// JSON writes v to stdout as indented JSON followed by a newline.
func (r *Renderer) JSON(v any) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	r.state = FreshLine
	return nil
}
