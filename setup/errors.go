package setup

import "fmt"

// E maps setup field names to validation errors.
type E map[string]error

// Error ...
func (e E) Error() string {
	return fmt.Sprintf("%+v", map[string]error(e))
}

// IsEmpty reports whether validation produced no errors.
func (e E) IsEmpty() bool {
	return len(e) == 0
}
