package validation

import (
	"fmt"

	"github.com/ggoodman/smartinvoker-go/argument"
)

// Signature checks that params describe one well-formed parameter list:
// non-empty unique names, positions 0..n-1 in order, and all belonging to the
// same method.
func Signature(method string, params []*argument.Descriptor) error {
	seen := map[string]struct{}{}
	for i, p := range params {
		if p == nil {
			return fmt.Errorf("parameter %d is nil", i)
		}
		if p.Name() == "" {
			return fmt.Errorf("parameter %d has no name", i)
		}
		if _, dup := seen[p.Name()]; dup {
			return fmt.Errorf("duplicate parameter name: %s", p.Name())
		}
		seen[p.Name()] = struct{}{}
		if p.Position() != i {
			return fmt.Errorf("parameter %s at position %d, want %d", p.Name(), p.Position(), i)
		}
		if p.Method() != "" && p.Method() != method {
			return fmt.Errorf("parameter %s belongs to %s, not %s", p.Name(), p.Method(), method)
		}
	}
	return nil
}
