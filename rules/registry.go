// Package rules resolves validation rule names to implementations. It does
// not ship any rules of its own; applications register theirs at startup and
// hand the registry to argument filtering as the validator context.
package rules

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/ggoodman/smartinvoker-go/argument"
)

// Registry is a threadsafe argument.Validator backed by a name -> rule map.
// Names are matched case-insensitively.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]entry
}

type entry struct {
	name string // as registered
	fn   argument.RuleFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]entry)}
}

// Register adds or replaces the rule stored under name. It returns the
// registry to allow chaining during setup.
func (r *Registry) Register(name string, fn argument.RuleFunc) *Registry {
	if name == "" || fn == nil {
		return r
	}
	r.mu.Lock()
	r.rules[strings.ToLower(name)] = entry{name: name, fn: fn}
	r.mu.Unlock()
	return r
}

// RegisterBool adds a rule that cannot fail other than by rejecting.
func (r *Registry) RegisterBool(name string, fn func(value argument.Value, args []argument.Value) bool) *Registry {
	if fn == nil {
		return r
	}
	return r.Register(name, func(v argument.Value, args []argument.Value) (bool, error) {
		return fn(v, args), nil
	})
}

// Rule implements argument.Validator.
func (r *Registry) Rule(name string) (argument.RuleFunc, bool) {
	r.mu.RLock()
	e, ok := r.rules[strings.ToLower(name)]
	r.mu.RUnlock()
	return e.fn, ok
}

// Names returns the registered rule names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.rules))
	for _, e := range r.rules {
		out = append(out, e.name)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

var (
	valueType = reflect.TypeOf(argument.Value{})
	argsType  = reflect.TypeOf([]argument.Value(nil))
	boolType  = reflect.TypeOf(true)
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// FromMethods builds a registry from the exported methods of obj. A method
// qualifies when its signature is
//
//	func(argument.Value, []argument.Value) (bool, error)
//	func(argument.Value, []argument.Value) bool
//
// and is registered under its own name, so a rule "min" resolves to a
// method "Min". Other methods are ignored. An error is returned when obj
// exposes no qualifying method.
func FromMethods(obj any) (*Registry, error) {
	if obj == nil {
		return nil, fmt.Errorf("rules: nil receiver")
	}
	rv := reflect.ValueOf(obj)
	rt := rv.Type()
	reg := NewRegistry()
	for i := 0; i < rt.NumMethod(); i++ {
		m := rt.Method(i)
		mv := rv.Method(i)
		mt := mv.Type()
		if mt.NumIn() != 2 || mt.In(0) != valueType || mt.In(1) != argsType {
			continue
		}
		switch {
		case mt.NumOut() == 2 && mt.Out(0) == boolType && mt.Out(1) == errorType:
			fn := mv.Interface().(func(argument.Value, []argument.Value) (bool, error))
			reg.Register(m.Name, fn)
		case mt.NumOut() == 1 && mt.Out(0) == boolType:
			fn := mv.Interface().(func(argument.Value, []argument.Value) bool)
			reg.RegisterBool(m.Name, fn)
		}
	}
	if len(reg.rules) == 0 {
		return nil, fmt.Errorf("rules: %T exposes no rule methods", obj)
	}
	return reg, nil
}

var _ argument.Validator = (*Registry)(nil)
