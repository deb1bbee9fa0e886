package rules

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ggoodman/smartinvoker-go/argument"
)

func TestRegistry_CaseInsensitiveLookup(t *testing.T) {
	r := NewRegistry().
		RegisterBool("minLength", func(v argument.Value, args []argument.Value) bool {
			return len(v.Str()) >= int(args[0].Int())
		})
	for _, name := range []string{"minLength", "minlength", "MINLENGTH"} {
		fn, ok := r.Rule(name)
		if !ok {
			t.Fatalf("expected rule %s", name)
		}
		pass, err := fn(argument.String("abc"), []argument.Value{argument.Int(2)})
		if err != nil || !pass {
			t.Fatalf("unexpected outcome: %v %v", pass, err)
		}
	}
	if _, ok := r.Rule("maxLength"); ok {
		t.Fatalf("unexpected rule")
	}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"minLength"}) {
		t.Fatalf("Names() = %v", got)
	}
}

func TestRegistry_IgnoresEmpty(t *testing.T) {
	r := NewRegistry().Register("", func(argument.Value, []argument.Value) (bool, error) { return true, nil }).Register("x", nil)
	if len(r.Names()) != 0 {
		t.Fatalf("expected empty registry, got %v", r.Names())
	}
}

type checks struct{ limit int64 }

func (c checks) Max(v argument.Value, _ []argument.Value) bool { return v.Int() <= c.limit }

func (c checks) Lookup(v argument.Value, _ []argument.Value) (bool, error) {
	if v.Str() == "" {
		return false, errors.New("empty key")
	}
	return true, nil
}

func (c checks) Helper() string { return "not a rule" }

func TestFromMethods(t *testing.T) {
	r, err := FromMethods(checks{limit: 10})
	if err != nil {
		t.Fatalf("FromMethods: %v", err)
	}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"Lookup", "Max"}) {
		t.Fatalf("Names() = %v", got)
	}
	maxRule, ok := r.Rule("max")
	if !ok {
		t.Fatalf("expected max rule")
	}
	if pass, _ := maxRule(argument.Int(11), nil); pass {
		t.Fatalf("expected 11 to exceed limit")
	}
	lookup, _ := r.Rule("lookup")
	if _, err := lookup(argument.String(""), nil); err == nil {
		t.Fatalf("expected lookup error")
	}
}

func TestFromMethods_NoRules(t *testing.T) {
	if _, err := FromMethods(struct{}{}); err == nil {
		t.Fatalf("expected error for receiver without rule methods")
	}
	if _, err := FromMethods(nil); err == nil {
		t.Fatalf("expected error for nil receiver")
	}
}

func TestRegistry_DrivesFilter(t *testing.T) {
	r := NewRegistry().RegisterBool("min", func(v argument.Value, args []argument.Value) bool {
		return v.Int() >= args[0].Int()
	})
	d := argument.Import(argument.Param{Name: "n"}, argument.Annotations{
		"n": {Type: "int", Rules: []argument.Rule{{Name: "min", Args: []argument.Value{argument.Int(5)}}}},
	})
	_, err := d.Filter(argument.Int(3), r)
	var verr *argument.ValidationError
	if !errors.As(err, &verr) || verr.Rule != "min" {
		t.Fatalf("expected min to reject, got %v", err)
	}
	if _, err := d.Filter(argument.String("8"), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
