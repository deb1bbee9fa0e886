package argument

import (
	"errors"
	"reflect"
	"testing"
)

func TestToType_IdentityForNativeScalars(t *testing.T) {
	cases := []struct {
		typ string
		v   Value
	}{
		{"int", Int(42)},
		{"float", Float(2.5)},
		{"bool", Bool(true)},
		{"string", String("hello")},
	}
	for _, tc := range cases {
		typ, v := tc.typ, tc.v
		got, err := importDoc(typ).ToType(v, nil)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", typ, err)
		}
		if !reflect.DeepEqual(got, v) {
			t.Fatalf("%s: identity coercion changed value: %v -> %v", typ, v, got)
		}
	}
}

func TestToType_Int(t *testing.T) {
	d := importDoc("int")
	ok := []struct {
		in   Value
		want int64
	}{
		{String("2"), 2},
		{String(" -17 "), -17},
		{String("3.9"), 3},
		{String("1e3"), 1000},
		{Float(3.0), 3},
		{Float(-2.7), -2},
	}
	for _, tc := range ok {
		in, want := tc.in, tc.want
		got, err := d.ToType(in, nil)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", in, err)
		}
		if got.Kind() != KindInt || got.Int() != want {
			t.Fatalf("%v: got %v want %d", in, got, want)
		}
	}
	for _, in := range []Value{String("x"), String(""), String("0x1A"), Bool(true), Null(), Float(1e300), String("NaN")} {
		if _, err := d.ToType(in, nil); !errors.Is(err, ErrTypeCasting) {
			t.Fatalf("%v: expected type casting error, got %v", in, err)
		}
	}
}

func TestToType_Float(t *testing.T) {
	d := importDoc("float")
	got, err := d.ToType(String("1.25"), nil)
	if err != nil || got.Kind() != KindFloat || got.Float() != 1.25 {
		t.Fatalf("unexpected: %v %v", got, err)
	}
	got, err = d.ToType(Int(4), nil)
	if err != nil || got.Kind() != KindFloat || got.Float() != 4 {
		t.Fatalf("unexpected: %v %v", got, err)
	}
	if _, err := d.ToType(String("abc"), nil); err == nil {
		t.Fatalf("expected error for non-numeric string")
	}
}

func TestToType_BoolAndString(t *testing.T) {
	b := importDoc("bool")
	for _, tc := range []struct {
		in   Value
		want bool
	}{
		{Int(0), false}, {Int(5), true}, {String(""), false}, {String("0"), false},
		{String("false"), true}, {Float(0), false}, {Null(), false},
	} {
		in, want := tc.in, tc.want
		got, err := b.ToType(in, nil)
		if err != nil || got.Kind() != KindBool || got.Bool() != want {
			t.Fatalf("bool(%v): got %v err %v", in, got, err)
		}
	}

	s := importDoc("string")
	for _, tc := range []struct {
		in   Value
		want string
	}{
		{Int(12), "12"}, {Bool(true), "1"}, {Bool(false), ""}, {Float(1.5), "1.5"}, {Float(3), "3"}, {Null(), ""},
		{Float(1.5e-5), "1.5E-5"}, {Float(1e20), "1.0E+20"}, {Float(-2.5e-300), "-2.5E-300"}, {Float(0.1), "0.1"},
	} {
		in, want := tc.in, tc.want
		got, err := s.ToType(in, nil)
		if err != nil || got.Kind() != KindString || got.Str() != want {
			t.Fatalf("string(%v): got %v err %v", in, got, err)
		}
	}
}

func TestToType_ComplexNeverBecomesScalar(t *testing.T) {
	complexes := []Value{
		List(Int(1)),
		ObjectValue(NewObject("Foo", nil)),
		Callable(func() {}),
		Resource(struct{}{}),
	}
	for _, typ := range []string{"int", "float", "bool", "string", "array", "null"} {
		d := importDoc(typ)
		for _, v := range complexes {
			if _, err := d.ToType(v, nil); !errors.Is(err, ErrTypeCasting) {
				t.Fatalf("%s <- %v: expected type casting error, got %v", typ, v, err)
			}
		}
	}
}

func TestToType_Callable(t *testing.T) {
	d := importDoc("callable")
	fn := Callable(func(int) int { return 0 })
	if got, err := d.ToType(fn, nil); err != nil || got.Kind() != KindCallable {
		t.Fatalf("unexpected: %v %v", got, err)
	}
	if _, err := d.ToType(String("strlen"), nil); !errors.Is(err, ErrTypeCasting) {
		t.Fatalf("expected type casting error, got %v", err)
	}
}

func TestToType_Object(t *testing.T) {
	d := importDoc(`\Foo\Bar`)
	inst := ObjectValue(NewObject(`Foo\Bar`, nil))
	if got, err := d.ToType(inst, nil); err != nil || got.Object() != inst.Object() {
		t.Fatalf("instance must pass through unchanged: %v %v", got, err)
	}

	raw := String("payload")
	var cerr *TypeCastingError
	if _, err := d.ToType(raw, nil); !errors.As(err, &cerr) || cerr.Param != d || cerr.Actual != "string" {
		t.Fatalf("expected attributable type casting error, got %v", err)
	}

	var gotClass string
	creator := func(class string, v Value) (Value, error) {
		gotClass = class
		return ObjectValue(NewObject(class, v.Str())), nil
	}
	got, err := d.ToType(raw, creator)
	if err != nil {
		t.Fatalf("creator path failed: %v", err)
	}
	if gotClass != `Foo\Bar` || !got.Object().InstanceOf(`\Foo\Bar`) {
		t.Fatalf("unexpected creator result: %q %v", gotClass, got)
	}

	boom := errors.New("boom")
	if _, err := d.ToType(raw, func(string, Value) (Value, error) { return Value{}, boom }); err != boom {
		t.Fatalf("creator error must propagate unchanged, got %v", err)
	}
}

func TestToType_ArrayNullResource(t *testing.T) {
	got, err := importDoc("array").ToType(Int(1), nil)
	if err != nil || got.Kind() != KindArray || got.Len() != 1 || got.Index(0).Int() != 1 {
		t.Fatalf("array wrap: %v %v", got, err)
	}
	got, err = importDoc("array").ToType(Null(), nil)
	if err != nil || got.Kind() != KindArray || got.Len() != 0 {
		t.Fatalf("array from null: %v %v", got, err)
	}
	got, err = importDoc("null").ToType(String("x"), nil)
	if err != nil || !got.IsNull() {
		t.Fatalf("null: %v %v", got, err)
	}
	if _, err := importDoc("resource").ToType(String("x"), nil); !errors.Is(err, ErrTypeCasting) {
		t.Fatalf("resource: expected type casting error, got %v", err)
	}
}

func TestToType_UntypedPassThrough(t *testing.T) {
	d := importDoc("mixed")
	v := List(String("a"))
	got, err := d.ToType(v, nil)
	if err != nil || got.Len() != 1 {
		t.Fatalf("unexpected: %v %v", got, err)
	}
}
