package argument

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"testing"
)

type greeter interface{ Greet() string }

type english struct{ name string }

func (e *english) Greet() string { return "hello " + e.name }

func TestFromAny_JSON(t *testing.T) {
	var raw any
	if err := json.Unmarshal([]byte(`{"n":1,"s":"x","b":true,"l":[1,2.5,null],"o":{"k":"v"}}`), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	m := raw.(map[string]any)
	if v := FromAny(m["n"]); v.Kind() != KindFloat || v.Float() != 1 {
		t.Fatalf("n: %v", v)
	}
	if v := FromAny(m["s"]); v.Kind() != KindString || v.Str() != "x" {
		t.Fatalf("s: %v", v)
	}
	if v := FromAny(m["b"]); v.Kind() != KindBool || !v.Bool() {
		t.Fatalf("b: %v", v)
	}
	l := FromAny(m["l"])
	if l.Kind() != KindArray || l.Len() != 3 || !l.Index(2).IsNull() {
		t.Fatalf("l: %v", l)
	}
	o := FromAny(m["o"])
	if o.Kind() != KindObject || o.Object().Class() != MapClass {
		t.Fatalf("o: %v", o)
	}
	if !reflect.DeepEqual(o.Interface(), map[string]any{"k": "v"}) {
		t.Fatalf("o round trip: %v", o.Interface())
	}
}

func TestFromAny_Numbers(t *testing.T) {
	if v := FromAny(json.Number("12")); v.Kind() != KindInt || v.Int() != 12 {
		t.Fatalf("json int: %v", v)
	}
	if v := FromAny(json.Number("1.5")); v.Kind() != KindFloat || v.Float() != 1.5 {
		t.Fatalf("json float: %v", v)
	}
	if v := FromAny(uint(7)); v.Kind() != KindInt || v.Int() != 7 {
		t.Fatalf("uint: %v", v)
	}
	if v := FromAny(uint64(math.MaxUint64)); v.Kind() != KindFloat || v.Float() != float64(uint64(math.MaxUint64)) {
		t.Fatalf("max uint64: %v", v)
	}
	if v := FromAny(uint64(math.MaxInt64)); v.Kind() != KindInt || v.Int() != math.MaxInt64 {
		t.Fatalf("max int64 as uint64: %v", v)
	}
	d := Import(Param{Name: "n"}, Annotations{"n": {Type: "int"}})
	if got, err := d.Filter(FromAny(uint64(math.MaxUint64)), nil); err == nil {
		t.Fatalf("oversized uint accepted as int: %v", got)
	}
	if v := FromAny([]int{1, 2}); v.Kind() != KindArray || v.Index(1).Int() != 2 {
		t.Fatalf("typed slice: %v", v)
	}
	if v := FromAny([]byte("raw")); v.Kind() != KindString || v.Str() != "raw" {
		t.Fatalf("bytes: %v", v)
	}
}

func TestFromAny_FuncsAndHosts(t *testing.T) {
	if v := FromAny(func() {}); v.Kind() != KindCallable {
		t.Fatalf("func: %v", v)
	}
	var nilFn func()
	if v := FromAny(nilFn); !v.IsNull() {
		t.Fatalf("nil func: %v", v)
	}
	var nilPtr *english
	if v := FromAny(nilPtr); !v.IsNull() {
		t.Fatalf("nil pointer: %v", v)
	}

	v := FromAny(&english{name: "ada"})
	if v.Kind() != KindObject {
		t.Fatalf("host: %v", v)
	}
	cls := ClassOf(reflect.TypeOf(english{}))
	if v.Object().Class() != cls {
		t.Fatalf("class = %s, want %s", v.Object().Class(), cls)
	}
	if !v.Object().InstanceOf(cls) || !v.Object().InstanceOf(`\`+cls) {
		t.Fatalf("expected instance of own class")
	}

	iface := ClassOf(reflect.TypeOf((*greeter)(nil)).Elem())
	if !v.Object().InstanceOf(iface) {
		t.Fatalf("expected %s to implement %s", cls, iface)
	}
	if FromAny(english{}).Object().InstanceOf(iface) {
		t.Fatalf("value receiver type must not implement pointer method set")
	}
	if v.Object().InstanceOf("fmt.Stringer") {
		t.Fatalf("unexpected instance of unrelated interface")
	}
	if _, ok := v.Interface().(*english); !ok {
		t.Fatalf("Interface() should return the host value, got %T", v.Interface())
	}
}

func TestValue_String(t *testing.T) {
	v := List(Int(1), String("a"), Null(), ObjectValue(NewObject("Foo", nil)))
	if got := v.String(); got != `[1, "a", null, object(Foo)]` {
		t.Fatalf("unexpected String(): %s", got)
	}
	if got := fmt.Sprint(Kind(99)); got != "unknown" {
		t.Fatalf("unexpected kind string %s", got)
	}
}
