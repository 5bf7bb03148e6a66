package decoders_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/reoring/decoders"
	"github.com/reoring/decoders/i18n"
)

func TestString_AcceptsOnlyStrings(t *testing.T) {
	inputs := []any{"", "x", 1, 1.5, true, nil, decoders.Undefined, []any{"a"}, map[string]any{}, json.Number("1")}
	for _, in := range inputs {
		r := decoders.String(in)
		_, isString := in.(string)
		if r.IsOk() != isString {
			t.Fatalf("String(%#v).IsOk() = %v", in, r.IsOk())
		}
		if isString {
			if r.MustGet() != in {
				t.Fatalf("String(%#v) changed the value", in)
			}
		} else if de, _ := r.Failure(); de.Message != "Not a string" {
			t.Fatalf("String(%#v) message = %q", in, de.Message)
		}
	}
}

func TestNumber(t *testing.T) {
	if r := decoders.Number(math.NaN()); r.IsOk() {
		t.Fatalf("NaN must be rejected")
	}
	if v := decoders.Number(42).MustGet(); v != 42 {
		t.Fatalf("Number(42) = %v", v)
	}
	accepted := []any{int8(-1), uint64(7), float32(1.5), json.Number("3.25"), math.Inf(1)}
	for _, in := range accepted {
		if !decoders.Number(in).IsOk() {
			t.Fatalf("Number(%#v) should succeed", in)
		}
	}
	rejected := []any{"42", json.Number("abc"), nil, true, decoders.Undefined}
	for _, in := range rejected {
		r := decoders.Number(in)
		if de, failed := r.Failure(); !failed || de.Message != "Not a number" {
			t.Fatalf("Number(%#v) = %v", in, r)
		}
	}
}

// Boolean converts by truthiness and never fails. This leniency is relied on
// by callers and is kept on purpose.
func TestBoolean_NeverFails(t *testing.T) {
	cases := []struct {
		in   any
		want bool
	}{
		{0, false},
		{"x", true},
		{"", false},
		{nil, false},
		{decoders.Undefined, false},
		{math.NaN(), false},
		{json.Number("0"), false},
		{true, true},
		{false, false},
		{-1, true},
		{[]any{}, true},
		{map[string]any{}, true},
	}
	for _, c := range cases {
		r := decoders.Boolean(c.in)
		if !r.IsOk() {
			t.Fatalf("Boolean(%#v) failed", c.in)
		}
		if got := r.MustGet(); got != c.want {
			t.Fatalf("Boolean(%#v) = %v want %v", c.in, got, c.want)
		}
	}
}

func TestLiteral(t *testing.T) {
	one := decoders.Literal(1)
	if one(1).MustGet() != 1 || !one(json.Number("1")).IsOk() || !one(1.0).IsOk() {
		t.Fatalf("numeric literal should match equal numbers of any kind")
	}
	r := one("1")
	if de, failed := r.Failure(); !failed || de.Message != "Does not match literal value" {
		t.Fatalf(`Literal(1)("1") = %v`, r)
	}
	s := decoders.Literal("boolean")
	if !s("boolean").IsOk() || s("Boolean").IsOk() || s(decoders.Undefined).IsOk() {
		t.Fatalf("string literal mismatch")
	}
}

type level int

func TestEnumValue_BidirectionalLookup(t *testing.T) {
	d := decoders.EnumValue(map[string]level{"A": 1, "B": 2})
	byValue := d(1)
	byName := d("A")
	if byValue.MustGet() != 1 || byName.MustGet() != 1 {
		t.Fatalf("expected both 1 and \"A\" to decode to 1: %v %v", byValue, byName)
	}
	if r := d(3); r.IsOk() {
		t.Fatalf("unexpected success for 3")
	} else if de, _ := r.Failure(); de.Message != "Not an enum value" {
		t.Fatalf("message = %q", de.Message)
	}
	// the text of a numeric value resolves like the reverse key of an enum map
	if r := d("1"); !r.IsOk() || r.MustGet() != 1 {
		t.Fatalf(`expected "1" to decode to 1, got %v`, r)
	}
	if d("3").IsOk() || d("a").IsOk() {
		t.Fatalf("unknown keys must be rejected")
	}
}

func TestEnumValue_FractionalValueText(t *testing.T) {
	d := decoders.EnumValue(map[string]float64{"Half": 0.5})
	if r := d("0.5"); !r.IsOk() || r.MustGet() != 0.5 {
		t.Fatalf(`expected "0.5" to decode to 0.5, got %v`, r)
	}
}

type label string

func TestNamedStringTypes_ConsistentAcrossDecoders(t *testing.T) {
	in := label("x")
	if decoders.String(in).IsOk() {
		t.Fatalf("String accepts only plain strings")
	}
	if decoders.Literal("x")(in).IsOk() {
		t.Fatalf("Literal must agree with String on what a string is")
	}
	if decoders.EnumValue(map[string]string{"X": "x"})(in).IsOk() {
		t.Fatalf("EnumValue must agree with String on what a string is")
	}
	if decoders.Literal(label("x"))("x").MustGet() != label("x") {
		t.Fatalf("named literal values still match plain strings")
	}
}

func TestMessages_FollowActiveLanguage(t *testing.T) {
	t.Cleanup(func() { i18n.SetLanguage("en") })
	if de, _ := decoders.String(1).Failure(); de.Message != "Not a string" {
		t.Fatalf("en message = %q", de.Message)
	}
	i18n.SetLanguage("ja")
	if de, _ := decoders.String(1).Failure(); de.Message == "Not a string" {
		t.Fatalf("message must be resolved when the decoder fails, got %q", de.Message)
	}
}

func TestEnumValue_StringMembers(t *testing.T) {
	d := decoders.EnumValue(map[string]string{"Success": "success", "Failure": "failure"})
	if d("Success").MustGet() != "success" || d("failure").MustGet() != "failure" {
		t.Fatalf("string enum lookup failed")
	}
	if d([]any{"success"}).IsOk() {
		t.Fatalf("non-scalars must be rejected")
	}
}

func TestUnknown(t *testing.T) {
	in := map[string]any{"a": 1}
	out := decoders.Unknown(in).MustGet().(map[string]any)
	if out["a"] != 1 {
		t.Fatalf("Unknown must return its input")
	}
	if decoders.Unknown(decoders.Undefined).MustGet() != decoders.Undefined {
		t.Fatalf("Unknown must accept Undefined")
	}
}
