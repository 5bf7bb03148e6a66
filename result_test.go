package decoders_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/reoring/decoders"
)

func TestResult_OkAndError(t *testing.T) {
	ok := decoders.Ok(3)
	if v, good := ok.Value(); !good || v != 3 {
		t.Fatalf("Value() = %v,%v", v, good)
	}
	if ok.Err() != nil {
		t.Fatalf("Err() on success = %v", ok.Err())
	}

	bad := decoders.Error[int]("boom")
	if bad.IsOk() {
		t.Fatalf("expected failure")
	}
	de, failed := bad.Failure()
	if !failed || de.Kind != decoders.KindDecoder || de.Message != "boom" {
		t.Fatalf("unexpected failure: %+v", de)
	}
	_, err := bad.Get()
	got, ok2 := decoders.AsDecoderError(err)
	if !ok2 || got != de {
		t.Fatalf("AsDecoderError did not return the same error")
	}
	if bad.String() != "Failure(boom)" || ok.String() != "Success(3)" {
		t.Fatalf("String() = %q / %q", bad.String(), ok.String())
	}
}

func TestResult_MapAndChain(t *testing.T) {
	doubled := decoders.Map(decoders.Ok(2), func(n int) int { return n * 2 })
	if doubled.MustGet() != 4 {
		t.Fatalf("Map: got %v", doubled)
	}

	called := false
	failed := decoders.Map(decoders.Error[int]("x"), func(n int) int { called = true; return n })
	if called || failed.IsOk() {
		t.Fatalf("Map must not call f on failure")
	}

	parse := func(s string) decoders.Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return decoders.Error[int]("not numeric")
		}
		return decoders.Ok(n)
	}
	if v := decoders.Chain(decoders.Ok("12"), parse).MustGet(); v != 12 {
		t.Fatalf("Chain: got %d", v)
	}
	r := decoders.Chain(decoders.Ok("x"), parse)
	if de, _ := r.Failure(); de == nil || de.Message != "not numeric" {
		t.Fatalf("Chain failure: %v", r)
	}
	orig := decoders.Error[string]("first")
	passed := decoders.Chain(orig, parse)
	a, _ := orig.Failure()
	b, _ := passed.Failure()
	if a != b {
		t.Fatalf("Chain must pass the failure through unchanged")
	}
}

func TestResult_Fail(t *testing.T) {
	src, _ := decoders.Error[int]("inner").Failure()
	r := decoders.Fail[string](src)
	if de, _ := r.Failure(); de != src {
		t.Fatalf("Fail must keep the error")
	}
	generic := decoders.Fail[string](nil)
	if de, _ := generic.Failure(); de == nil || de.Message != "Invalid input" {
		t.Fatalf("Fail(nil) = %v", generic)
	}
}

func TestResult_MustGetPanics(t *testing.T) {
	defer func() {
		rec := recover()
		var de *decoders.DecoderError
		if err, ok := rec.(error); !ok || !errors.As(err, &de) {
			t.Fatalf("expected *DecoderError panic, got %v", rec)
		}
	}()
	decoders.Error[int]("nope").MustGet()
}
