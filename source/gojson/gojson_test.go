package gojson_test

import (
	"encoding/json"
	"testing"

	eng "github.com/reoring/decoders/internal/engine"
	"github.com/reoring/decoders/source/gojson"
)

func TestNewBytes_BuildsNestedValue(t *testing.T) {
	src := gojson.NewBytes([]byte(`{"name":"octo","tags":["a","b"],"stars":12,"fork":false,"parent":null}`))
	v, err := eng.DecodeAny(src, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := v.(map[string]any)
	if m["name"] != "octo" {
		t.Fatalf("name: %#v", m["name"])
	}
	if tags := m["tags"].([]any); len(tags) != 2 || tags[1] != "b" {
		t.Fatalf("tags: %#v", m["tags"])
	}
	if m["stars"] != json.Number("12") {
		t.Fatalf("stars: %#v", m["stars"])
	}
	if m["fork"] != false {
		t.Fatalf("fork: %#v", m["fork"])
	}
	if p, ok := m["parent"]; !ok || p != nil {
		t.Fatalf("parent: %#v", m["parent"])
	}
}

func TestNewBytes_StringValueAfterKeyIsNotAKey(t *testing.T) {
	src := gojson.NewBytes([]byte(`{"a":"b","c":"d"}`))
	v, err := eng.DecodeAny(src, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := v.(map[string]any)
	if len(m) != 2 || m["a"] != "b" || m["c"] != "d" {
		t.Fatalf("unexpected map: %#v", m)
	}
}

func TestNewBytes_Malformed(t *testing.T) {
	if _, err := eng.DecodeAny(gojson.NewBytes([]byte(`{"a":`)), nil); err == nil {
		t.Fatalf("expected error for truncated JSON")
	}
}

func TestLocation_CountsConsumedBytes(t *testing.T) {
	data := []byte(`[1,2,3]`)
	src := gojson.NewBytes(data)
	if _, err := eng.DecodeAny(src, nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if src.Location() != int64(len(data)) {
		t.Fatalf("expected %d consumed bytes, got %d", len(data), src.Location())
	}
}
