package jsonrpc

import (
	"encoding/json"
	"testing"
)

func TestRequestID_UnmarshalNumber(t *testing.T) {
	var id RequestID
	if err := json.Unmarshal([]byte("7"), &id); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got, want := id.Value(), int64(7); got != want {
		t.Fatalf("expected %v (int64), got %v (%T)", want, got, got)
	}
	if id.String() != "7" {
		t.Fatalf("expected string form %q, got %q", "7", id.String())
	}
}

func TestRequestID_UnmarshalString(t *testing.T) {
	var id RequestID
	if err := json.Unmarshal([]byte(`"req-1"`), &id); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if id.String() != "req-1" {
		t.Fatalf("expected %q, got %q", "req-1", id.String())
	}
	if id.IsNil() {
		t.Fatal("string id should not be nil")
	}
}

func TestRequestID_UnmarshalNull(t *testing.T) {
	id := NewRequestID("stale")
	if err := json.Unmarshal([]byte("null"), id); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !id.IsNil() {
		t.Fatal("null id should be nil")
	}
}

func TestRequestID_UnmarshalRejectsOtherTypes(t *testing.T) {
	for _, raw := range []string{"true", "[1]", `{"a":1}`} {
		var id RequestID
		if err := json.Unmarshal([]byte(raw), &id); err == nil {
			t.Fatalf("expected error for %s", raw)
		}
	}
}

func TestRequestID_MarshalNilIsNull(t *testing.T) {
	var id *RequestID
	b, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "null" {
		t.Fatalf("expected null, got %s", b)
	}
}

func TestRequestID_FractionalNumberPreserved(t *testing.T) {
	var id RequestID
	if err := json.Unmarshal([]byte("1.5"), &id); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got, want := id.Value(), 1.5; got != want {
		t.Fatalf("expected %v, got %v (%T)", want, got, got)
	}
}
