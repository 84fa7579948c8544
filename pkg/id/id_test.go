package id

import (
	"strings"
	"testing"
)

func TestGetUUID(t *testing.T) {
	a := GetUUID()
	b := GetUUID()

	if a == "" || b == "" {
		t.Fatal("GetUUID returned empty string")
	}
	if a == b {
		t.Error("GetUUID returned the same value twice")
	}
}

func TestGetUUIDWithoutDashes(t *testing.T) {
	id := GetUUIDWithoutDashes()
	if strings.Contains(id, "-") {
		t.Errorf("expected no dashes, got %s", id)
	}
	if len(id) != 32 {
		t.Errorf("expected 32 chars, got %d", len(id))
	}
}

func TestShortId(t *testing.T) {
	if ShortId() == "" {
		t.Error("ShortId returned empty string")
	}
}

func TestGetUlid(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GetUlid()
		if len(id) != 26 {
			t.Fatalf("expected 26 chars, got %q", id)
		}
		if seen[id] {
			t.Fatalf("GetUlid collision: %s", id)
		}
		seen[id] = true
	}
}

func TestTimeId(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := TimeId()
		if id == "" {
			t.Fatal("TimeId returned empty string")
		}
		if !strings.Contains(id, "-") {
			t.Fatalf("expected timestamp-suffix form, got %s", id)
		}
		if seen[id] {
			t.Fatalf("TimeId collision: %s", id)
		}
		seen[id] = true
	}
}
