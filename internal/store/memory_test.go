package store

import "testing"

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	if _, ok, _ := s.Get("missing"); ok {
		t.Error("Expected missing key to report not present")
	}

	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}

	value, ok, err := s.Get("k")
	if err != nil || !ok || value != "v2" {
		t.Errorf("Get() = (%q, %v, %v), want (v2, true, nil)", value, ok, err)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Error("Expected key to be gone after delete")
	}
}
