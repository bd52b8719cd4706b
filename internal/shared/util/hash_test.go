package util

import "testing"

func TestHashKey(t *testing.T) {
	id := "profile:match:v1"
	got := HashKey(id)
	if got != HashKey(id) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}

func TestHashJSONStableForEqualValues(t *testing.T) {
	type payload struct {
		Skills []string
		Role   string
	}
	a := payload{Skills: []string{"Python", "SQL"}, Role: "Software Engineer"}
	b := payload{Skills: []string{"Python", "SQL"}, Role: "Software Engineer"}

	ha, err := HashJSON(a)
	if err != nil {
		t.Fatalf("HashJSON: %v", err)
	}
	hb, err := HashJSON(b)
	if err != nil {
		t.Fatalf("HashJSON: %v", err)
	}
	if ha != hb {
		t.Fatalf("expected equal hashes for equal values, got %s vs %s", ha, hb)
	}

	c := payload{Skills: []string{"Python"}, Role: "Software Engineer"}
	hc, err := HashJSON(c)
	if err != nil {
		t.Fatalf("HashJSON: %v", err)
	}
	if ha == hc {
		t.Fatalf("expected different hashes for different values")
	}
}
