package docid

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParse_Valid(t *testing.T) {
	want := primitive.NewObjectID()
	got, err := Parse(want.Hex())
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", want.Hex(), err)
	}
	if got != want {
		t.Fatalf("Parse round-trip mismatch: got=%s want=%s", got.Hex(), want.Hex())
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{
		"",
		"123",
		"not-an-object-id",
		"zzzzzzzzzzzzzzzzzzzzzzzz",             // right length, not hex
		"507f1f77bcf86cd79943901",              // 23 chars
		"507f1f77bcf86cd7994390111",            // 25 chars
		"507f1f77bcf86cd799439011507f1f77bcf8", // too long
	}
	for _, raw := range cases {
		if _, err := Parse(raw); err != ErrInvalidID {
			t.Fatalf("Parse(%q): expected ErrInvalidID, got %v", raw, err)
		}
	}
}
