package repo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"server/internal/domain"
)

func TestObjectIDParsesHex(t *testing.T) {
	want := primitive.NewObjectID()
	got, err := objectID(want.Hex())
	if err != nil {
		t.Fatalf("objectID returned error: %v", err)
	}
	if got != want {
		t.Fatalf("objectID mismatch: got %s want %s", got.Hex(), want.Hex())
	}
}

func TestObjectIDRejectsMalformedInput(t *testing.T) {
	for _, id := range []string{"", "nope", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		if _, err := objectID(id); !errors.Is(err, domain.ErrInvalidID) {
			t.Fatalf("objectID(%q) error = %v, want ErrInvalidID", id, err)
		}
	}
}

func TestInsertedIDFormatsObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	if got := insertedID(oid); got != oid.Hex() {
		t.Fatalf("insertedID mismatch: got %q want %q", got, oid.Hex())
	}
	if got := insertedID("custom-id"); got != "custom-id" {
		t.Fatalf("insertedID mismatch: got %q want %q", got, "custom-id")
	}
}
