package documents

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestService_CreateStampsTimestamp(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	before := time.Now().UTC()
	id, ts, err := svc.Create(ctx, bson.M{"title": "X"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id.IsZero() {
		t.Fatal("expected a store-assigned id")
	}
	if ts.Before(before) || ts.After(time.Now().UTC()) {
		t.Fatalf("timestamp outside expected window: %v", ts)
	}

	got, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got["timestamp"] != ts {
		t.Fatalf("stored timestamp mismatch: %v != %v", got["timestamp"], ts)
	}
	if got["title"] != "X" {
		t.Fatalf("payload field lost: %v", got)
	}
}

func TestService_CreateIgnoresCallerSuppliedID(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	rogue := primitive.NewObjectID()
	id, _, err := svc.Create(context.Background(), bson.M{"_id": rogue, "title": "X"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id == rogue {
		t.Fatal("caller must not pick the document id")
	}
}

func TestService_UpdateTimestampSurvives(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	id, ts, err := svc.Create(ctx, bson.M{"title": "X"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	updated, err := svc.Update(ctx, id, bson.M{"title": "Y"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated["timestamp"] != ts {
		t.Fatalf("timestamp must not be recomputed on update: %v != %v", updated["timestamp"], ts)
	}
	if updated["title"] != "Y" {
		t.Fatalf("update not applied: %v", updated)
	}
}

func TestService_EmptyUpdateReadsBack(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	id, _, err := svc.Create(ctx, bson.M{"title": "X"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	// an empty payload must not error (Mongo rejects an empty $set)
	got, err := svc.Update(ctx, id, bson.M{})
	if err != nil {
		t.Fatalf("empty Update failed: %v", err)
	}
	if got["title"] != "X" {
		t.Fatalf("unexpected document: %v", got)
	}

	// and still reports NotFound for a missing id
	if _, err := svc.Update(ctx, primitive.NewObjectID(), bson.M{}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
