package documents

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when an id does not resolve to a stored document.
var ErrNotFound = errors.New("document not found")

// Repository persists one collection of open JSON documents. Payloads are
// schemaless (bson.M): the caller owns every field except the store-assigned
// _id and the timestamp stamped at creation.
type Repository interface {
	Create(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	List(ctx context.Context) ([]bson.M, error)
	Get(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	// Update merges the given fields into the document (field-level overwrite,
	// untouched fields survive) and returns the post-update document.
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (bson.M, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
