package docid

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned for identifiers that are not valid ObjectID hex strings.
var ErrInvalidID = errors.New("invalid document id")

// Parse validates a client-supplied identifier and converts it to an ObjectID.
// Every id-keyed handler must call this before touching the store so malformed
// input never reaches a collection query.
func Parse(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}
