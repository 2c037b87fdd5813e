package documents

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service wraps a Repository with the creation/update rules shared by every
// collection: the server stamps `timestamp` once at create and the store owns
// the _id for the document's lifetime.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Create stamps the current time onto the payload, inserts it and returns the
// assigned id together with the stamped timestamp.
func (s *Service) Create(ctx context.Context, payload bson.M) (primitive.ObjectID, time.Time, error) {
	if payload == nil {
		payload = bson.M{}
	}
	delete(payload, "_id") // the store assigns identifiers
	ts := time.Now().UTC()
	payload["timestamp"] = ts
	id, err := s.repo.Create(ctx, payload)
	if err != nil {
		return primitive.NilObjectID, time.Time{}, err
	}
	return id, ts, nil
}

func (s *Service) List(ctx context.Context) ([]bson.M, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	return s.repo.Get(ctx, id)
}

// Update merges the supplied fields into the stored document and returns the
// result. An empty payload degrades to a read: Mongo rejects an empty $set.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (bson.M, error) {
	if fields == nil {
		fields = bson.M{}
	}
	delete(fields, "_id")
	if len(fields) == 0 {
		return s.repo.Get(ctx, id)
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
