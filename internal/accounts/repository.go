package accounts

import (
	"context"

	"github.com/webfolio/portfolio-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AccountRepository defines persistence operations for accounts
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	Insert(ctx context.Context, a *models.Account) error
}

// MongoAccountRepository implements AccountRepository using MongoDB
type MongoAccountRepository struct {
	col *mongo.Collection
}

// NewMongoAccountRepository creates a repository for the given collection.
// A unique index on email backs the registration conflict check, so a racing
// duplicate insert fails at the store instead of slipping through.
func NewMongoAccountRepository(col *mongo.Collection) *MongoAccountRepository {
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoAccountRepository{col: col}
}

// FindByEmail returns the account for the email, or nil when none exists
func (r *MongoAccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var a models.Account
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *MongoAccountRepository) Insert(ctx context.Context, a *models.Account) error {
	_, err := r.col.InsertOne(ctx, a)
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailTaken
	}
	return err
}
