package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/phillip/pet-adoption-go/models"
)

type UserRepo struct {
	col *mongo.Collection
}

// Create inserts u unless a user with the same email exists. The upsert with
// $setOnInsert and the unique email index close the check-then-insert race.
func (r *UserRepo) Create(ctx context.Context, u models.User) (*mongo.InsertOneResult, error) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now()
	}
	onInsert := bson.M{"createdAt": u.CreatedAt}
	if u.Name != "" {
		onInsert["name"] = u.Name
	}
	if u.Photo != "" {
		onInsert["photo"] = u.Photo
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"email": u.Email},
		bson.M{"$setOnInsert": onInsert},
		options.Update().SetUpsert(true),
	)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, err
	}
	if res.UpsertedCount == 0 {
		return nil, ErrUserExists
	}
	return &mongo.InsertOneResult{InsertedID: res.UpsertedID}, nil
}

func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, r.col, bson.M{})
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, r.col, bson.M{"email": email})
}

func (r *UserRepo) SetRole(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	return setFields(ctx, r.col, id, bson.M{"role": role})
}
