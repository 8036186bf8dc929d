package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phillip/pet-adoption-go/models"
)

type AdoptionRepo struct {
	col *mongo.Collection
}

func (r *AdoptionRepo) Insert(ctx context.Context, a models.AdoptionRequest) (*mongo.InsertOneResult, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now()
	}
	return r.col.InsertOne(ctx, a)
}

func (r *AdoptionRepo) FindByHost(ctx context.Context, hostEmail string) ([]models.AdoptionRequest, error) {
	return findAll[models.AdoptionRequest](ctx, r.col, bson.M{"hostEmail": hostEmail}, newestFirst)
}

func (r *AdoptionRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdoptionRequest, error) {
	return findOne[models.AdoptionRequest](ctx, r.col, bson.M{"_id": id})
}

func (r *AdoptionRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	return setFields(ctx, r.col, id, bson.M{"status": status})
}
