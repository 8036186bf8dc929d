package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phillip/pet-adoption-go/models"
)

type HistoryRepo struct {
	col *mongo.Collection
}

func (r *HistoryRepo) Insert(ctx context.Context, h models.DonationHistory) (*mongo.InsertOneResult, error) {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = now()
	}
	return r.col.InsertOne(ctx, h)
}

// FindByPayer lists donations a user made.
func (r *HistoryRepo) FindByPayer(ctx context.Context, email string) ([]models.DonationHistory, error) {
	return findAll[models.DonationHistory](ctx, r.col, bson.M{"paymentUserEmail": email}, newestFirst)
}

// FindByCreator lists donations received by a campaign creator's campaigns.
func (r *HistoryRepo) FindByCreator(ctx context.Context, email string) ([]models.DonationHistory, error) {
	return findAll[models.DonationHistory](ctx, r.col, bson.M{"donationCreator": email}, newestFirst)
}

func (r *HistoryRepo) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return deleteByID(ctx, r.col, id)
}
