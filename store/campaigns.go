package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phillip/pet-adoption-go/models"
)

// RecommendSize is how many campaigns the recommendation endpoint samples.
const RecommendSize = 3

type CampaignRepo struct {
	col *mongo.Collection
}

func (r *CampaignRepo) Insert(ctx context.Context, c models.DonationCampaign) (*mongo.InsertOneResult, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now()
	}
	return r.col.InsertOne(ctx, c)
}

func (r *CampaignRepo) List(ctx context.Context) ([]models.DonationCampaign, error) {
	return findAll[models.DonationCampaign](ctx, r.col, bson.M{}, newestFirst)
}

func (r *CampaignRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.DonationCampaign, error) {
	return findOne[models.DonationCampaign](ctx, r.col, bson.M{"_id": id})
}

func (r *CampaignRepo) FindByCreator(ctx context.Context, email string) ([]models.DonationCampaign, error) {
	return findAll[models.DonationCampaign](ctx, r.col, bson.M{"donationCreator": email}, newestFirst)
}

// Sample returns up to n random campaigns. $sample may repeat a document, so
// the result is de-duplicated by id.
func (r *CampaignRepo) Sample(ctx context.Context, n int) ([]models.DonationCampaign, error) {
	cursor, err := r.col.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: n}}}},
	})
	if err != nil {
		return nil, err
	}
	var sampled []models.DonationCampaign
	if err := cursor.All(ctx, &sampled); err != nil {
		return nil, err
	}
	return UniqueCampaigns(sampled), nil
}

func (r *CampaignRepo) Update(ctx context.Context, id primitive.ObjectID, in models.UpdateCampaignInput) (*mongo.UpdateResult, error) {
	return setFields(ctx, r.col, id, CampaignUpdate(in))
}

func (r *CampaignRepo) SetDonatedAmount(ctx context.Context, id primitive.ObjectID, amount float64) (*mongo.UpdateResult, error) {
	return setFields(ctx, r.col, id, bson.M{"donatedAmount": amount})
}

func (r *CampaignRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	return setFields(ctx, r.col, id, bson.M{"status": status})
}

// Delete removes only the campaign; its donation history stays.
func (r *CampaignRepo) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return deleteByID(ctx, r.col, id)
}

// UniqueCampaigns keeps the first occurrence of each id, preserving order.
func UniqueCampaigns(in []models.DonationCampaign) []models.DonationCampaign {
	seen := make(map[primitive.ObjectID]struct{}, len(in))
	out := make([]models.DonationCampaign, 0, len(in))
	for _, c := range in {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out
}

func CampaignUpdate(in models.UpdateCampaignInput) bson.M {
	set := bson.M{}
	if in.PetName != nil {
		set["petName"] = *in.PetName
	}
	if in.PetImage != nil {
		set["petImage"] = *in.PetImage
	}
	if in.DonationLastDate != nil {
		set["donationLastDate"] = *in.DonationLastDate
	}
	if in.MaxDonationAmount != nil {
		set["maxDonationAmount"] = *in.MaxDonationAmount
	}
	if in.SortDescription != nil {
		set["sortDescription"] = *in.SortDescription
	}
	if in.LongDescription != nil {
		set["longDescription"] = *in.LongDescription
	}
	return set
}
