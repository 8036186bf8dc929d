package store

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phillip/pet-adoption-go/models"
)

type PetRepo struct {
	col *mongo.Collection
}

func (r *PetRepo) Insert(ctx context.Context, p models.Pet) (*mongo.InsertOneResult, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now()
	}
	return r.col.InsertOne(ctx, p)
}

func (r *PetRepo) Find(ctx context.Context, f models.PetFilter) ([]models.Pet, error) {
	return findAll[models.Pet](ctx, r.col, PetQuery(f), newestFirst)
}

func (r *PetRepo) FindByOwner(ctx context.Context, email string) ([]models.Pet, error) {
	return findAll[models.Pet](ctx, r.col, bson.M{"email": email}, newestFirst)
}

func (r *PetRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Pet, error) {
	return findOne[models.Pet](ctx, r.col, bson.M{"_id": id})
}

func (r *PetRepo) Update(ctx context.Context, id primitive.ObjectID, in models.UpdatePetInput) (*mongo.UpdateResult, error) {
	return setFields(ctx, r.col, id, PetUpdate(in))
}

func (r *PetRepo) SetAdopted(ctx context.Context, id primitive.ObjectID, adopted bool) (*mongo.UpdateResult, error) {
	return setFields(ctx, r.col, id, bson.M{"adopted": adopted})
}

func (r *PetRepo) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return deleteByID(ctx, r.col, id)
}

// PetQuery ANDs the optional name substring, category and adopted filters.
func PetQuery(f models.PetFilter) bson.M {
	q := bson.M{}
	if f.Search != "" {
		q["name"] = bson.M{"$regex": regexp.QuoteMeta(f.Search), "$options": "i"}
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Adopted != nil {
		q["adopted"] = *f.Adopted
	}
	return q
}

// PetUpdate builds a $set document from the fields present in the input.
func PetUpdate(in models.UpdatePetInput) bson.M {
	set := bson.M{}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Category != nil {
		set["category"] = *in.Category
	}
	if in.Age != nil {
		set["age"] = *in.Age
	}
	if in.Location != nil {
		set["location"] = *in.Location
	}
	if in.Image != nil {
		set["image"] = *in.Image
	}
	if in.ShortDescription != nil {
		set["shortDescription"] = *in.ShortDescription
	}
	if in.LongDescription != nil {
		set["longDescription"] = *in.LongDescription
	}
	return set
}
