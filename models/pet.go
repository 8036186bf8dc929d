package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Pet struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name             string             `bson:"name" json:"name"`
	Category         string             `bson:"category" json:"category"`
	Age              int                `bson:"age,omitempty" json:"age,omitempty"`
	Location         string             `bson:"location,omitempty" json:"location,omitempty"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	ShortDescription string             `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	LongDescription  string             `bson:"longDescription,omitempty" json:"longDescription,omitempty"`
	Email            string             `bson:"email" json:"email"` // owner
	Adopted          bool               `bson:"adopted" json:"adopted"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreatePetInput struct {
	Name             string `json:"name" binding:"required"`
	Category         string `json:"category" binding:"required"`
	Age              int    `json:"age" binding:"gte=0"`
	Location         string `json:"location"`
	Image            string `json:"image" binding:"omitempty,url"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	Email            string `json:"email" binding:"required,email"`
}

// UpdatePetInput carries only the fields the client wants changed.
type UpdatePetInput struct {
	Name             *string `json:"name" binding:"omitempty,min=1"`
	Category         *string `json:"category" binding:"omitempty,min=1"`
	Age              *int    `json:"age" binding:"omitempty,gte=0"`
	Location         *string `json:"location"`
	Image            *string `json:"image" binding:"omitempty,url"`
	ShortDescription *string `json:"shortDescription"`
	LongDescription  *string `json:"longDescription"`
}

type AdoptedInput struct {
	Adopted *bool `json:"adopted" binding:"required"`
}

// PetFilter is the query of GET /pets. Empty fields do not constrain.
type PetFilter struct {
	Search   string
	Category string
	Adopted  *bool
}
