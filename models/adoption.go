package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AdoptionPending  = "pending"
	AdoptionAccepted = "accepted"
	AdoptionRejected = "rejected"
)

type AdoptionRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PetID          primitive.ObjectID `bson:"petId" json:"petId"`
	PetName        string             `bson:"petName,omitempty" json:"petName,omitempty"`
	PetImage       string             `bson:"petImage,omitempty" json:"petImage,omitempty"`
	HostEmail      string             `bson:"hostEmail" json:"hostEmail"`
	RequesterName  string             `bson:"requesterName,omitempty" json:"requesterName,omitempty"`
	RequesterEmail string             `bson:"requesterEmail" json:"requesterEmail"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	Status         string             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateAdoptionInput struct {
	PetID          string `json:"petId" binding:"required,mongodb"`
	PetName        string `json:"petName"`
	PetImage       string `json:"petImage" binding:"omitempty,url"`
	HostEmail      string `json:"hostEmail" binding:"required,email"`
	RequesterName  string `json:"requesterName"`
	RequesterEmail string `json:"requesterEmail" binding:"required,email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
}

type AdoptionStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending accepted rejected"`
}
