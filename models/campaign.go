package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CampaignActive = "active"
	CampaignPaused = "paused"
)

type DonationCampaign struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PetName           string             `bson:"petName" json:"petName"`
	PetImage          string             `bson:"petImage,omitempty" json:"petImage,omitempty"`
	DonationLastDate  string             `bson:"donationLastDate" json:"donationLastDate"`
	MaxDonationAmount float64            `bson:"maxDonationAmount" json:"maxDonationAmount"`
	DonatedAmount     float64            `bson:"donatedAmount" json:"donatedAmount"`
	Status            string             `bson:"status" json:"status"`
	SortDescription   string             `bson:"sortDescription,omitempty" json:"sortDescription,omitempty"`
	LongDescription   string             `bson:"longDescription,omitempty" json:"longDescription,omitempty"`
	DonationCreator   string             `bson:"donationCreator" json:"donationCreator"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateCampaignInput struct {
	PetName           string  `json:"petName" binding:"required"`
	PetImage          string  `json:"petImage" binding:"omitempty,url"`
	DonationLastDate  string  `json:"donationLastDate" binding:"required,datetime=2006-01-02"`
	MaxDonationAmount float64 `json:"maxDonationAmount" binding:"required,gt=0"`
	SortDescription   string  `json:"sortDescription"`
	LongDescription   string  `json:"longDescription"`
	DonationCreator   string  `json:"donationCreator" binding:"required,email"`
}

type UpdateCampaignInput struct {
	PetName           *string  `json:"petName" binding:"omitempty,min=1"`
	PetImage          *string  `json:"petImage" binding:"omitempty,url"`
	DonationLastDate  *string  `json:"donationLastDate" binding:"omitempty,datetime=2006-01-02"`
	MaxDonationAmount *float64 `json:"maxDonationAmount" binding:"omitempty,gt=0"`
	SortDescription   *string  `json:"sortDescription"`
	LongDescription   *string  `json:"longDescription"`
}

type DonatedAmountInput struct {
	DonatedAmount *float64 `json:"donatedAmount" binding:"required,gte=0"`
}

type CampaignStatusInput struct {
	Status string `json:"status" binding:"required,oneof=active paused"`
}
