package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonationHistory records one payment toward a campaign. CampaignID is a
// plain reference; nothing keeps it in sync with the campaigns collection.
type DonationHistory struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CampaignID       primitive.ObjectID `bson:"campaignId" json:"campaignId"`
	PetName          string             `bson:"petName,omitempty" json:"petName,omitempty"`
	PetImage         string             `bson:"petImage,omitempty" json:"petImage,omitempty"`
	DonationCreator  string             `bson:"donationCreator" json:"donationCreator"`
	PaymentUserEmail string             `bson:"paymentUserEmail" json:"paymentUserEmail"`
	PaymentUserName  string             `bson:"paymentUserName,omitempty" json:"paymentUserName,omitempty"`
	Amount           float64            `bson:"amount" json:"amount"`
	TransactionID    string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateDonationHistoryInput struct {
	CampaignID       string  `json:"campaignId" binding:"required,mongodb"`
	PetName          string  `json:"petName"`
	PetImage         string  `json:"petImage" binding:"omitempty,url"`
	DonationCreator  string  `json:"donationCreator" binding:"required,email"`
	PaymentUserEmail string  `json:"paymentUserEmail" binding:"required,email"`
	PaymentUserName  string  `json:"paymentUserName"`
	Amount           float64 `json:"amount" binding:"required,gt=0"`
	TransactionID    string  `json:"transactionId"`
}

// PaymentIntentInput is the body of POST /create-payment-intent. Price may be
// a number or a numeric string and is validated by the handler.
type PaymentIntentInput struct {
	Price any `json:"price"`
}
