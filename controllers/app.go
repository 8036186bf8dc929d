package controllers

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	config "github.com/phillip/pet-adoption-go/config"
	models "github.com/phillip/pet-adoption-go/models"
	utils "github.com/phillip/pet-adoption-go/utils"
)

type UserStore interface {
	Create(ctx context.Context, u models.User) (*mongo.InsertOneResult, error)
	List(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error)
}

type PetStore interface {
	Insert(ctx context.Context, p models.Pet) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, f models.PetFilter) ([]models.Pet, error)
	FindByOwner(ctx context.Context, email string) ([]models.Pet, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Pet, error)
	Update(ctx context.Context, id primitive.ObjectID, in models.UpdatePetInput) (*mongo.UpdateResult, error)
	SetAdopted(ctx context.Context, id primitive.ObjectID, adopted bool) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type AdoptionStore interface {
	Insert(ctx context.Context, a models.AdoptionRequest) (*mongo.InsertOneResult, error)
	FindByHost(ctx context.Context, hostEmail string) ([]models.AdoptionRequest, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdoptionRequest, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
}

type CampaignStore interface {
	Insert(ctx context.Context, c models.DonationCampaign) (*mongo.InsertOneResult, error)
	List(ctx context.Context) ([]models.DonationCampaign, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.DonationCampaign, error)
	FindByCreator(ctx context.Context, email string) ([]models.DonationCampaign, error)
	Sample(ctx context.Context, n int) ([]models.DonationCampaign, error)
	Update(ctx context.Context, id primitive.ObjectID, in models.UpdateCampaignInput) (*mongo.UpdateResult, error)
	SetDonatedAmount(ctx context.Context, id primitive.ObjectID, amount float64) (*mongo.UpdateResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type HistoryStore interface {
	Insert(ctx context.Context, h models.DonationHistory) (*mongo.InsertOneResult, error)
	FindByPayer(ctx context.Context, email string) ([]models.DonationHistory, error)
	FindByCreator(ctx context.Context, email string) ([]models.DonationHistory, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

// PaymentGateway is satisfied by *utils.StripeGateway.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// ImageStore is satisfied by *utils.CloudinaryUploader.
type ImageStore interface {
	Upload(ctx context.Context, file any, folder string) (string, error)
	Delete(ctx context.Context, imageURL string) error
}

// Notifier is satisfied by *utils.MailgunNotifier and utils.NopNotifier.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// App carries every dependency a handler may touch. It is built once in main.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Tokens *utils.TokenManager

	Users     UserStore
	Pets      PetStore
	Adoptions AdoptionStore
	Campaigns CampaignStore
	History   HistoryStore

	Payments PaymentGateway
	Images   ImageStore // nil when image hosting is not configured
	Mailer   Notifier
}
