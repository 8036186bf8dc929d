package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection     = "users"
	petsCollection      = "pets"
	adoptionsCollection = "adoptionRequest"
	campaignsCollection = "donationsCampaign"
	historyCollection   = "donationHistory"
)

var (
	ErrUserExists = errors.New("user already exists")
	ErrNoFields   = errors.New("no fields to update")
)

// Store owns the single Mongo client shared by every request.
type Store struct {
	client *mongo.Client
	db     *mongo.Database

	Users     *UserRepo
	Pets      *PetRepo
	Adoptions *AdoptionRepo
	Campaigns *CampaignRepo
	History   *HistoryRepo
}

// Connect dials Mongo with the stable server API and pings once.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return New(client.Database(dbName)), nil
}

// New wires repositories over an already open database.
func New(db *mongo.Database) *Store {
	return &Store{
		client:    db.Client(),
		db:        db,
		Users:     &UserRepo{col: db.Collection(usersCollection)},
		Pets:      &PetRepo{col: db.Collection(petsCollection)},
		Adoptions: &AdoptionRepo{col: db.Collection(adoptionsCollection)},
		Campaigns: &CampaignRepo{col: db.Collection(campaignsCollection)},
		History:   &HistoryRepo{col: db.Collection(historyCollection)},
	}
}

// EnsureIndexes creates the unique email index that makes user creation atomic.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.Users.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("users email index: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// ---------------- helpers ----------------

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

// findAll never returns a nil slice so handlers always serialize [].
func findAll[T any](ctx context.Context, col *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// findOne returns (nil, nil) when nothing matches.
func findOne[T any](ctx context.Context, col *mongo.Collection, filter any) (*T, error) {
	var doc T
	err := col.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func setFields(ctx context.Context, col *mongo.Collection, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	return col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
}

func deleteByID(ctx context.Context, col *mongo.Collection, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return col.DeleteOne(ctx, bson.M{"_id": id})
}

func now() time.Time {
	return time.Now().UTC()
}
