package routes

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	models "github.com/phillip/pet-adoption-go/models"
	store "github.com/phillip/pet-adoption-go/store"
)

var errStoreDown = errors.New("connection refused")

type fakeUsers struct {
	mu    sync.Mutex
	users []models.User
	err   error
}

func (f *fakeUsers) Create(_ context.Context, u models.User) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return nil, store.ErrUserExists
		}
	}
	u.ID = primitive.NewObjectID()
	f.users = append(f.users, u)
	return &mongo.InsertOneResult{InsertedID: u.ID}, nil
}

func (f *fakeUsers) List(context.Context) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.User{}, f.users...), nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) SetRole(_ context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			modified := int64(0)
			if f.users[i].Role != role {
				modified = 1
			}
			f.users[i].Role = role
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

type fakePets struct {
	pets []models.Pet
}

func (f *fakePets) Insert(_ context.Context, p models.Pet) (*mongo.InsertOneResult, error) {
	p.ID = primitive.NewObjectID()
	f.pets = append(f.pets, p)
	return &mongo.InsertOneResult{InsertedID: p.ID}, nil
}

func (f *fakePets) Find(_ context.Context, filter models.PetFilter) ([]models.Pet, error) {
	out := []models.Pet{}
	for _, p := range f.pets {
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Adopted != nil && p.Adopted != *filter.Adopted {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePets) FindByOwner(_ context.Context, email string) ([]models.Pet, error) {
	out := []models.Pet{}
	for _, p := range f.pets {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePets) FindByID(_ context.Context, id primitive.ObjectID) (*models.Pet, error) {
	for i := range f.pets {
		if f.pets[i].ID == id {
			p := f.pets[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePets) Update(_ context.Context, id primitive.ObjectID, in models.UpdatePetInput) (*mongo.UpdateResult, error) {
	if len(store.PetUpdate(in)) == 0 {
		return nil, store.ErrNoFields
	}
	for i := range f.pets {
		if f.pets[i].ID == id {
			if in.Name != nil {
				f.pets[i].Name = *in.Name
			}
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakePets) SetAdopted(_ context.Context, id primitive.ObjectID, adopted bool) (*mongo.UpdateResult, error) {
	for i := range f.pets {
		if f.pets[i].ID == id {
			f.pets[i].Adopted = adopted
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakePets) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	for i := range f.pets {
		if f.pets[i].ID == id {
			f.pets = append(f.pets[:i], f.pets[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

type fakeAdoptions struct {
	requests []models.AdoptionRequest
}

func (f *fakeAdoptions) Insert(_ context.Context, a models.AdoptionRequest) (*mongo.InsertOneResult, error) {
	a.ID = primitive.NewObjectID()
	f.requests = append(f.requests, a)
	return &mongo.InsertOneResult{InsertedID: a.ID}, nil
}

func (f *fakeAdoptions) FindByHost(_ context.Context, host string) ([]models.AdoptionRequest, error) {
	out := []models.AdoptionRequest{}
	for _, a := range f.requests {
		if a.HostEmail == host {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAdoptions) FindByID(_ context.Context, id primitive.ObjectID) (*models.AdoptionRequest, error) {
	for i := range f.requests {
		if f.requests[i].ID == id {
			a := f.requests[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdoptions) SetStatus(_ context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	for i := range f.requests {
		if f.requests[i].ID == id {
			f.requests[i].Status = status
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

type fakeCampaigns struct {
	campaigns []models.DonationCampaign
}

func (f *fakeCampaigns) Insert(_ context.Context, c models.DonationCampaign) (*mongo.InsertOneResult, error) {
	c.ID = primitive.NewObjectID()
	f.campaigns = append(f.campaigns, c)
	return &mongo.InsertOneResult{InsertedID: c.ID}, nil
}

func (f *fakeCampaigns) List(context.Context) ([]models.DonationCampaign, error) {
	return append([]models.DonationCampaign{}, f.campaigns...), nil
}

func (f *fakeCampaigns) FindByID(_ context.Context, id primitive.ObjectID) (*models.DonationCampaign, error) {
	for i := range f.campaigns {
		if f.campaigns[i].ID == id {
			c := f.campaigns[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCampaigns) FindByCreator(_ context.Context, email string) ([]models.DonationCampaign, error) {
	out := []models.DonationCampaign{}
	for _, c := range f.campaigns {
		if c.DonationCreator == email {
			out = append(out, c)
		}
	}
	return out, nil
}

// Sample mimics $sample by drawing with replacement, then de-duplicates like
// the real repository does.
func (f *fakeCampaigns) Sample(_ context.Context, n int) ([]models.DonationCampaign, error) {
	if len(f.campaigns) == 0 {
		return []models.DonationCampaign{}, nil
	}
	drawn := make([]models.DonationCampaign, 0, n)
	for i := 0; i < n; i++ {
		drawn = append(drawn, f.campaigns[i%len(f.campaigns)])
	}
	return store.UniqueCampaigns(drawn), nil
}

func (f *fakeCampaigns) Update(_ context.Context, id primitive.ObjectID, in models.UpdateCampaignInput) (*mongo.UpdateResult, error) {
	if len(store.CampaignUpdate(in)) == 0 {
		return nil, store.ErrNoFields
	}
	return f.touch(id, func(c *models.DonationCampaign) {
		if in.PetName != nil {
			c.PetName = *in.PetName
		}
	}), nil
}

func (f *fakeCampaigns) SetDonatedAmount(_ context.Context, id primitive.ObjectID, amount float64) (*mongo.UpdateResult, error) {
	return f.touch(id, func(c *models.DonationCampaign) { c.DonatedAmount = amount }), nil
}

func (f *fakeCampaigns) SetStatus(_ context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	return f.touch(id, func(c *models.DonationCampaign) { c.Status = status }), nil
}

func (f *fakeCampaigns) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	for i := range f.campaigns {
		if f.campaigns[i].ID == id {
			f.campaigns = append(f.campaigns[:i], f.campaigns[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakeCampaigns) touch(id primitive.ObjectID, fn func(*models.DonationCampaign)) *mongo.UpdateResult {
	for i := range f.campaigns {
		if f.campaigns[i].ID == id {
			fn(&f.campaigns[i])
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}
		}
	}
	return &mongo.UpdateResult{}
}

type fakeHistory struct {
	records []models.DonationHistory
}

func (f *fakeHistory) Insert(_ context.Context, h models.DonationHistory) (*mongo.InsertOneResult, error) {
	h.ID = primitive.NewObjectID()
	f.records = append(f.records, h)
	return &mongo.InsertOneResult{InsertedID: h.ID}, nil
}

func (f *fakeHistory) FindByPayer(_ context.Context, email string) ([]models.DonationHistory, error) {
	out := []models.DonationHistory{}
	for _, h := range f.records {
		if h.PaymentUserEmail == email {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHistory) FindByCreator(_ context.Context, email string) ([]models.DonationHistory, error) {
	out := []models.DonationHistory{}
	for _, h := range f.records {
		if h.DonationCreator == email {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHistory) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

type paymentCall struct {
	amount   int64
	currency string
}

type fakePayments struct {
	calls []paymentCall
	err   error
}

func (f *fakePayments) CreatePaymentIntent(_ context.Context, amount int64, currency string) (string, error) {
	f.calls = append(f.calls, paymentCall{amount: amount, currency: currency})
	if f.err != nil {
		return "", f.err
	}
	return "pi_test_secret", nil
}

type sentMail struct {
	to, subject string
}

type fakeMailer struct {
	sent []sentMail
}

func (f *fakeMailer) Send(_ context.Context, to, subject, _ string) error {
	f.sent = append(f.sent, sentMail{to: to, subject: subject})
	return nil
}
