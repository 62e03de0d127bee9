package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

const clinicsCollection = "clinics"

// ClinicRepository implements ports.ClinicRepository using MongoDB.
type ClinicRepository struct {
	coll *mongo.Collection
}

func NewClinicRepository(db *mongo.Database) *ClinicRepository {
	return &ClinicRepository{coll: db.Collection(clinicsCollection)}
}

type mongoClinic struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Slug      string             `bson:"slug"`
	Plan      string             `bson:"plan"`
	Seats     int                `bson:"seats"`
	Status    string             `bson:"status"`
	Settings  map[string]string  `bson:"settings,omitempty"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *ClinicRepository) FindByID(ctx context.Context, id string) (*domain.Clinic, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Not a valid object id, so no clinic row can match it.
		return nil, domain.ErrClinicNotFound
	}

	var mc mongoClinic
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrClinicNotFound
		}
		return nil, fmt.Errorf("find clinic: %w", err)
	}
	return toDomainClinic(mc), nil
}

func (r *ClinicRepository) Insert(ctx context.Context, clinic *domain.Clinic) (*domain.Clinic, error) {
	doc := mongoClinic{
		Name:      clinic.Name,
		Slug:      clinic.Slug,
		Plan:      clinic.Plan,
		Seats:     clinic.Seats,
		Status:    string(clinic.Status),
		Settings:  clinic.Settings,
		CreatedAt: clinic.CreatedAt.Unix(),
		UpdatedAt: clinic.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert clinic: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	created := *clinic
	created.ID = oid.Hex()
	return &created, nil
}

func toDomainClinic(mc mongoClinic) *domain.Clinic {
	return &domain.Clinic{
		ID:        mc.ID.Hex(),
		Name:      mc.Name,
		Slug:      mc.Slug,
		Plan:      mc.Plan,
		Seats:     mc.Seats,
		Status:    domain.ClinicStatus(mc.Status),
		Settings:  mc.Settings,
		CreatedAt: unixToTime(mc.CreatedAt),
		UpdatedAt: unixToTime(mc.UpdatedAt),
	}
}
