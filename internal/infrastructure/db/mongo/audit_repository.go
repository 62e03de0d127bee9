package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	db *mongo.Database
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{db: db}
}

// Insert persists one entry to the authz_audit collection.
func (r *AuditRepository) Insert(ctx context.Context, record *domain.AuditRecord) error {
	doc := bson.M{
		"actor_id":    record.ActorID,
		"action":      string(record.Action),
		"allowed":     record.Allowed,
		"at":          record.At.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if record.ClinicID != "" {
		doc["clinic_id"] = record.ClinicID
	}
	if record.TargetID != "" {
		doc["target_id"] = record.TargetID
	}
	if record.Reason != "" {
		doc["reason"] = record.Reason
	}

	_, err := r.db.Collection("authz_audit").InsertOne(ctx, doc)
	return err
}
