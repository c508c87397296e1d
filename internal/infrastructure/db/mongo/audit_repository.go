package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/userhub/user-management/internal/core/domain"
)

const auditCollection = "auth_audit"

// MongoAuditRepository persists the authentication audit trail.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEntry struct {
	Action    string `bson:"action"`
	UserID    string `bson:"user_id,omitempty"`
	Username  string `bson:"username"`
	Role      string `bson:"role,omitempty"`
	Success   bool   `bson:"success"`
	Reason    string `bson:"reason,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, entry domain.AuditEntry) error {
	doc := mongoAuditEntry{
		Action:    string(entry.Action),
		UserID:    entry.UserID,
		Username:  entry.Username,
		Role:      string(entry.Role),
		Success:   entry.Success,
		Reason:    entry.Reason,
		Timestamp: entry.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
