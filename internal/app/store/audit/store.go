// internal/app/store/audit/store.go
package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Event types. Bench data itself never lands here; this trail records who
// used the dashboard and which reports left it.
const (
	EventSignin        = "signin"
	EventSigninFailed  = "signin_failed"
	EventSignout       = "signout"
	EventReportExport  = "report_export"
	EventTrainerEmail  = "trainer_email_added"
	EventAdminRegister = "admin_register"
)

// Event is one audit record.
type Event struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`
	EventType string             `bson:"event_type"`
	LoginID   string             `bson:"login_id,omitempty"`
	Role      string             `bson:"role,omitempty"`
	IP        string             `bson:"ip,omitempty"`
	Detail    string             `bson:"detail,omitempty"` // e.g. exported filename
}

// Store manages audit event records. A nil *Store is a no-op, so handlers
// can log unconditionally even when auditing is configured off.
type Store struct {
	c   *mongo.Collection
	log *zap.Logger
}

// New creates an audit Store over the audit_events collection.
func New(db *mongo.Database, logger *zap.Logger) *Store {
	return &Store{c: db.Collection("audit_events"), log: logger}
}

// EnsureIndexes creates the indexes ad-hoc trail queries need.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if s == nil {
		return nil
	}
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{
			{Key: "event_type", Value: 1},
			{Key: "timestamp", Value: -1},
		}},
		{Keys: bson.D{
			{Key: "login_id", Value: 1},
			{Key: "timestamp", Value: -1},
		}},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// Record inserts one event. Failures are logged and swallowed: the audit
// trail must never break a user-facing flow.
func (s *Store) Record(ctx context.Context, event Event) {
	if s == nil {
		return
	}
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, event); err != nil {
		s.log.Warn("audit insert failed",
			zap.String("event_type", event.EventType), zap.Error(err))
	}
}
