package audit

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-saas/internal/models"
)

type Event struct {
	GymID    *uuid.UUID
	UserID   *uuid.UUID
	Action   string
	Entity   string
	EntityID *uuid.UUID
	Metadata any
}

// Recorder accepts audit events. Implementations never fail the caller.
type Recorder interface {
	Record(ev Event)
}

// Writer persists events synchronously.
type Writer struct {
	db *gorm.DB
}

func NewWriter(db *gorm.DB) *Writer {
	return &Writer{db: db}
}

func (w *Writer) Write(ctx context.Context, ev Event) error {
	var meta datatypes.JSON
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			meta = b
		}
	}

	log := models.AuditLog{
		GymID:    ev.GymID,
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: meta,
	}

	return w.db.WithContext(ctx).Create(&log).Error
}

// Nop discards events.
type Nop struct{}

func (Nop) Record(Event) {}

// Ptr is a helper for the optional id fields.
func Ptr(id uuid.UUID) *uuid.UUID {
	return &id
}
