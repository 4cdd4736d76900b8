package audit

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/storefront-api/internal/models"
)

// Filter narrows an audit log listing. Page starts at 1.
type Filter struct {
	Action string
	Entity string
	Page   int
	Limit  int
}

type Store interface {
	Append(ctx context.Context, log *models.AuditLog) error
	List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		ActorRole: ev.ActorRole,
		ActorID:   ev.ActorID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
	}

	return l.store.Append(ctx, &log)
}
