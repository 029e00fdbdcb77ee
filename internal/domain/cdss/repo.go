package cdss

import (
	"context"
	"time"
)

// AlertRepository is the alert-management collaborator. The evaluation engine
// only produces alerts; persistence and lifecycle (acknowledgment,
// resolution) live behind this interface.
type AlertRepository interface {
	Create(ctx context.Context, a *Alert) error
	GetByID(ctx context.Context, id string) (*Alert, error)
	ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*Alert, int, error)
	Acknowledge(ctx context.Context, id, by string, at time.Time) error
	Resolve(ctx context.Context, id string, at time.Time) error
}
