package cdss

import (
	"context"
	"fmt"
	"time"
)

// Service ties the pure evaluation engine to the alert store. Evaluation
// itself never touches the store; persistence happens after the engine
// returns, and a storage failure does not change the evaluation result.
type Service struct {
	engine *Engine
	alerts AlertRepository
}

func NewService(engine *Engine, alerts AlertRepository) *Service {
	return &Service{engine: engine, alerts: alerts}
}

// Evaluate runs the engine and persists the produced alerts.
func (s *Service) Evaluate(ctx context.Context, snapshot ClinicalSnapshot, module Module) (EvaluationResult, error) {
	if snapshot.PatientID == "" {
		return EvaluationResult{}, fmt.Errorf("patient_id is required")
	}
	if module != "" && !validModule(module) {
		return EvaluationResult{}, fmt.Errorf("invalid module: %s", module)
	}

	result := s.engine.Evaluate(snapshot, module)

	for i := range result.Alerts {
		if err := s.alerts.Create(ctx, &result.Alerts[i]); err != nil {
			return result, fmt.Errorf("store alert %s: %w", result.Alerts[i].ID, err)
		}
	}
	return result, nil
}

func (s *Service) GetAlert(ctx context.Context, id string) (*Alert, error) {
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}
	return s.alerts.GetByID(ctx, id)
}

func (s *Service) ListAlertsByPatient(ctx context.Context, patientID string, limit, offset int) ([]*Alert, int, error) {
	if patientID == "" {
		return nil, 0, fmt.Errorf("patient_id is required")
	}
	return s.alerts.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) AcknowledgeAlert(ctx context.Context, id, by string) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}
	if by == "" {
		return fmt.Errorf("acknowledged_by is required")
	}
	return s.alerts.Acknowledge(ctx, id, by, time.Now().UTC())
}

func (s *Service) ResolveAlert(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}
	return s.alerts.Resolve(ctx, id, time.Now().UTC())
}

// Registry exposes the rule catalog for the read endpoints and the CLI.
func (s *Service) Registry() *Registry {
	return s.engine.registry
}

var validModules = map[Module]bool{
	ModuleGeneral:       true,
	ModuleDialysis:      true,
	ModuleCardiology:    true,
	ModuleOphthalmology: true,
}

func validModule(m Module) bool {
	return validModules[m]
}
