package cdss

import (
	"context"
	"errors"
	"testing"
	"time"
)

// ── Mock repository ──

type mockAlertRepo struct {
	alerts    map[string]*Alert
	createErr error
}

func newMockAlertRepo() *mockAlertRepo {
	return &mockAlertRepo{alerts: make(map[string]*Alert)}
}

func (m *mockAlertRepo) Create(ctx context.Context, a *Alert) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *a
	m.alerts[a.ID] = &cp
	return nil
}

func (m *mockAlertRepo) GetByID(ctx context.Context, id string) (*Alert, error) {
	a, ok := m.alerts[id]
	if !ok {
		return nil, errors.New("alert not found")
	}
	return a, nil
}

func (m *mockAlertRepo) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*Alert, int, error) {
	var out []*Alert
	for _, a := range m.alerts {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, len(out), nil
}

func (m *mockAlertRepo) Acknowledge(ctx context.Context, id, by string, at time.Time) error {
	a, ok := m.alerts[id]
	if !ok {
		return errors.New("alert not found")
	}
	a.AcknowledgedAt = &at
	a.AcknowledgedBy = &by
	return nil
}

func (m *mockAlertRepo) Resolve(ctx context.Context, id string, at time.Time) error {
	a, ok := m.alerts[id]
	if !ok {
		return errors.New("alert not found")
	}
	a.ResolvedAt = &at
	return nil
}

func newTestService(repo AlertRepository) *Service {
	return NewService(newTestEngine(), repo)
}

// ── Tests ──

func TestService_EvaluatePersistsAlerts(t *testing.T) {
	repo := newMockAlertRepo()
	svc := newTestService(repo)

	snapshot := ClinicalSnapshot{PatientID: "p1", Labs: Labs{Potassium: f(6.5)}}
	result, err := svc.Evaluate(context.Background(), snapshot, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AlertsGenerated == 0 {
		t.Fatal("expected a hyperkalemia alert")
	}
	if len(repo.alerts) != result.AlertsGenerated {
		t.Errorf("expected %d stored alerts, got %d", result.AlertsGenerated, len(repo.alerts))
	}
}

func TestService_EvaluateRequiresPatientID(t *testing.T) {
	svc := newTestService(newMockAlertRepo())
	_, err := svc.Evaluate(context.Background(), ClinicalSnapshot{}, "")
	if err == nil {
		t.Fatal("expected error for missing patient id")
	}
}

func TestService_EvaluateRejectsUnknownModule(t *testing.T) {
	svc := newTestService(newMockAlertRepo())
	snapshot := ClinicalSnapshot{PatientID: "p1"}
	_, err := svc.Evaluate(context.Background(), snapshot, Module("nephrology"))
	if err == nil {
		t.Fatal("expected error for unknown module")
	}
}

func TestService_EvaluateStorageFailureKeepsResult(t *testing.T) {
	repo := newMockAlertRepo()
	repo.createErr = errors.New("connection refused")
	svc := newTestService(repo)

	snapshot := ClinicalSnapshot{PatientID: "p1", Labs: Labs{Potassium: f(6.5)}}
	result, err := svc.Evaluate(context.Background(), snapshot, "")
	if err == nil {
		t.Fatal("expected storage error to surface")
	}
	if result.AlertsGenerated == 0 {
		t.Error("evaluation result must still carry the alerts")
	}
}

func TestService_AcknowledgeAndResolve(t *testing.T) {
	repo := newMockAlertRepo()
	svc := newTestService(repo)

	snapshot := ClinicalSnapshot{PatientID: "p1", Labs: Labs{Potassium: f(6.5)}}
	result, err := svc.Evaluate(context.Background(), snapshot, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := result.Alerts[0].ID

	if err := svc.AcknowledgeAlert(context.Background(), id, "dr.lee"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, err := svc.GetAlert(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.AcknowledgedAt == nil || stored.AcknowledgedBy == nil || *stored.AcknowledgedBy != "dr.lee" {
		t.Error("expected acknowledgment to be recorded")
	}

	if err := svc.ResolveAlert(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, _ = svc.GetAlert(context.Background(), id)
	if stored.ResolvedAt == nil {
		t.Error("expected resolution timestamp")
	}
}

func TestService_AcknowledgeValidation(t *testing.T) {
	svc := newTestService(newMockAlertRepo())
	if err := svc.AcknowledgeAlert(context.Background(), "", "dr.lee"); err == nil {
		t.Error("expected error for missing id")
	}
	if err := svc.AcknowledgeAlert(context.Background(), "a1", ""); err == nil {
		t.Error("expected error for missing acknowledged_by")
	}
}

func TestService_ListAlertsByPatient(t *testing.T) {
	repo := newMockAlertRepo()
	svc := newTestService(repo)

	snapshot := ClinicalSnapshot{PatientID: "p1", Labs: Labs{Potassium: f(6.5)}}
	if _, err := svc.Evaluate(context.Background(), snapshot, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alerts, total, err := svc.ListAlertsByPatient(context.Background(), "p1", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total == 0 || len(alerts) == 0 {
		t.Error("expected stored alerts for p1")
	}

	if _, _, err := svc.ListAlertsByPatient(context.Background(), "", 20, 0); err == nil {
		t.Error("expected error for missing patient id")
	}
}
