package appointment

import (
	"context"

	"github.com/tallerapp/workshop-manager/internal/audit"
	"github.com/tallerapp/workshop-manager/internal/dates"
	domain "github.com/tallerapp/workshop-manager/internal/domain/appointment"
	"github.com/tallerapp/workshop-manager/internal/models"
)

// mockRepository lets each test plug in just the calls it needs.
type mockRepository struct {
	CreateFn        func(ctx context.Context, ap *models.Appointment) error
	GetByIDFn       func(ctx context.Context, id string) (*models.Appointment, error)
	UpdateFn        func(ctx context.Context, ap *models.Appointment) error
	DeleteFn        func(ctx context.Context, id string) error
	ListFn          func(ctx context.Context, rng *dates.Range) ([]models.Appointment, error)
	SearchFn        func(ctx context.Context, filter domain.ReportFilter) ([]models.Appointment, error)
	CountByStatusFn func(ctx context.Context, status domain.Status, rng *dates.Range) (int64, error)
	CountClientsFn  func(ctx context.Context) (int64, error)
}

var _ domain.Repository = (*mockRepository)(nil)

func (m *mockRepository) Create(ctx context.Context, ap *models.Appointment) error {
	return m.CreateFn(ctx, ap)
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockRepository) Update(ctx context.Context, ap *models.Appointment) error {
	return m.UpdateFn(ctx, ap)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	return m.DeleteFn(ctx, id)
}

func (m *mockRepository) List(ctx context.Context, rng *dates.Range) ([]models.Appointment, error) {
	return m.ListFn(ctx, rng)
}

func (m *mockRepository) Search(ctx context.Context, filter domain.ReportFilter) ([]models.Appointment, error) {
	return m.SearchFn(ctx, filter)
}

func (m *mockRepository) CountByStatus(ctx context.Context, status domain.Status, rng *dates.Range) (int64, error) {
	return m.CountByStatusFn(ctx, status, rng)
}

func (m *mockRepository) CountClients(ctx context.Context) (int64, error) {
	return m.CountClientsFn(ctx)
}

// recordingAuditor captures dispatched events for assertions.
type recordingAuditor struct {
	events []audit.Event
}

var _ Auditor = (*recordingAuditor)(nil)

func (a *recordingAuditor) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}
