package appointment

import (
	"context"

	"github.com/tallerapp/workshop-manager/internal/dates"
	"github.com/tallerapp/workshop-manager/internal/models"
)

type Repository interface {
	// -------- Appointment CRUD --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// GetByID loads the appointment with its client, vehicle and jobs.
	GetByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error

	// -------- Listing --------

	// List returns appointments inside rng (or all when rng is nil),
	// ordered by date then start time, ascending.
	List(
		ctx context.Context,
		rng *dates.Range,
	) ([]models.Appointment, error)

	// Search applies the report filter, ordered by date descending
	// then start time ascending.
	Search(
		ctx context.Context,
		filter ReportFilter,
	) ([]models.Appointment, error)

	// -------- Counting --------

	CountByStatus(
		ctx context.Context,
		status Status,
		rng *dates.Range,
	) (int64, error)

	CountClients(
		ctx context.Context,
	) (int64, error)
}
