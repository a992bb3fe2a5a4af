package appointment

import (
	"context"

	"github.com/tallerapp/workshop-manager/internal/audit"
	"github.com/tallerapp/workshop-manager/internal/dates"
	domain "github.com/tallerapp/workshop-manager/internal/domain/appointment"
	"github.com/tallerapp/workshop-manager/internal/httperr"
	"github.com/tallerapp/workshop-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	Date        string
	StartTime   string
	EndTime     string
	Description string
	ClientID    string
	VehicleID   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit Auditor
}

func NewCreateAppointment(
	repo domain.Repository,
	audit Auditor,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	day, err := dates.ParseDay(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	ap := &models.Appointment{
		Date:        day,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Description: in.Description,
		Status:      string(domain.InitialStatus()),
		ClientID:    in.ClientID,
		VehicleID:   in.VehicleID,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	// Reload so the response carries the client, vehicle and jobs.
	created, err := uc.repo.GetByID(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return created, nil
}
