package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tallerapp/workshop-manager/internal/audit"
	"github.com/tallerapp/workshop-manager/internal/dates"
	domain "github.com/tallerapp/workshop-manager/internal/domain/appointment"
	"github.com/tallerapp/workshop-manager/internal/httperr"
	"github.com/tallerapp/workshop-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdateInput is a partial update: nil fields are left unchanged.
type UpdateInput struct {
	Date        *string
	StartTime   *string
	EndTime     *string
	Description *string
	Status      *string
	ClientID    *string
	VehicleID   *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	audit Auditor
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit Auditor,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id string,
	in UpdateInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	previousStatus := ap.Status

	if in.Status != nil {
		if err := domain.Transition(
			domain.Status(ap.Status),
			domain.Status(*in.Status),
		); err != nil {
			return nil, err
		}
		ap.Status = *in.Status
	}

	if in.Date != nil {
		day, err := dates.ParseDay(*in.Date)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		ap.Date = day
	}
	if in.StartTime != nil {
		ap.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		ap.EndTime = *in.EndTime
	}
	if in.Description != nil {
		ap.Description = *in.Description
	}
	// Drop the preloaded structs on reassignment so the new foreign key
	// is what gets persisted, not the old owner hanging off them.
	if in.ClientID != nil {
		ap.ClientID = *in.ClientID
		ap.Client = nil
	}
	if in.VehicleID != nil {
		ap.VehicleID = *in.VehicleID
		ap.Vehicle = nil
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	updated, err := uc.repo.GetByID(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	action := "appointment_updated"
	if updated.Status != previousStatus {
		action = "appointment_status_changed"
	}
	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "appointment",
		EntityID: &updated.ID,
		Metadata: map[string]any{
			"from": previousStatus,
			"to":   updated.Status,
		},
	})

	return updated, nil
}
