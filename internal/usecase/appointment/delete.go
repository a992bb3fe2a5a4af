package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tallerapp/workshop-manager/internal/audit"
	domain "github.com/tallerapp/workshop-manager/internal/domain/appointment"
	"github.com/tallerapp/workshop-manager/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit Auditor
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit Auditor,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id string,
) error {

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("appointment_not_found")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}
