package appointment

import (
	"context"
	"strconv"

	"github.com/tallerapp/workshop-manager/internal/dates"
	domain "github.com/tallerapp/workshop-manager/internal/domain/appointment"
	"github.com/tallerapp/workshop-manager/internal/httperr"
	"github.com/tallerapp/workshop-manager/internal/models"
)

// ListQuery holds the three mutually exclusive filter modes of the
// calendar listing: exact day, month+year, or nothing.
type ListQuery struct {
	Date  string
	Month string
	Year  string
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	q ListQuery,
) ([]models.Appointment, error) {

	rng, err := resolveRange(q)
	if err != nil {
		return nil, err
	}

	return uc.repo.List(ctx, rng)
}

func resolveRange(q ListQuery) (*dates.Range, error) {
	if q.Date != "" {
		day, err := dates.ParseDay(q.Date)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		rng := dates.DayRange(day)
		return &rng, nil
	}

	if q.Month != "" && q.Year != "" {
		month, err := strconv.Atoi(q.Month)
		if err != nil || month < 1 || month > 12 {
			return nil, httperr.ErrBusiness("invalid_month")
		}
		year, err := strconv.Atoi(q.Year)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_year")
		}
		rng := dates.MonthRange(year, month)
		return &rng, nil
	}

	return nil, nil
}
