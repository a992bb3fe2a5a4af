package appointment

import (
	"context"
	"strings"

	"github.com/tallerapp/workshop-manager/internal/dates"
	domain "github.com/tallerapp/workshop-manager/internal/domain/appointment"
	"github.com/tallerapp/workshop-manager/internal/httperr"
	"github.com/tallerapp/workshop-manager/internal/models"
)

type ReportQuery struct {
	Client string
	Plate  string
	From   string
	To     string
}

type ReportAppointments struct {
	repo domain.Repository
}

func NewReportAppointments(repo domain.Repository) *ReportAppointments {
	return &ReportAppointments{repo: repo}
}

func (uc *ReportAppointments) Execute(
	ctx context.Context,
	q ReportQuery,
) ([]models.Appointment, error) {

	filter := domain.ReportFilter{
		Client: strings.TrimSpace(q.Client),
		Plate:  strings.TrimSpace(q.Plate),
	}

	if q.From != "" || q.To != "" {
		rng, err := dates.ReportRange(q.From, q.To)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		filter.Range = &rng
	}

	return uc.repo.Search(ctx, filter)
}
