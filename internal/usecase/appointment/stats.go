package appointment

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/tallerapp/workshop-manager/internal/dates"
	domain "github.com/tallerapp/workshop-manager/internal/domain/appointment"
	"github.com/tallerapp/workshop-manager/internal/dto"
	"github.com/tallerapp/workshop-manager/internal/httperr"
)

type StatsQuery struct {
	Month string
	Year  string
}

type GetStats struct {
	repo domain.Repository
}

func NewGetStats(repo domain.Repository) *GetStats {
	return &GetStats{repo: repo}
}

// Execute issues the four independent counts concurrently and joins
// them into one response. Month and year scope the appointment counts;
// the client count is always global.
func (uc *GetStats) Execute(
	ctx context.Context,
	q StatsQuery,
) (*dto.StatsDTO, error) {

	var rng *dates.Range
	if q.Month != "" && q.Year != "" {
		month, err := strconv.Atoi(q.Month)
		if err != nil || month < 1 || month > 12 {
			return nil, httperr.ErrBusiness("invalid_month")
		}
		year, err := strconv.Atoi(q.Year)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_year")
		}
		r := dates.MonthRange(year, month)
		rng = &r
	}

	var stats dto.StatsDTO

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := uc.repo.CountByStatus(gctx, domain.StatusPending, rng)
		stats.Pending = n
		return err
	})
	g.Go(func() error {
		n, err := uc.repo.CountByStatus(gctx, domain.StatusInProgress, rng)
		stats.InProgress = n
		return err
	})
	g.Go(func() error {
		n, err := uc.repo.CountByStatus(gctx, domain.StatusCompleted, rng)
		stats.Completed = n
		return err
	})
	g.Go(func() error {
		n, err := uc.repo.CountClients(gctx)
		stats.TotalClients = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}
