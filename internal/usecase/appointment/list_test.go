package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallerapp/workshop-manager/internal/dates"
	domain "github.com/tallerapp/workshop-manager/internal/domain/appointment"
	"github.com/tallerapp/workshop-manager/internal/httperr"
	"github.com/tallerapp/workshop-manager/internal/models"
)

func TestListAppointmentsByDay(t *testing.T) {
	var captured *dates.Range

	repo := &mockRepository{
		ListFn: func(_ context.Context, rng *dates.Range) ([]models.Appointment, error) {
			captured = rng
			return []models.Appointment{}, nil
		},
	}

	uc := NewListAppointments(repo)

	_, err := uc.Execute(context.Background(), ListQuery{Date: "2025-03-10"})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), captured.From)
	assert.Equal(t, time.Date(2025, time.March, 10, 23, 59, 59, 999000000, time.UTC), captured.To)
}

func TestListAppointmentsByMonth(t *testing.T) {
	var captured *dates.Range

	repo := &mockRepository{
		ListFn: func(_ context.Context, rng *dates.Range) ([]models.Appointment, error) {
			captured = rng
			return nil, nil
		},
	}

	uc := NewListAppointments(repo)

	_, err := uc.Execute(context.Background(), ListQuery{Month: "2", Year: "2024"})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), captured.From)
	// 2024 is a leap year
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC), captured.To)
}

func TestListAppointmentsUnfiltered(t *testing.T) {
	called := false

	repo := &mockRepository{
		ListFn: func(_ context.Context, rng *dates.Range) ([]models.Appointment, error) {
			called = true
			assert.Nil(t, rng)
			return nil, nil
		},
	}

	uc := NewListAppointments(repo)

	_, err := uc.Execute(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestListAppointmentsInvalidFilters(t *testing.T) {
	uc := NewListAppointments(&mockRepository{})

	_, err := uc.Execute(context.Background(), ListQuery{Date: "bogus"})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = uc.Execute(context.Background(), ListQuery{Month: "13", Year: "2025"})
	assert.True(t, httperr.IsBusiness(err, "invalid_month"))

	_, err = uc.Execute(context.Background(), ListQuery{Month: "6", Year: "twenty"})
	assert.True(t, httperr.IsBusiness(err, "invalid_year"))
}

func TestListAppointmentsAcceptsAnyNumericYear(t *testing.T) {
	var captured *dates.Range

	repo := &mockRepository{
		ListFn: func(_ context.Context, rng *dates.Range) ([]models.Appointment, error) {
			captured = rng
			return nil, nil
		},
	}

	uc := NewListAppointments(repo)

	_, err := uc.Execute(context.Background(), ListQuery{Month: "6", Year: "1800"})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, time.Date(1800, time.June, 1, 0, 0, 0, 0, time.UTC), captured.From)
}

func TestReportBuildsFilter(t *testing.T) {
	var captured domain.ReportFilter

	repo := &mockRepository{
		SearchFn: func(_ context.Context, filter domain.ReportFilter) ([]models.Appointment, error) {
			captured = filter
			return nil, nil
		},
	}

	uc := NewReportAppointments(repo)

	_, err := uc.Execute(context.Background(), ReportQuery{
		Client: "  Perez ",
		Plate:  "abc123",
		From:   "2025-01-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "Perez", captured.Client)
	assert.Equal(t, "abc123", captured.Plate)
	require.NotNil(t, captured.Range)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), captured.Range.From)
}

func TestReportWithoutRange(t *testing.T) {
	repo := &mockRepository{
		SearchFn: func(_ context.Context, filter domain.ReportFilter) ([]models.Appointment, error) {
			assert.Nil(t, filter.Range)
			return nil, nil
		},
	}

	uc := NewReportAppointments(repo)

	_, err := uc.Execute(context.Background(), ReportQuery{})
	require.NoError(t, err)
}
