package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallerapp/workshop-manager/internal/models"
)

func sampleAppointments() []models.Appointment {
	return []models.Appointment{
		{
			Date:        time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			StartTime:   "09:00",
			Status:      "COMPLETED",
			Description: "Full service",
			Client:      &models.Client{Name: "Ana Perez", Phone: "555-0101"},
			Vehicle:     &models.Vehicle{Make: "Toyota", Model: "Corolla", Plate: "ABC123"},
			Jobs: []models.Job{
				{Description: "Oil change", Price: 50},
				{Description: "Brake pads", Price: 120.5},
			},
		},
	}
}

func TestRowsFlattenJobs(t *testing.T) {
	rows := Rows(sampleAppointments())
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "10/03/2025", row[0])
	assert.Equal(t, "09:00", row[1])
	assert.Equal(t, "COMPLETED", row[2])
	assert.Equal(t, "Ana Perez", row[3])
	assert.Equal(t, "Toyota Corolla", row[5])
	assert.Equal(t, "ABC123", row[6])
	assert.Equal(t, "Oil change ($50) | Brake pads ($120.5)", row[8])
	assert.Equal(t, "170.50", row[9])
}

func TestRowsMissingRelations(t *testing.T) {
	rows := Rows([]models.Appointment{{
		Date:   time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Status: "PENDING",
	}})
	require.Len(t, rows, 1)

	assert.Equal(t, "", rows[0][3])
	assert.Equal(t, "", rows[0][6])
	assert.Equal(t, "0.00", rows[0][9])
}

func TestCSVFormat(t *testing.T) {
	out := string(CSV(sampleAppointments()))

	assert.True(t, strings.HasPrefix(out, "\uFEFF"), "must start with a BOM")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)

	header := strings.TrimPrefix(lines[0], "\uFEFF")
	assert.Equal(t,
		`"Date","Time","Status","Client","Phone","Vehicle","Plate","Description","Jobs","Total"`,
		header)

	// every data cell quoted
	for _, cell := range strings.Split(lines[1], ",") {
		assert.True(t, strings.HasPrefix(cell, `"`), "cell %q not quoted", cell)
		assert.True(t, strings.HasSuffix(cell, `"`), "cell %q not quoted", cell)
	}
}

func TestCSVEscapesQuotes(t *testing.T) {
	out := string(CSV([]models.Appointment{{
		Date:        time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Description: `engine "knock" check`,
	}}))

	assert.Contains(t, out, `"engine ""knock"" check"`)
}

func TestXLSXHasReportSheet(t *testing.T) {
	f, err := XLSX(sampleAppointments())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Report"}, f.GetSheetList())

	got, err := f.GetCellValue("Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", got)

	got, err = f.GetCellValue("Report", "J2")
	require.NoError(t, err)
	assert.Equal(t, "170.50", got)
}
