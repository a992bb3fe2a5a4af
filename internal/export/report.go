// Package export renders appointment report rows as downloadable files.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tallerapp/workshop-manager/internal/models"
)

var headers = []string{
	"Date",
	"Time",
	"Status",
	"Client",
	"Phone",
	"Vehicle",
	"Plate",
	"Description",
	"Jobs",
	"Total",
}

// Rows flattens appointments into export rows, one per appointment,
// with the job list concatenated and totalled.
func Rows(appointments []models.Appointment) [][]string {
	rows := make([][]string, 0, len(appointments))

	for _, ap := range appointments {
		var total float64
		jobParts := make([]string, 0, len(ap.Jobs))
		for _, job := range ap.Jobs {
			total += job.Price
			jobParts = append(jobParts,
				fmt.Sprintf("%s ($%g)", job.Description, job.Price))
		}

		var clientName, clientPhone string
		if ap.Client != nil {
			clientName = ap.Client.Name
			clientPhone = ap.Client.Phone
		}
		var vehicleDesc, plate string
		if ap.Vehicle != nil {
			vehicleDesc = ap.Vehicle.Make + " " + ap.Vehicle.Model
			plate = ap.Vehicle.Plate
		}

		rows = append(rows, []string{
			ap.Date.UTC().Format("02/01/2006"),
			ap.StartTime,
			ap.Status,
			clientName,
			clientPhone,
			vehicleDesc,
			plate,
			ap.Description,
			strings.Join(jobParts, " | "),
			fmt.Sprintf("%.2f", total),
		})
	}

	return rows
}

// CSV renders the report as UTF-8 CSV with a byte-order mark. Every
// cell is quoted, with embedded quotes doubled.
func CSV(appointments []models.Appointment) []byte {
	var b strings.Builder
	b.WriteString("\uFEFF")

	writeLine := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}

	writeLine(headers)
	for _, row := range Rows(appointments) {
		writeLine(row)
	}

	return []byte(b.String())
}

// XLSX renders the report as a single-sheet workbook.
func XLSX(appointments []models.Appointment) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Report"

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	writeRow := func(rowNum int, cells []string) error {
		for col, cell := range cells {
			name, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, name, cell); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeRow(1, headers); err != nil {
		return nil, err
	}
	for i, row := range Rows(appointments) {
		if err := writeRow(i+2, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}
