package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tallerapp/workshop-manager/internal/export"
	"github.com/tallerapp/workshop-manager/internal/httperr"
	"github.com/tallerapp/workshop-manager/internal/httpresp"
	ucAppointment "github.com/tallerapp/workshop-manager/internal/usecase/appointment"
)

type ReportHandler struct {
	reportUC *ucAppointment.ReportAppointments
	log      *zap.Logger
}

func NewReportHandler(
	reportUC *ucAppointment.ReportAppointments,
	log *zap.Logger,
) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, log: log}
}

func (h *ReportHandler) query(c *gin.Context) ucAppointment.ReportQuery {
	return ucAppointment.ReportQuery{
		Client: c.Query("client"),
		Plate:  c.Query("plate"),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}
}

func (h *ReportHandler) respondError(c *gin.Context, err error) {
	if httperr.IsBusiness(err, "invalid_date") {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}
	h.log.Error("report query failed", zap.Error(err))
	httperr.Internal(c, "failed_to_build_report", "Could not build report.")
}

// List returns full appointment records with nested client, vehicle and
// jobs for client-side grouping.
func (h *ReportHandler) List(c *gin.Context) {
	aps, err := h.reportUC.Execute(c.Request.Context(), h.query(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	httpresp.OK(c, aps)
}

// Export streams the same report as a CSV or XLSX download.
func (h *ReportHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		httperr.BadRequest(c, "invalid_format", "Format must be csv or xlsx.")
		return
	}

	aps, err := h.reportUC.Execute(c.Request.Context(), h.query(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if format == "csv" {
		c.Header("Content-Disposition", `attachment; filename="appointments_report.csv"`)
		c.Data(200, "text/csv; charset=utf-8", export.CSV(aps))
		return
	}

	f, err := export.XLSX(aps)
	if err != nil {
		h.log.Error("render xlsx report", zap.Error(err))
		httperr.Internal(c, "failed_to_build_report", "Could not build report.")
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="appointments_report.xlsx"`)
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		h.log.Error("write xlsx report", zap.Error(err))
	}
}
