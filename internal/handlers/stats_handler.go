package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tallerapp/workshop-manager/internal/httperr"
	"github.com/tallerapp/workshop-manager/internal/httpresp"
	ucAppointment "github.com/tallerapp/workshop-manager/internal/usecase/appointment"
)

type StatsHandler struct {
	statsUC *ucAppointment.GetStats
	log     *zap.Logger
}

func NewStatsHandler(
	statsUC *ucAppointment.GetStats,
	log *zap.Logger,
) *StatsHandler {
	return &StatsHandler{statsUC: statsUC, log: log}
}

func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.statsUC.Execute(c.Request.Context(), ucAppointment.StatsQuery{
		Month: c.Query("month"),
		Year:  c.Query("year"),
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "invalid_month":
			httperr.BadRequest(c, "invalid_month", "Invalid month.")
		case "invalid_year":
			httperr.BadRequest(c, "invalid_year", "Invalid year.")
		default:
			h.log.Error("stats query failed", zap.Error(err))
			httperr.Internal(c, "failed_to_get_stats", "Could not compute statistics.")
		}
		return
	}

	httpresp.OK(c, stats)
}
