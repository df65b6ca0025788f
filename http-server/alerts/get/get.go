package get

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"react-golang/internal/service/alerts"
	"react-golang/internal/storage"
)

type ResponseAlerts struct {
	Alerts []*alerts.Alert `json:"alerts"`
	Status string          `json:"status"`
	Error  string          `json:"error,omitempty"`
}

type ReportSource interface {
	GetLatestReport(ctx context.Context) (*storage.Report, error)
}

// GetAlerts deriva os alertas de prazo do último relatório guardado
func GetAlerts(log *slog.Logger, reports ReportSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.alerts.GetAlerts"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		report, err := reports.GetLatestReport(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, ResponseAlerts{Error: "Nenhum relatório processado ainda"})
				return
			}
			log.Error("erro ao buscar o relatório para os alertas", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseAlerts{Error: "Erro ao gerar os alertas"})
			return
		}

		render.JSON(w, r, ResponseAlerts{
			Alerts: alerts.BuildAlerts(report.Groups, time.Now()),
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}
