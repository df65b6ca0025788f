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

	"react-golang/internal/storage"
)

type ResponseReport struct {
	Report *storage.Report `json:"report"`
	Status string          `json:"status"`
	Error  string          `json:"error,omitempty"`
}

type ResponseHistory struct {
	Reports []*storage.ReportSummary `json:"reports"`
	Status  string                   `json:"status"`
	Error   string                   `json:"error,omitempty"`
}

type LatestReport interface {
	GetLatestReport(ctx context.Context) (*storage.Report, error)
}

type ReportHistory interface {
	ListReports(ctx context.Context) ([]*storage.ReportSummary, error)
}

// GetLatestReport devolve o último relatório processado, para o painel abrir
// sem precisar de um novo upload
func GetLatestReport(log *slog.Logger, reports LatestReport) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GetLatestReport"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		report, err := reports.GetLatestReport(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, ResponseReport{Error: "Nenhum relatório processado ainda"})
				return
			}
			log.Error("erro ao buscar o último relatório", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseReport{Error: "Erro ao buscar o relatório"})
			return
		}

		render.JSON(w, r, ResponseReport{
			Report: report,
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}

// GetReports devolve o histórico resumido de uploads
func GetReports(log *slog.Logger, reports ReportHistory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GetReports"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		summaries, err := reports.ListReports(ctx)
		if err != nil {
			log.Error("erro ao listar o histórico", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseHistory{Error: "Erro ao listar o histórico"})
			return
		}

		render.JSON(w, r, ResponseHistory{
			Reports: summaries,
			Status:  strconv.Itoa(http.StatusOK),
		})
	}
}
