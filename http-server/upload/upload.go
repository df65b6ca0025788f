package upload

import (
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"react-golang/internal/storage"
)

type ResponseError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type ReportService interface {
	ProcessUpload(ctx context.Context, file io.Reader, fileName string, today time.Time) ([]*storage.PrefixGroup, error)
}

// UploadReport recebe a planilha de apontamento por multipart (campo "file"),
// processa e responde com os grupos de prefixo já ordenados.
func UploadReport(log *slog.Logger, limitMB int64, service ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.upload.UploadReport"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		r.Body = http.MaxBytesReader(w, r.Body, limitMB<<20)

		if err := r.ParseMultipartForm(limitMB << 20); err != nil {
			log.Error("multipart inválido", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, ResponseError{Error: "Nenhum arquivo foi enviado"})
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			log.Error("campo file ausente", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, ResponseError{Error: "Nenhum arquivo foi enviado"})
			return
		}
		defer file.Close()

		if !isSpreadsheet(header) {
			log.Error("arquivo recusado", slog.String("file", header.Filename))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, ResponseError{Error: "Apenas arquivos Excel (.xlsx) são permitidos"})
			return
		}

		// o processamento lê a planilha inteira, precisa de mais folga
		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		groups, err := service.ProcessUpload(ctx, file, header.Filename, time.Now())
		if err != nil {
			log.Error("erro ao processar a planilha", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseError{Error: "Erro ao processar o arquivo", Details: err.Error()})
			return
		}

		render.JSON(w, r, groups)
	}
}

func isSpreadsheet(header *multipart.FileHeader) bool {
	if header.Header.Get("Content-Type") == "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		return true
	}
	name := strings.ToLower(header.Filename)
	return strings.HasSuffix(name, ".xlsx") || strings.HasSuffix(name, ".xls")
}
