package update

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Request struct {
	Name string `json:"name"`
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type PrefixUpdater interface {
	UpsertPrefixName(ctx context.Context, prefix, name string) error
}

// UpdatePrefixNameAdmin grava o nome de exibição de um prefixo (rota admin)
func UpdatePrefixNameAdmin(log *slog.Logger, prefixes PrefixUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.prefix.UpdatePrefixNameAdmin"

		prefix := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "prefix")))
		if prefix == "" {
			http.Error(w, "Missing prefix", http.StatusBadRequest)
			return
		}

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("corpo inválido", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Name) == "" {
			http.Error(w, "Missing name", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := prefixes.UpsertPrefixName(ctx, prefix, strings.TrimSpace(req.Name)); err != nil {
			log.Error("erro ao gravar o prefixo", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "Erro ao gravar o prefixo"})
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
