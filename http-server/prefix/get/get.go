package get

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"react-golang/internal/service/report"
	"react-golang/internal/storage"
)

type ResponsePrefixes struct {
	Prefixes []*storage.PrefixName `json:"prefixes"`
	Status   string                `json:"status"`
	Error    string                `json:"error,omitempty"`
}

type PrefixNames interface {
	GetPrefixNames(ctx context.Context) (map[string]string, error)
}

// GetPrefixNames devolve a tabela efetiva de prefixos: a padrão com os
// overrides do banco por cima, ordenada por prefixo
func GetPrefixNames(log *slog.Logger, prefixes PrefixNames) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.prefix.GetPrefixNames"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		overrides, err := prefixes.GetPrefixNames(ctx)
		if err != nil {
			// sem o banco a tabela padrão ainda serve
			log.Error("erro ao buscar os overrides de prefixo", slog.String("op", op), slog.String("error", err.Error()))
			overrides = nil
		}

		effective := report.EffectivePrefixNames(overrides)

		list := make([]*storage.PrefixName, 0, len(effective))
		for prefix, name := range effective {
			list = append(list, &storage.PrefixName{Prefix: prefix, Name: name})
		}
		sort.Slice(list, func(i, j int) bool {
			return list[i].Prefix < list[j].Prefix
		})

		render.JSON(w, r, ResponsePrefixes{
			Prefixes: list,
			Status:   strconv.Itoa(http.StatusOK),
		})
	}
}
