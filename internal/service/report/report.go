package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"react-golang/internal/constants"
	"react-golang/internal/storage"
)

type ReportStorage interface {
	GetPrefixNames(ctx context.Context) (map[string]string, error)
	SaveReport(ctx context.Context, fileName string, groups []*storage.PrefixGroup) (int64, error)
}

type Decoder interface {
	Decode(r io.Reader) ([]storage.TableRow, error)
}

type Service struct {
	log     *slog.Logger
	storage ReportStorage
	decoder Decoder
}

func NewService(log *slog.Logger, storage ReportStorage, decoder Decoder) *Service {
	return &Service{log: log, storage: storage, decoder: decoder}
}

// Generate roda o pipeline completo sobre as linhas já decodificadas:
// filtro -> hierarquia -> métricas -> criticidade -> agrupamento por prefixo.
// Função pura: a data de referência e a tabela de nomes entram como argumento,
// então duas execuções com a mesma entrada produzem o mesmo relatório.
func Generate(rows []storage.TableRow, today time.Time, prefixNames map[string]string) []*storage.PrefixGroup {
	filtered := FilterRows(rows)
	pieces := BuildPieces(filtered)
	CalculateMetrics(pieces, today)
	MarkCriticalPieces(pieces)
	return BuildPrefixGroups(pieces, prefixNames)
}

// ProcessUpload decodifica a planilha e busca os nomes de prefixo do banco em
// paralelo, roda o pipeline e guarda o resultado no histórico.
func (s *Service) ProcessUpload(ctx context.Context, file io.Reader, fileName string, today time.Time) ([]*storage.PrefixGroup, error) {
	const op = "service.report.ProcessUpload"

	var (
		rows      []storage.TableRow
		overrides map[string]string
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.decoder.Decode(file)
		if err != nil {
			return fmt.Errorf("planilha: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		// sem os overrides o relatório sai com a tabela padrão
		names, err := s.storage.GetPrefixNames(gCtx)
		if err != nil {
			s.log.Error("não foi possível buscar os nomes de prefixo, usando a tabela padrão",
				slog.String("op", op), slog.String("error", err.Error()))
			return nil
		}
		overrides = names
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	groups := Generate(rows, today, EffectivePrefixNames(overrides))

	// histórico é melhor esforço: falha ao guardar não derruba o relatório
	if _, err := s.storage.SaveReport(ctx, fileName, groups); err != nil {
		s.log.Error("não foi possível guardar o relatório no histórico",
			slog.String("op", op), slog.String("error", err.Error()))
	}

	return groups, nil
}

// EffectivePrefixNames aplica os overrides do banco por cima da tabela padrão
func EffectivePrefixNames(overrides map[string]string) map[string]string {
	names := make(map[string]string, len(constants.PrefixNames)+len(overrides))
	for prefix, name := range constants.PrefixNames {
		names[prefix] = name
	}
	for prefix, name := range overrides {
		if name != "" {
			names[prefix] = name
		}
	}
	return names
}
