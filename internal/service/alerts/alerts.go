package alerts

import (
	"fmt"
	"math"
	"sort"
	"time"

	"react-golang/internal/storage"
)

const (
	LevelCritical = "critical"
	LevelWarning  = "warning"
	LevelInfo     = "info"
)

// Alert é um aviso de prazo sobre uma OP do último relatório
type Alert struct {
	ID                string `json:"id"`
	OpID              string `json:"op_id"`
	ProductCode       string `json:"product_code"`
	Level             string `json:"level"`
	Title             string `json:"title"`
	Message           string `json:"message"`
	DaysUntilDeadline int    `json:"days_until_deadline"`
	Progress          int    `json:"progress"`
}

var levelRank = map[string]int{
	LevelCritical: 0,
	LevelWarning:  1,
	LevelInfo:     2,
}

// BuildAlerts varre o relatório e gera os alertas de prazo por OP. OPs
// concluídas ou sem prazo não geram alerta. A saída vem ordenada do mais
// grave para o menos grave, estável dentro do mesmo nível.
func BuildAlerts(groups []*storage.PrefixGroup, today time.Time) []*Alert {
	out := make([]*Alert, 0)

	for _, group := range groups {
		for _, piece := range group.Pieces {
			for _, order := range piece.Orders {
				if order.Status == storage.OrdemConcluida || order.Deadline == nil {
					continue
				}

				days := daysUntilDeadline(*order.Deadline, today)
				level := alertLevel(days, order.Progress)
				if level == "" {
					continue
				}

				title, message := alertMessage(order.OpID, level, days, order.Progress)
				out = append(out, &Alert{
					ID:                fmt.Sprintf("%s-%s", order.OpID, level),
					OpID:              order.OpID,
					ProductCode:       piece.ProductCode,
					Level:             level,
					Title:             title,
					Message:           message,
					DaysUntilDeadline: days,
					Progress:          order.Progress,
				})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return levelRank[out[i].Level] < levelRank[out[j].Level]
	})

	return out
}

// dias até o prazo, negativo quando a OP já estourou
func daysUntilDeadline(deadline time.Time, today time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	d := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, deadline.Location())
	return int(math.Round(d.Sub(t).Hours() / 24))
}

// alertLevel calcula o nível do aviso pelo prazo e progresso da OP
func alertLevel(daysUntilDeadline, progress int) string {
	// OP já atrasada
	if daysUntilDeadline < 0 {
		return LevelCritical
	}

	// prazo em cima (7 dias ou menos) com progresso baixo
	if daysUntilDeadline <= 7 {
		if progress < 80 {
			return LevelCritical
		} else if progress < 100 {
			return LevelWarning
		}
	}

	// prazo próximo (15 dias ou menos) com progresso muito baixo
	if daysUntilDeadline <= 15 && progress < 50 {
		return LevelWarning
	}

	// prazo chegando (30 dias ou menos) sem progresso
	if daysUntilDeadline <= 30 && progress < 20 {
		return LevelInfo
	}

	return ""
}

func alertMessage(opID, level string, daysUntilDeadline, progress int) (string, string) {
	if daysUntilDeadline < 0 {
		daysLate := -daysUntilDeadline
		return fmt.Sprintf("OP %s - Atrasada", opID),
			fmt.Sprintf("Esta ordem está %d dia%s atrasada com apenas %d%% de progresso.", daysLate, plural(daysLate), progress)
	}

	switch level {
	case LevelCritical:
		return fmt.Sprintf("OP %s - Urgente", opID),
			fmt.Sprintf("Prazo em %d dia%s com %d%% de progresso. Ação imediata necessária!", daysUntilDeadline, plural(daysUntilDeadline), progress)
	case LevelWarning:
		return fmt.Sprintf("OP %s - Atenção", opID),
			fmt.Sprintf("Prazo em %d dias com %d%% de progresso. Requer acompanhamento.", daysUntilDeadline, progress)
	}

	return fmt.Sprintf("OP %s - Monitorar", opID),
		fmt.Sprintf("Prazo em %d dias com %d%% de progresso.", daysUntilDeadline, progress)
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
