package report

import (
	"math"
	"sort"
	"time"

	"react-golang/internal/storage"
)

// CalculateMetrics fecha progresso, atraso, status e horas restantes de cada
// OP e acumula as horas na peça. today é a data de referência explícita do
// cálculo de atraso, para o resultado não depender do relógio do servidor.
func CalculateMetrics(pieces []*storage.Piece, today time.Time) {
	for _, piece := range pieces {
		piece.RemainingHours = 0

		for _, order := range piece.Orders {
			completed := 0
			for _, op := range order.Operations {
				if op.Status == storage.OperacaoConcluida {
					completed++
				}
			}

			if len(order.Operations) > 0 {
				order.Progress = int(math.Round(float64(completed) / float64(len(order.Operations)) * 100))
			} else {
				order.Progress = 0
			}

			order.DaysLate = DaysLate(order.Deadline, today)
			order.Status = orderStatus(order.Progress, order.DaysLate)

			order.RemainingHours = roundTenth(order.RemainingHours)
			piece.RemainingHours += order.RemainingHours

			// OP nunca é crítica, criticidade é propriedade da peça
			order.IsCritical = false

			order.HasMissingPieces = completed > 0 && order.RealQuantity < order.PlannedQuantity
		}

		piece.RemainingHours = roundTenth(piece.RemainingHours)

		sort.SliceStable(piece.Orders, func(i, j int) bool {
			return deadlineBefore(piece.Orders[i].Deadline, piece.Orders[j].Deadline)
		})
	}
}

// DaysLate conta dias inteiros de atraso em relação à data de referência,
// nunca negativo. Prazo desconhecido não conta atraso.
func DaysLate(deadline *time.Time, today time.Time) int {
	if deadline == nil {
		return 0
	}

	diff := midnight(today).Sub(midnight(*deadline))
	days := int(math.Ceil(diff.Hours() / 24))
	if days > 0 {
		return days
	}
	return 0
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func orderStatus(progress, daysLate int) string {
	if progress >= 100 {
		return storage.OrdemConcluida
	}
	if daysLate > 0 {
		return storage.OrdemAtrasada
	}
	return storage.OrdemNoPrazo
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// OP sem prazo vai para o fim da fila
func deadlineBefore(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.Before(*b)
}
