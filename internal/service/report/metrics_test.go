package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"react-golang/internal/storage"
)

var today = time.Date(2026, time.August, 29, 15, 30, 0, 0, time.Local)

func TestDaysLate(t *testing.T) {
	// três dias estourados
	assert.Equal(t, 3, DaysLate(date(2026, time.August, 26), today))
	// prazo de hoje ainda não é atraso
	assert.Equal(t, 0, DaysLate(date(2026, time.August, 29), today))
	// prazo futuro
	assert.Equal(t, 0, DaysLate(date(2026, time.September, 10), today))
	// sem prazo não conta atraso
	assert.Equal(t, 0, DaysLate(nil, today))
}

func TestCalculateMetrics_Progress(t *testing.T) {
	pieces := []*storage.Piece{{
		Orders: []*storage.ProductionOrder{
			{Operations: []*storage.Operation{
				{Status: storage.OperacaoConcluida},
				{Status: storage.OperacaoNaoIniciada},
			}},
			{Operations: []*storage.Operation{
				{Status: storage.OperacaoConcluida},
				{Status: storage.OperacaoEmAndamento},
				{Status: storage.OperacaoNaoIniciada},
			}},
			{Operations: []*storage.Operation{}},
		},
	}}

	CalculateMetrics(pieces, today)

	assert.Equal(t, 50, pieces[0].Orders[0].Progress)
	// 1/3 arredonda para 33
	assert.Equal(t, 33, pieces[0].Orders[1].Progress)
	// OP sem operação fica em zero
	assert.Equal(t, 0, pieces[0].Orders[2].Progress)
}

// prazo três dias atrás com 40% de progresso: atrasada em 3 dias
func TestCalculateMetrics_LateOrder(t *testing.T) {
	pieces := []*storage.Piece{{
		Orders: []*storage.ProductionOrder{{
			Deadline: date(2026, time.August, 26),
			Operations: []*storage.Operation{
				{Status: storage.OperacaoConcluida},
				{Status: storage.OperacaoConcluida},
				{Status: storage.OperacaoNaoIniciada},
				{Status: storage.OperacaoNaoIniciada},
				{Status: storage.OperacaoNaoIniciada},
			},
		}},
	}}

	CalculateMetrics(pieces, today)

	order := pieces[0].Orders[0]
	assert.Equal(t, 40, order.Progress)
	assert.Equal(t, 3, order.DaysLate)
	assert.Equal(t, storage.OrdemAtrasada, order.Status)
}

// progresso 100 é concluída mesmo com o prazo estourado
func TestCalculateMetrics_CompletedBeatsLate(t *testing.T) {
	pieces := []*storage.Piece{{
		Orders: []*storage.ProductionOrder{{
			Deadline: date(2026, time.August, 1),
			Operations: []*storage.Operation{
				{Status: storage.OperacaoConcluida},
			},
		}},
	}}

	CalculateMetrics(pieces, today)

	order := pieces[0].Orders[0]
	assert.Equal(t, 100, order.Progress)
	assert.True(t, order.DaysLate > 0)
	assert.Equal(t, storage.OrdemConcluida, order.Status)
}

func TestCalculateMetrics_OnTime(t *testing.T) {
	pieces := []*storage.Piece{{
		Orders: []*storage.ProductionOrder{{
			Deadline: date(2026, time.December, 1),
			Operations: []*storage.Operation{
				{Status: storage.OperacaoNaoIniciada},
			},
		}},
	}}

	CalculateMetrics(pieces, today)

	order := pieces[0].Orders[0]
	assert.Equal(t, 0, order.DaysLate)
	assert.Equal(t, storage.OrdemNoPrazo, order.Status)
}

// horas da OP e da peça saem com uma casa decimal
func TestCalculateMetrics_Rounding(t *testing.T) {
	pieces := []*storage.Piece{{
		Orders: []*storage.ProductionOrder{
			{RemainingHours: 1.2345, Operations: []*storage.Operation{{Status: storage.OperacaoNaoIniciada}}},
			{RemainingHours: 2.071, Operations: []*storage.Operation{{Status: storage.OperacaoNaoIniciada}}},
		},
	}}

	CalculateMetrics(pieces, today)

	assert.Equal(t, 1.2, pieces[0].Orders[0].RemainingHours)
	assert.Equal(t, 2.1, pieces[0].Orders[1].RemainingHours)
	assert.Equal(t, 3.3, pieces[0].RemainingHours)
}

func TestCalculateMetrics_HasMissingPieces(t *testing.T) {
	pieces := []*storage.Piece{{
		Orders: []*storage.ProductionOrder{
			// tem operação concluída e entregou menos do que o planejado
			{
				PlannedQuantity: 10,
				RealQuantity:    7,
				Operations:      []*storage.Operation{{Status: storage.OperacaoConcluida}, {Status: storage.OperacaoNaoIniciada}},
			},
			// nada concluído ainda: não acusa falta
			{
				PlannedQuantity: 10,
				RealQuantity:    0,
				Operations:      []*storage.Operation{{Status: storage.OperacaoNaoIniciada}},
			},
			// quantidade fechada
			{
				PlannedQuantity: 10,
				RealQuantity:    10,
				Operations:      []*storage.Operation{{Status: storage.OperacaoConcluida}},
			},
		},
	}}

	CalculateMetrics(pieces, today)

	assert.True(t, pieces[0].Orders[0].HasMissingPieces)
	assert.False(t, pieces[0].Orders[1].HasMissingPieces)
	assert.False(t, pieces[0].Orders[2].HasMissingPieces)
}

// OP nunca sai crítica do cálculo
func TestCalculateMetrics_OrderNeverCritical(t *testing.T) {
	pieces := []*storage.Piece{{
		Orders: []*storage.ProductionOrder{{
			IsCritical: true,
			Operations: []*storage.Operation{{Status: storage.OperacaoNaoIniciada}},
		}},
	}}

	CalculateMetrics(pieces, today)

	assert.False(t, pieces[0].Orders[0].IsCritical)
}

// OPs ordenadas pelo prazo crescente, sem prazo vai para o fim
func TestCalculateMetrics_SortOrdersByDeadline(t *testing.T) {
	pieces := []*storage.Piece{{
		Orders: []*storage.ProductionOrder{
			{OpID: "C", Deadline: nil},
			{OpID: "B", Deadline: date(2026, time.October, 1)},
			{OpID: "A", Deadline: date(2026, time.September, 1)},
		},
	}}

	CalculateMetrics(pieces, today)

	assert.Equal(t, "A", pieces[0].Orders[0].OpID)
	assert.Equal(t, "B", pieces[0].Orders[1].OpID)
	assert.Equal(t, "C", pieces[0].Orders[2].OpID)
}
