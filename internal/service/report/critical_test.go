package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"react-golang/internal/storage"
)

// duas peças do mesmo contexto: a de mais horas vira a crítica
func TestMarkCriticalPieces_Bottleneck(t *testing.T) {
	pieces := []*storage.Piece{
		{ProductCode: "MO-00100-A", BaseNumber: "00100", RemainingHours: 5.0},
		{ProductCode: "FU-00100-B", BaseNumber: "00100", RemainingHours: 2.0},
	}

	MarkCriticalPieces(pieces)

	assert.True(t, pieces[0].IsCritical)
	assert.False(t, pieces[1].IsCritical)
}

// empate mantém a primeira peça do contexto
func TestMarkCriticalPieces_TieKeepsFirst(t *testing.T) {
	pieces := []*storage.Piece{
		{ProductCode: "MO-00100-A", BaseNumber: "00100", RemainingHours: 4.0},
		{ProductCode: "FU-00100-B", BaseNumber: "00100", RemainingHours: 4.0},
	}

	MarkCriticalPieces(pieces)

	assert.True(t, pieces[0].IsCritical)
	assert.False(t, pieces[1].IsCritical)
}

// contexto sem horas pendentes não tem peça crítica
func TestMarkCriticalPieces_AllZero(t *testing.T) {
	pieces := []*storage.Piece{
		{ProductCode: "MO-00100-A", BaseNumber: "00100", RemainingHours: 0},
		{ProductCode: "FU-00100-B", BaseNumber: "00100", RemainingHours: 0},
	}

	MarkCriticalPieces(pieces)

	assert.False(t, pieces[0].IsCritical)
	assert.False(t, pieces[1].IsCritical)
}

// cada contexto marca a sua, no máximo uma por contexto
func TestMarkCriticalPieces_PerContext(t *testing.T) {
	pieces := []*storage.Piece{
		{ProductCode: "MO-00100-A", BaseNumber: "00100", RemainingHours: 1.0},
		{ProductCode: "FU-00100-B", BaseNumber: "00100", RemainingHours: 3.0},
		{ProductCode: "MO-00200-A", BaseNumber: "00200", RemainingHours: 2.0},
		{ProductCode: "BA-00300-C", BaseNumber: "00300", RemainingHours: 0},
	}

	MarkCriticalPieces(pieces)

	criticalCount := 0
	for _, piece := range pieces {
		if piece.IsCritical {
			criticalCount++
		}
	}

	assert.Equal(t, 2, criticalCount)
	assert.True(t, pieces[1].IsCritical)  // gargalo do 00100
	assert.True(t, pieces[2].IsCritical)  // único do 00200 com horas
	assert.False(t, pieces[3].IsCritical) // 00300 zerado
}
