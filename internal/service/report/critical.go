package report

import (
	"react-golang/internal/storage"
)

// MarkCriticalPieces agrupa as peças pelo número base e marca como crítica,
// em cada contexto, a peça com mais horas restantes — o gargalo daquele item.
// A comparação estrita mantém a primeira peça em caso de empate. Contexto sem
// horas pendentes não tem peça crítica.
func MarkCriticalPieces(pieces []*storage.Piece) {
	contexts := make(map[string][]*storage.Piece)
	for _, piece := range pieces {
		contexts[piece.BaseNumber] = append(contexts[piece.BaseNumber], piece)
	}

	for _, group := range contexts {
		var critical *storage.Piece
		maxHours := 0.0

		for _, piece := range group {
			if piece.RemainingHours > maxHours {
				maxHours = piece.RemainingHours
				critical = piece
			}
		}

		if critical != nil && critical.RemainingHours > 0 {
			critical.IsCritical = true
		}
	}
}
