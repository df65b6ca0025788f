package report

import (
	"strings"
	"time"

	"react-golang/internal/storage"
)

// ExtractBaseNumber extrai o número base (contexto) do código do produto.
// Ex: MO-11290-S -> 11290
func ExtractBaseNumber(productCode string) string {
	parts := strings.Split(productCode, "-")
	if len(parts) >= 2 {
		return parts[1]
	}
	return productCode
}

// BuildPieces monta a hierarquia peça -> OP -> operações na ordem de chegada
// das linhas. Linhas repetidas da mesma operação na mesma OP são ignoradas.
func BuildPieces(rows []storage.TableRow) []*storage.Piece {
	pieces := make([]*storage.Piece, 0)
	byCode := make(map[string]*storage.Piece, len(rows))

	for i := range rows {
		row := &rows[i]

		piece, ok := byCode[row.CodProduto]
		if !ok {
			piece = &storage.Piece{
				ProductCode: row.CodProduto,
				ProductDesc: row.DescProduto,
				BaseNumber:  ExtractBaseNumber(row.CodProduto),
				Orders:      []*storage.ProductionOrder{},
			}
			byCode[row.CodProduto] = piece
			pieces = append(pieces, piece)
		}

		order := findOrder(piece, row.OrdemProducao)
		if order == nil {
			// prazo e emissão ficam fixos na primeira linha da OP
			order = &storage.ProductionOrder{
				OpID:            row.OrdemProducao,
				Name:            row.Name,
				Deadline:        row.DtPrazo,
				EmissionDate:    formatDate(row.DtEmissao),
				Operations:      []*storage.Operation{},
				PlannedQuantity: row.QuantidadePlanejada,
				RealQuantity:    row.QuantidadeReal,
			}
			piece.Orders = append(piece.Orders, order)
		}

		if hasOperation(order, row.CodOperacao) {
			continue
		}

		status, remaining := operationState(row)

		// quantidades da OP vêm da primeira operação que trouxe valor
		if order.PlannedQuantity == 0 && order.RealQuantity == 0 {
			order.PlannedQuantity = row.QuantidadePlanejada
			order.RealQuantity = row.QuantidadeReal
		}

		order.Operations = append(order.Operations, &storage.Operation{
			Code:   row.CodOperacao,
			Desc:   row.DescGrupoGerencial,
			Status: status,
		})
		order.RemainingHours += remaining
	}

	return pieces
}

func findOrder(piece *storage.Piece, opID string) *storage.ProductionOrder {
	for _, order := range piece.Orders {
		if order.OpID == opID {
			return order
		}
	}
	return nil
}

func hasOperation(order *storage.ProductionOrder, code string) bool {
	for _, op := range order.Operations {
		if op.Code == code {
			return true
		}
	}
	return false
}

// operationState resolve o status da operação e a contribuição dela em horas
// restantes. LIBERADA ainda não começou e deve o tempo todo; INTERROMPIDA é
// trabalho em andamento ou concluído conforme a quantidade real; qualquer
// outro status entra como não iniciada sem horas.
func operationState(row *storage.TableRow) (string, float64) {
	switch row.StatusOperacao {
	case "LIBERADA":
		return storage.OperacaoNaoIniciada, row.QuantidadePlanejada * row.TmpTotalPrevUnid / 60
	case "INTERROMPIDA":
		if row.QuantidadeReal < row.QuantidadePlanejada {
			return storage.OperacaoEmAndamento, (row.QuantidadePlanejada - row.QuantidadeReal) * row.TmpTotalPrevUnid / 60
		}
		return storage.OperacaoConcluida, 0
	}
	return storage.OperacaoNaoIniciada, 0
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
