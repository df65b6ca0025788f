package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"react-golang/internal/storage"
)

type GenerateExcelStorage interface {
	GetLatestReport(ctx context.Context) (*storage.Report, error)
}

type GenerateExcelService struct {
	storage GenerateExcelStorage
}

func NewGenerateService(storage GenerateExcelStorage) *GenerateExcelService {
	return &GenerateExcelService{storage: storage}
}

// GenerateExcel achata o último relatório em uma planilha de status, uma
// linha por OP, na ordem em que o painel mostra
func (g *GenerateExcelService) GenerateExcel(ctx context.Context) ([]byte, error) {
	report, err := g.storage.GetLatestReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch report: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Status de Produção"
	f.SetSheetName("Sheet1", sheet)

	// negrito e fundo cinza na linha de cabeçalho
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{"Grupo", "Peça", "Descrição", "OP", "Status", "Progresso",
		"Dias de Atraso", "Horas Restantes", "Peça Crítica", "Prazo"}
	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), headerStyle)

	rowNum := 2
	for _, group := range report.Groups {
		for _, piece := range group.Pieces {
			for _, order := range piece.Orders {
				f.SetCellValue(sheet, cellName(1, rowNum), group.PrefixName)
				f.SetCellValue(sheet, cellName(2, rowNum), piece.ProductCode)
				f.SetCellValue(sheet, cellName(3, rowNum), piece.ProductDesc)
				f.SetCellValue(sheet, cellName(4, rowNum), order.OpID)
				f.SetCellValue(sheet, cellName(5, rowNum), order.Status)
				f.SetCellValue(sheet, cellName(6, rowNum), fmt.Sprintf("%d%%", order.Progress))
				f.SetCellValue(sheet, cellName(7, rowNum), order.DaysLate)
				f.SetCellValue(sheet, cellName(8, rowNum), order.RemainingHours)
				f.SetCellValue(sheet, cellName(9, rowNum), simNao(piece.IsCritical))
				if order.Deadline != nil {
					f.SetCellValue(sheet, cellName(10, rowNum), order.Deadline.Format("02/01/2006"))
				}
				rowNum++
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}

func simNao(v bool) string {
	if v {
		return "Sim"
	}
	return "Não"
}
