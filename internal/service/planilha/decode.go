package planilha

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"react-golang/internal/storage"
)

// Decoder lê o relatório de apontamento (.xlsx) exportado do ERP e devolve
// as linhas já normalizadas. Só a primeira aba é considerada.
type Decoder struct{}

func New() *Decoder {
	return &Decoder{}
}

func (d *Decoder) Decode(r io.Reader) ([]storage.TableRow, error) {
	const op = "service.planilha.Decode"

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: arquivo inválido: %w", op, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: planilha sem abas", op)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%s: falha ao ler a aba %q: %w", op, sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: planilha sem linhas de dados", op)
	}

	cols := mapColumns(rows[0])
	if _, ok := cols["ORDEMPRODUCAO"]; !ok {
		return nil, fmt.Errorf("%s: cabeçalho ORDEMPRODUCAO não encontrado", op)
	}
	if _, ok := cols["COD_PRODUTO"]; !ok {
		return nil, fmt.Errorf("%s: cabeçalho COD_PRODUTO não encontrado", op)
	}

	out := make([]storage.TableRow, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		out = append(out, storage.TableRow{
			OrdemProducao:       cell(raw, cols, "ORDEMPRODUCAO"),
			CodProduto:          cell(raw, cols, "COD_PRODUTO"),
			DescProduto:         cell(raw, cols, "DESC_PRODUTO"),
			CodOperacao:         cell(raw, cols, "COD_OPERACAO"),
			DescGrupoGerencial:  cell(raw, cols, "DESC_GRUPOGERENCIAL"),
			StatusOperacao:      cell(raw, cols, "STATUS_OPERACAO"),
			Name:                cell(raw, cols, "NAME"),
			DtPrazo:             ParseDate(cell(raw, cols, "DT_PRAZO")),
			DtEmissao:           ParseDate(cell(raw, cols, "DT_EMISSAO")),
			QuantidadePlanejada: parseNumber(cell(raw, cols, "QUANTIDADE_PLANEJADA")),
			QuantidadeReal:      parseNumber(cell(raw, cols, "QUANTIDADE_REAL")),
			TmpTotalPrevUnid:    parseNumber(cell(raw, cols, "TMP_TOTAL_PREV_UNID")),
		})
	}

	return out, nil
}

func mapColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToUpper(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}
	return cols
}

func cell(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// campo numérico ilegível vira 0, uma linha ruim não derruba o relatório
func parseNumber(value string) float64 {
	if value == "" {
		return 0
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return n
}
