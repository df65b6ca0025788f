package report

import (
	"strings"

	"react-golang/internal/constants"
	"react-golang/internal/storage"
)

// IsAllowedProduct verifica se o produto entra no painel pela descrição
func IsAllowedProduct(productDesc string) bool {
	upperDesc := strings.ToUpper(strings.TrimSpace(productDesc))
	for _, allowed := range constants.AllowedProducts {
		if strings.Contains(upperDesc, allowed) {
			return true
		}
	}
	return false
}

// FilterRows descarta as linhas de produtos fora da lista, sem erro e sem diagnóstico
func FilterRows(rows []storage.TableRow) []storage.TableRow {
	filtered := make([]storage.TableRow, 0, len(rows))
	for _, row := range rows {
		if IsAllowedProduct(row.DescProduto) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
