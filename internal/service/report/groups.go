package report

import (
	"regexp"
	"sort"
	"strings"

	"react-golang/internal/storage"
)

var prefixPattern = regexp.MustCompile(`^([A-Z]+)-`)

// ExtractPrefix extrai o TIPO do código do produto.
// "MO-01655-D" -> "MO", "AG-GL18A-V.S" -> "AG". Código sem o padrão cai no
// trecho antes do primeiro hífen; sem hífen nenhum vira OUTROS.
func ExtractPrefix(productCode string) string {
	if productCode == "" {
		return "OUTROS"
	}

	if m := prefixPattern.FindStringSubmatch(productCode); m != nil {
		return m[1]
	}

	if idx := strings.Index(productCode, "-"); idx > 0 {
		return productCode[:idx]
	}
	return "OUTROS"
}

// BuildPrefixGroups agrupa as peças por prefixo, acumula os totais do grupo e
// aplica a ordenação final de peças e grupos.
func BuildPrefixGroups(pieces []*storage.Piece, prefixNames map[string]string) []*storage.PrefixGroup {
	groups := make([]*storage.PrefixGroup, 0)
	byPrefix := make(map[string]*storage.PrefixGroup)

	for _, piece := range pieces {
		prefix := ExtractPrefix(piece.ProductCode)

		group, ok := byPrefix[prefix]
		if !ok {
			name := prefixNames[prefix]
			if name == "" {
				name = prefix
			}
			group = &storage.PrefixGroup{
				Prefix:     prefix,
				PrefixName: name,
				Pieces:     []*storage.Piece{},
			}
			byPrefix[prefix] = group
			groups = append(groups, group)
		}

		group.Pieces = append(group.Pieces, piece)
		group.TotalOrders += len(piece.Orders)
		if piece.IsCritical {
			group.CriticalCount++
		}
		for _, order := range piece.Orders {
			if order.DaysLate > 0 {
				group.LateCount++
			}
		}
	}

	for _, group := range groups {
		sortPieces(group.Pieces)
	}
	sortGroups(groups)

	return groups
}

// peças críticas primeiro, depois quem tem mais horas restantes
func sortPieces(pieces []*storage.Piece) {
	sort.SliceStable(pieces, func(i, j int) bool {
		a, b := pieces[i], pieces[j]
		if a.IsCritical != b.IsCritical {
			return a.IsCritical
		}
		return a.RemainingHours > b.RemainingHours
	})
}

// grupos com mais atraso sobem; empate decide pelo volume de OPs
func sortGroups(groups []*storage.PrefixGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.LateCount != b.LateCount {
			return a.LateCount > b.LateCount
		}
		return a.TotalOrders > b.TotalOrders
	})
}
