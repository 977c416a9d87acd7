package catalog

import (
	"strings"

	"tujjor/internal/domain"
)

// CategoryAll значение категории, отключающее фильтр
const CategoryAll = "all"

// ViewResult видимая страница витрины
type ViewResult struct {
	Items      []domain.Product `json:"items"`
	TotalPages int              `json:"total_pages"`
	TotalItems int              `json:"total_items"`
}

// View чистая функция фильтрации и пагинации. Поиск — регистронезависимое
// вхождение в имя (в складском режиме ещё и в штрихкод), категория —
// точное совпадение, оба условия конъюнктивны. Страница не ограничивается:
// выход за [1, totalPages] отсекает вызывающая сторона.
func View(products []domain.Product, search, category string, page, pageSize int, matchBarcode bool) ViewResult {
	if pageSize < 1 {
		pageSize = 1
	}
	filtered := filter(products, search, category, matchBarcode)

	totalPages := (len(filtered) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start < 0 || start >= len(filtered) {
		return ViewResult{Items: []domain.Product{}, TotalPages: totalPages, TotalItems: len(filtered)}
	}
	if end > len(filtered) {
		end = len(filtered)
	}
	return ViewResult{Items: filtered[start:end], TotalPages: totalPages, TotalItems: len(filtered)}
}

func filter(products []domain.Product, search, category string, matchBarcode bool) []domain.Product {
	term := strings.ToLower(strings.TrimSpace(search))
	byCategory := category != "" && category != CategoryAll

	if term == "" && !byCategory {
		return products
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if term != "" && !matches(p, term, matchBarcode) {
			continue
		}
		if byCategory && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p domain.Product, term string, matchBarcode bool) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	return matchBarcode && p.Barcode != "" && strings.Contains(p.Barcode, term)
}
