package table

import "strings"

const (
	// headerScanRows - сколько первых строк листа проверяется.
	headerScanRows = 10
	// headerMinCells - минимум непустых ячеек в строке заголовков.
	headerMinCells = 5
)

// headerKeywords - типичные заголовки предметной области.
// Эвристика намеренно узкая и настроена под корпус входных файлов.
var headerKeywords = []string{"title", "composer", "artist", "album"}

// LocateHeader ищет строку заголовков среди первых 10 строк листа.
// Кандидат должен содержать не менее 5 непустых ячеек, а среди
// значений (в нижнем регистре) - одно из ключевых слов. Возвращается
// индекс первой подходящей строки сверху вниз.
func LocateHeader(rows RawSheet) (int, bool) {
	limit := len(rows)
	if limit > headerScanRows {
		limit = headerScanRows
	}

	for i := 0; i < limit; i++ {
		if countNonEmpty(rows[i]) < headerMinCells {
			continue
		}
		joined := strings.ToLower(strings.Join(rows[i], " "))
		for _, kw := range headerKeywords {
			if strings.Contains(joined, kw) {
				return i, true
			}
		}
	}

	return 0, false
}

func countNonEmpty(row []string) int {
	n := 0
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}
