package fusion

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ryabkov82/table-fusion/internal/config"
)

// PrintSummary печатает человекочитаемую сводку объединения.
// Только презентация, на данные не влияет.
func PrintSummary(w io.Writer, cfg *config.Config, res *Result) {
	line := strings.Repeat("=", 60)

	fmt.Fprintln(w, line)
	color.New(color.Bold).Fprintln(w, "ИТОГИ ОБЪЕДИНЕНИЯ ТАБЛИЦ")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Файлов обработано: %d\n", len(res.FileRows))
	fmt.Fprintf(w, "Всего строк: %d\n", res.RowCount)
	fmt.Fprintf(w, "Количество колонок: %d\n", len(res.Columns))

	fmt.Fprintln(w, "\nСтрок по файлам:")
	for _, fr := range res.FileRows {
		fmt.Fprintf(w, "  - %s: %d\n", fr.Source, fr.Rows)
	}

	fmt.Fprintln(w, "\nКолонки:")
	for i, col := range res.Columns {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, col)
	}

	fmt.Fprintf(w, "\nПапка данных: %s\n", cfg.DataDir)
	fmt.Fprintf(w, "Папка результата: %s\n", cfg.ResultDir)
}
