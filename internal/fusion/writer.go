package fusion

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ryabkov82/table-fusion/internal/table"
)

const (
	outputSheet  = "merged"
	maxColWidth  = 80
	timestampFmt = "2006-01-02_15-04-05"
)

// writeResult сохраняет объединенную таблицу в
// <result_dir>/<метка времени>.xlsx. Папка результата создается при
// необходимости. Маркер Missing пишется как действительно пустая
// ячейка.
func (f *Fusion) writeResult(merged table.Table) (string, error) {
	if err := os.MkdirAll(f.cfg.ResultDir, 0o755); err != nil {
		return "", fmt.Errorf("ошибка создания папки результата: %w", err)
	}
	outputPath := filepath.Join(f.cfg.ResultDir, time.Now().Format(timestampFmt)+".xlsx")

	out := excelize.NewFile()
	defer out.Close()
	if err := out.SetSheetName("Sheet1", outputSheet); err != nil {
		return "", fmt.Errorf("ошибка переименования листа: %w", err)
	}

	sw, err := out.NewStreamWriter(outputSheet)
	if err != nil {
		return "", fmt.Errorf("ошибка создания StreamWriter: %w", err)
	}

	// Ширина колонок задается до записи строк
	for i, w := range colWidths(merged) {
		if err := sw.SetColWidth(i+1, i+1, float64(w)); err != nil {
			return "", fmt.Errorf("ошибка установки ширины колонки: %w", err)
		}
	}

	headerRow := make([]interface{}, len(merged.Columns))
	for i, col := range merged.Columns {
		headerRow[i] = col
	}
	if err := sw.SetRow("A1", headerRow); err != nil {
		return "", fmt.Errorf("ошибка записи заголовков: %w", err)
	}

	for i, rec := range merged.Records {
		rowData := make([]interface{}, len(merged.Columns))
		for j, col := range merged.Columns {
			if c := rec[col]; c.Valid {
				rowData[j] = c.Value
			}
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, rowData); err != nil {
			return "", fmt.Errorf("ошибка записи строки: %w", err)
		}
	}

	if err := sw.Flush(); err != nil {
		return "", fmt.Errorf("ошибка финального flush: %w", err)
	}
	if err := out.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("ошибка сохранения файла: %w", err)
	}

	return outputPath, nil
}

// colWidths подбирает ширину по самому длинному значению в колонке.
func colWidths(t table.Table) []int {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = len([]rune(col)) + 2
	}
	for _, rec := range t.Records {
		for i, col := range t.Columns {
			if c := rec[col]; c.Valid {
				if n := len([]rune(c.Value)) + 2; n > widths[i] {
					widths[i] = n
				}
			}
		}
	}
	for i, w := range widths {
		if w > maxColWidth {
			widths[i] = maxColWidth
		}
	}
	return widths
}
