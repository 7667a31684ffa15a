package fusion

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ryabkov82/table-fusion/internal/table"
)

// readTable читает первый лист XLSX файла, находит строку заголовков
// и строит таблицу с колонкой source_file. Любая ошибка означает
// "пропустить этот файл" - вызывающий логирует и продолжает.
func (f *Fusion) readTable(path string) (table.Table, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return table.Table{}, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return table.Table{}, fmt.Errorf("в файле нет листов")
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return table.Table{}, fmt.Errorf("ошибка чтения листа %s: %w", sheets[0], err)
	}

	headerRow, ok := table.LocateHeader(rows)
	if !ok {
		return table.Table{}, fmt.Errorf("строка заголовков не найдена")
	}
	f.reporter.Infof("Строка заголовков: %d", headerRow)

	return buildTable(sourceName(f.cfg.DataDir, path), rows[headerRow], rows[headerRow+1:]), nil
}

// buildTable превращает строки под заголовком в записи. Ячейки под
// пустыми заголовками отбрасываются, полностью пустые строки
// пропускаются. При повторе имени колонки в записи остается
// последнее значение.
func buildTable(name string, header []string, rows [][]string) table.Table {
	names := make(map[int]string, len(header))
	var columns []string
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		names[i] = h
		if !seen[h] {
			seen[h] = true
			columns = append(columns, h)
		}
	}

	t := table.Table{
		Name:    name,
		Columns: append(columns, table.SourceFileColumn),
	}

	for _, row := range rows {
		rec := make(table.Record, len(columns)+1)
		empty := true
		for i, v := range row {
			col, ok := names[i]
			if !ok {
				continue
			}
			rec[col] = table.NewCell(v)
			if strings.TrimSpace(v) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rec[table.SourceFileColumn] = table.NewCell(name)
		t.Records = append(t.Records, rec)
	}

	return t
}
