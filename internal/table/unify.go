package table

import (
	"errors"
	"sort"
)

// ErrNoTables - нет ни одной таблицы для объединения.
var ErrNoTables = errors.New("нет таблиц для объединения")

// UnifySchema строит общую схему: сначала колонки первой таблицы в
// исходном порядке, затем новые колонки остальных таблиц в
// лексикографическом порядке, в конце source_file. Результат
// детерминирован для фиксированного порядка таблиц; перестановка
// таблиц меняет базовый порядок, но не состав колонок.
func UnifySchema(tables []Table) (Schema, error) {
	if len(tables) == 0 {
		return nil, ErrNoTables
	}

	seen := make(map[string]bool)
	base := make([]string, 0, len(tables[0].Columns))
	for _, col := range tables[0].Columns {
		if col == SourceFileColumn || seen[col] {
			continue
		}
		seen[col] = true
		base = append(base, col)
	}

	var extra []string
	for _, t := range tables[1:] {
		for _, col := range t.Columns {
			if col == SourceFileColumn || seen[col] {
				continue
			}
			seen[col] = true
			extra = append(extra, col)
		}
	}
	sort.Strings(extra)

	schema := make(Schema, 0, len(base)+len(extra)+1)
	schema = append(schema, base...)
	schema = append(schema, extra...)
	schema = append(schema, SourceFileColumn)
	return schema, nil
}
