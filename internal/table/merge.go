package table

import "sort"

// Merge приводит все таблицы к общей схеме и объединяет их записи.
// Колонки, отсутствующие в исходной таблице, заполняются маркером
// Missing. Итог отсортирован по source_file по возрастанию; строки
// одного файла сохраняют исходный порядок. Дубликаты строк не
// удаляются. Количество строк при приведении не меняется.
func Merge(tables []Table, schema Schema) (Table, error) {
	if len(tables) == 0 {
		return Table{}, ErrNoTables
	}

	merged := Table{Name: "merged", Columns: schema}
	for _, t := range tables {
		for _, rec := range t.Records {
			out := make(Record, len(schema))
			for _, col := range schema {
				if c, ok := rec[col]; ok {
					out[col] = c
				} else {
					out[col] = Missing
				}
			}
			merged.Records = append(merged.Records, out)
		}
	}

	sort.SliceStable(merged.Records, func(i, j int) bool {
		return merged.Records[i][SourceFileColumn].Value < merged.Records[j][SourceFileColumn].Value
	})

	return merged, nil
}
