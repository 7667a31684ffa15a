package fusion

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/ryabkov82/table-fusion/internal/config"
	"github.com/ryabkov82/table-fusion/internal/report"
	"github.com/ryabkov82/table-fusion/internal/table"
)

// Fusion объединяет XLSX таблицы из папки данных в один файл.
// Работает строго последовательно, файл за файлом.
type Fusion struct {
	cfg      *config.Config
	reporter report.Reporter
}

func New(cfg *config.Config, reporter report.Reporter) *Fusion {
	return &Fusion{cfg: cfg, reporter: reporter}
}

// Result - итог объединения для сводки и вывода.
type Result struct {
	OutputPath string
	Columns    []string
	RowCount   int
	FileRows   []FileRows
}

// FileRows - количество строк одного исходного файла в итоге.
type FileRows struct {
	Source string
	Rows   int
}

// Run выполняет полный цикл: поиск файлов, чтение каждого файла,
// объединение схем, слияние и запись результата. Нечитаемый файл или
// файл без заголовков пропускается с предупреждением и не прерывает
// обработку остальных.
func (f *Fusion) Run() (*Result, error) {
	files, err := listInputFiles(f.cfg.DataDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w в папке %s", ErrNoInputFiles, f.cfg.DataDir)
	}

	f.reporter.Infof("Найдено XLSX файлов: %d", len(files))
	for i, path := range files {
		f.reporter.Infof("  %d. %s", i+1, sourceName(f.cfg.DataDir, path))
	}

	var tables []table.Table
	var skipped error
	for _, path := range files {
		t, err := f.readTable(path)
		if err == nil && len(t.Records) == 0 {
			err = fmt.Errorf("нет данных под заголовками")
		}
		if err != nil {
			f.reporter.Warnf("Файл %s пропущен: %v", path, err)
			skipped = multierror.Append(skipped, fmt.Errorf("%s: %w", path, err))
			continue
		}
		f.reporter.Infof("Прочитан %s: %d строк, %d колонок", path, len(t.Records), len(t.Columns))
		tables = append(tables, t)
	}

	if len(tables) == 0 {
		if skipped != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoUsableFiles, skipped)
		}
		return nil, ErrNoUsableFiles
	}

	schema, err := table.UnifySchema(tables)
	if err != nil {
		return nil, err
	}
	f.reporter.Infof("Колонок в общей схеме: %d", len(schema))

	merged, err := table.Merge(tables, schema)
	if err != nil {
		return nil, err
	}
	f.reporter.Infof("Объединено: %d строк, %d колонок", len(merged.Records), len(merged.Columns))

	outputPath, err := f.writeResult(merged)
	if err != nil {
		f.reporter.Errorf("Ошибка сохранения результата: %v", err)
		return nil, err
	}
	f.reporter.Infof("Результат сохранен: %s", outputPath)

	return &Result{
		OutputPath: outputPath,
		Columns:    merged.Columns,
		RowCount:   len(merged.Records),
		FileRows:   countBySource(merged),
	}, nil
}

// countBySource считает строки по каждому source_file. Записи в
// merged уже отсортированы по этому значению, поэтому порядок
// получается возрастающим.
func countBySource(merged table.Table) []FileRows {
	counts := make(map[string]int)
	var order []string
	for _, rec := range merged.Records {
		src := rec[table.SourceFileColumn].Value
		if _, ok := counts[src]; !ok {
			order = append(order, src)
		}
		counts[src]++
	}

	out := make([]FileRows, 0, len(order))
	for _, src := range order {
		out = append(out, FileRows{Source: src, Rows: counts[src]})
	}
	return out
}
