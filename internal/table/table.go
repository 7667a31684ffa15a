package table

// SourceFileColumn - синтетическая колонка с относительным путем
// исходного файла (без расширения). Добавляется при чтении и всегда
// стоит последней в общей схеме.
const SourceFileColumn = "source_file"

// Cell - значение одной ячейки. Valid=false означает отсутствие
// значения (в исходном файле такой колонки нет), в отличие от
// легальной пустой строки Cell{Value: "", Valid: true}.
type Cell struct {
	Value string
	Valid bool
}

// Missing - маркер отсутствующего значения.
var Missing = Cell{}

// NewCell оборачивает значение ячейки.
func NewCell(v string) Cell {
	return Cell{Value: v, Valid: true}
}

// RawSheet - строки листа как есть, без какой-либо схемы.
type RawSheet [][]string

// Record - одна строка таблицы: имя колонки -> значение.
type Record map[string]Cell

// Table - данные одного файла с уже разрешенными заголовками.
type Table struct {
	Name    string // значение колонки source_file
	Columns []string
	Records []Record
}

// Schema - упорядоченный список колонок объединенной таблицы.
type Schema []string
