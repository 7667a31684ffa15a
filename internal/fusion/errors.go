package fusion

import "errors"

// Фатальные ошибки всего запуска. Ошибки чтения отдельных файлов
// сюда не попадают - такие файлы пропускаются с предупреждением.
var (
	ErrDataDirNotFound = errors.New("папка с данными не найдена")
	ErrNoInputFiles    = errors.New("не найдено ни одного XLSX файла")
	ErrNoUsableFiles   = errors.New("не удалось прочитать ни одного файла с данными")
)
