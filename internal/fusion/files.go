package fusion

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// listInputFiles рекурсивно собирает XLSX файлы из папки данных.
// Список отсортирован по полному пути без учета регистра - от этого
// порядка зависит, какой файл задает базовый порядок колонок.
func listInputFiles(dataDir string) ([]string, error) {
	info, err := os.Stat(dataDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDataDirNotFound, dataDir)
	}

	files := []string{}
	err = filepath.Walk(dataDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".xlsx") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка при обходе папки: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i]) < strings.ToLower(files[j])
	})

	return files, nil
}

// sourceName - значение колонки source_file: путь относительно папки
// данных без расширения, всегда с прямыми слешами.
func sourceName(dataDir, path string) string {
	rel, err := filepath.Rel(dataDir, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.ToSlash(rel)
}
