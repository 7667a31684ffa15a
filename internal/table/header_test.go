package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func denseRow(cells ...string) []string {
	// дополняем до 5 непустых ячеек
	row := append([]string{}, cells...)
	for i := len(row); i < 5; i++ {
		row = append(row, "x")
	}
	return row
}

func TestLocateHeaderFirstRow(t *testing.T) {
	rows := RawSheet{
		{"Title", "Composer", "Artist", "Album", "Year"},
		{"Песня", "Иванов", "Хор", "Сборник", "1999"},
	}

	idx, ok := LocateHeader(rows)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestLocateHeaderSkipsDenseRowWithoutKeyword(t *testing.T) {
	rows := RawSheet{
		denseRow("Отчет", "за", "первый", "квартал", "2024"),
		{},
		{"Title", "Composer", "Artist", "Album", "Year"},
		{"a", "b", "c", "d", "e"},
	}

	idx, ok := LocateHeader(rows)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestLocateHeaderDensityGate(t *testing.T) {
	// ключевые слова есть, но непустых ячеек меньше пяти
	rows := RawSheet{
		{"Title", "Artist", "", "", ""},
		{"Title", "Artist", "Album", "", ""},
	}

	_, ok := LocateHeader(rows)
	assert.False(t, ok)
}

func TestLocateHeaderReturnsFirstQualifying(t *testing.T) {
	rows := RawSheet{
		{"Title", "Composer", "Artist", "Album", "Year"},
		{"Title", "Composer", "Artist", "Album", "Track"},
	}

	idx, ok := LocateHeader(rows)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestLocateHeaderIgnoresRowsBeyondWindow(t *testing.T) {
	rows := make(RawSheet, 0, 12)
	for i := 0; i < 10; i++ {
		rows = append(rows, []string{"x", "", "", "", ""})
	}
	// заголовок на 11-й строке уже не рассматривается
	rows = append(rows, []string{"Title", "Composer", "Artist", "Album", "Year"})

	_, ok := LocateHeader(rows)
	assert.False(t, ok)
}

func TestLocateHeaderShortSheet(t *testing.T) {
	_, ok := LocateHeader(RawSheet{})
	assert.False(t, ok)

	idx, ok := LocateHeader(RawSheet{{"Album", "Title", "Artist", "Composer", "Genre"}})
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestLocateHeaderCaseInsensitive(t *testing.T) {
	rows := RawSheet{
		{"TITLE", "COMPOSER", "ARTIST", "ALBUM", "YEAR"},
	}

	idx, ok := LocateHeader(rows)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestLocateHeaderWhitespaceCellsNotCounted(t *testing.T) {
	rows := RawSheet{
		{"Title", "Composer", "  ", " ", "", "Album"},
	}

	// всего 3 значимых ячейки
	_, ok := LocateHeader(rows)
	assert.False(t, ok)
}
