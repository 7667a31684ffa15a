package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/ryabkov82/table-fusion/internal/config"
	"github.com/ryabkov82/table-fusion/internal/fusion"
	"github.com/ryabkov82/table-fusion/internal/report"
)

type Output struct {
	Success    bool   `json:"success"`
	OutputFile string `json:"output_file,omitempty"`
	Error      string `json:"error,omitempty"`
	Duration   string `json:"duration"`
	RowCount   int    `json:"row_count,omitempty"`
}

func main() {

	start := time.Now()

	cfg, err := config.ParseFlags()
	if err != nil {
		fail(start, fmt.Sprintf("Ошибка конфигурации: %v", err))
	}

	f := fusion.New(cfg, report.NewLogrus(cfg.Verbose))
	res, err := f.Run()
	if err != nil {
		fail(start, fmt.Sprintf("Ошибка объединения: %v", err))
	}

	fusion.PrintSummary(os.Stderr, cfg, res)
	fmt.Fprintln(os.Stderr, color.GreenString("Готово! Объединенная таблица: %s", res.OutputPath))

	emitJSON(Output{
		Success:    true,
		OutputFile: res.OutputPath,
		RowCount:   res.RowCount,
		Duration:   time.Since(start).String(),
	})

}

func fail(start time.Time, msg string) {
	fmt.Fprintln(os.Stderr, color.RedString(msg))
	emitJSON(Output{
		Success:  false,
		Error:    msg,
		Duration: time.Since(start).String(),
	})
	os.Exit(1)
}

func emitJSON(out Output) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ") // для красивого вывода (опционально)
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Ошибка вывода JSON: %v", err)
	}
}
