package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DataDir   string `env:"TF_DATA_DIR" envDefault:"data"`     // папка с исходными XLSX файлами
	ResultDir string `env:"TF_RESULT_DIR" envDefault:"result"` // папка для результата
	Verbose   bool   `env:"TF_VERBOSE" envDefault:"false"`
}

// ParseFlags собирает конфигурацию в три слоя: .env (если есть),
// переменные окружения TF_*, затем флаги командной строки. Флаги
// имеют приоритет.
func ParseFlags() (*Config, error) {
	return parse(flag.CommandLine, os.Args[1:])
}

func parse(fs *flag.FlagSet, args []string) (*Config, error) {
	if _, err := os.Stat(".env"); !errors.Is(err, os.ErrNotExist) {
		_ = godotenv.Overload(".env")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "папка с исходными XLSX файлами")
	fs.StringVar(&cfg.ResultDir, "result", cfg.ResultDir, "папка для результирующего файла")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "подробный вывод")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Нормализация путей
	cfg.DataDir = filepath.Clean(cfg.DataDir)
	cfg.ResultDir = filepath.Clean(cfg.ResultDir)

	return cfg, nil
}
