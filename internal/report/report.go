package report

import "github.com/sirupsen/logrus"

// Reporter - коллаборатор для вывода хода работы. Логика объединения
// не пишет в лог напрямую, а получает Reporter снаружи.
type Reporter interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// LogrusReporter пишет в stderr через logrus.
type LogrusReporter struct {
	log *logrus.Logger
}

// NewLogrus создает репортер с текстовым форматом и отметкой времени.
func NewLogrus(verbose bool) *LogrusReporter {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return &LogrusReporter{log: l}
}

func (r *LogrusReporter) Infof(format string, args ...interface{}) {
	r.log.Infof(format, args...)
}

func (r *LogrusReporter) Warnf(format string, args ...interface{}) {
	r.log.Warnf(format, args...)
}

func (r *LogrusReporter) Errorf(format string, args ...interface{}) {
	r.log.Errorf(format, args...)
}

// Nop отключает вывод, используется в тестах.
type Nop struct{}

func (Nop) Infof(string, ...interface{})  {}
func (Nop) Warnf(string, ...interface{})  {}
func (Nop) Errorf(string, ...interface{}) {}
