package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type CommonLogger struct {
	Info    zerolog.Logger
	Error   zerolog.Logger
	Trace   zerolog.Logger
	Warning zerolog.Logger
}

type AppLogger struct {
	Http CommonLogger
	WS   CommonLogger
}

const timeFormat = "2006-01-02 15:04:05.000"

func NewLogger() *AppLogger {
	_ = os.MkdirAll("logs", 0755)

	zerolog.TimeFieldFormat = timeFormat

	log := &AppLogger{}

	log.Http = newCommonLogger("http")
	log.WS = newCommonLogger("ws")

	return log
}

func newCommonLogger(prefix string) CommonLogger {
	console := consoleWriter(os.Stdout, false)

	return CommonLogger{
		Info:    newMultiLogger(console, "logs/"+prefix+".info.log"),
		Error:   newMultiLogger(console, "logs/"+prefix+".error.log"),
		Trace:   newMultiLogger(console, "logs/"+prefix+".trace.log"),
		Warning: newMultiLogger(console, "logs/"+prefix+".warning.log"),
	}
}

func newMultiLogger(console zerolog.ConsoleWriter, filepath string) zerolog.Logger {
	file := consoleWriter(&lumberjack.Logger{
		Filename:   filepath,
		MaxSize:    5,
		MaxAge:     20,
		MaxBackups: 5,
		Compress:   true,
	}, true)

	multi := io.MultiWriter(console, file)
	return zerolog.New(multi).With().Timestamp().Logger()
}

func consoleWriter(out io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeFormat,
		NoColor:    noColor,
		FormatTimestamp: func(i interface{}) string {
			return fmt.Sprintf("[%s]", i)
		},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("[%s]", strings.ToUpper(i.(string)))
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		},
	}
}
