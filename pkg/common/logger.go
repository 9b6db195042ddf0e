package common

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger   *zap.Logger
	loggerMu sync.RWMutex
	once     sync.Once
)

func getLogger() *zap.Logger {
	once.Do(initLogger)

	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

func GetLogger() *zap.Logger {
	return getLogger().Named("default")
}

func GetLoggerWith(name string, fields ...zap.Field) *zap.Logger {
	return getLogger().Named(name).With(fields...)
}

// GetCategoryLogger is the usual shape: a named logger narrowed by category.
func GetCategoryLogger(name, category string) *zap.Logger {
	return GetLoggerWith(name, zap.String(LoggerFieldCategory, category))
}

func initLogger() {
	dir, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error getting current directory: %v", err)
	}

	logsDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logsDir, os.ModePerm); err != nil {
		log.Fatalf("Error find/create logs directory: %v", err)
	}

	// TODO: move rotation limits into config.Config
	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, "app.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28,   // days
		Compress:   true, // gzip
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(logFile),
		zap.InfoLevel,
	)

	var l *zap.Logger
	if IsProduction() {
		l = zap.New(fileCore, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	} else {
		consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		consoleCore := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), zap.DebugLevel)

		combinedCore := zapcore.NewTee(fileCore, consoleCore)
		l = zap.New(combinedCore, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	}

	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

func setLogger(l *zap.Logger) {
	_ = getLogger()

	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

func SetTestCaptureLogger(buf *bytes.Buffer, level zapcore.Level) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(&lockedWriter{w: buf}), level)
	setLogger(zap.New(core))
}

func SetTestLoggerNop() {
	setLogger(zap.NewNop())
}

// ParseLogs decodes JSON log lines written by a capture logger.
func ParseLogs(r io.Reader) []map[string]any {
	scanner := bufio.NewScanner(r)
	var logs []map[string]any

	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err == nil {
			logs = append(logs, entry)
		}
	}
	return logs
}

// lockedWriter lets feed callbacks log into a test buffer from other goroutines.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}
