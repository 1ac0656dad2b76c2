package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *Logger

func init() {
	if logger == nil {
		InitConsoleLogger()
	}
}

type FormaterLogger interface {
	Infof(template string, args ...interface{})
	Debugf(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Panicf(template string, args ...interface{})
}

type StdLogger interface {
	Info(msg string, args ...zap.Field)
	Debug(msg string, args ...zap.Field)
	Warn(msg string, args ...zap.Field)
	Error(msg string, args ...zap.Field)
	Panic(msg string, args ...zap.Field)
	Fatal(msg string, args ...zap.Field)
}

type ILogger interface {
	FormaterLogger
	StdLogger
	Wrap(name string) any
}

func GetLogger() *Logger {
	return logger
}

func Infof(template string, args ...interface{}) {
	logger.l.Info(fmt.Sprintf(template, args...))
}
func Debugf(template string, args ...interface{}) {
	logger.l.Debug(fmt.Sprintf(template, args...))
}
func Warnf(template string, args ...interface{}) {
	logger.l.Warn(fmt.Sprintf(template, args...))
}
func Errorf(template string, args ...interface{}) {
	logger.l.Error(fmt.Sprintf(template, args...))
}
func Panicf(template string, args ...interface{}) {
	logger.l.Panic(fmt.Sprintf(template, args...))
}
func Info(msg string, args ...zap.Field) {
	logger.l.Info(msg, args...)
}
func Debug(msg string, args ...zap.Field) {
	logger.l.Debug(msg, args...)
}
func Warn(msg string, args ...zap.Field) {
	logger.l.Warn(msg, args...)
}
func Error(msg string, args ...zap.Field) {
	logger.l.Error(msg, args...)
}
func Panic(msg string, args ...zap.Field) {
	logger.l.Panic(msg, args...)
}
func Fatal(msg string, args ...zap.Field) {
	logger.l.Fatal(msg, args...)
}

// Sync flushes buffered entries; call before the process stops so the
// file cores are complete on disk.
func Sync() {
	_ = logger.l.Sync()
}

type LogConfig struct {
	Name        string
	LogPath     string
	Level       zapcore.Level
	MaxSize     int
	MaxBackup   int
	MaxAge      int
	HideConsole bool
}

func InitLogger(logConfig LogConfig) {
	logger = newLogger(logConfig)
}

func InitConsoleLogger() {
	config := encoderConfig()
	consoleCore := zapcore.NewCore(zapcore.NewConsoleEncoder(config), os.Stdout, zap.DebugLevel)
	logger = &Logger{
		l: zap.New(consoleCore, zap.AddCaller(), zap.AddCallerSkip(1)),
	}
}

type Logger struct {
	l *zap.Logger
}

func encoderConfig() zapcore.EncoderConfig {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02-15:04:05.000")
	config.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return config
}

func newLogger(logConfig LogConfig) *Logger {
	encoder := zapcore.NewConsoleEncoder(encoderConfig())
	var cores []zapcore.Core
	if !logConfig.HideConsole {
		cores = append(cores, zapcore.NewCore(encoder, os.Stdout, logConfig.Level))
	}
	if logConfig.LogPath != "" {
		_ = os.MkdirAll(logConfig.LogPath, 0o755)
		for _, level := range []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel} {
			cores = append(cores, fileCore(encoder, logConfig, level))
		}
	}
	core := zapcore.NewTee(cores...)
	return &Logger{
		l: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.IncreaseLevel(logConfig.Level)),
	}
}

func fileCore(encoder zapcore.Encoder, logConfig LogConfig, level zapcore.Level) zapcore.Core {
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logConfig.LogPath, fmt.Sprintf("%s_%s.log", logConfig.Name, level.String())),
		MaxSize:    orDefault(logConfig.MaxSize, 10),
		MaxBackups: orDefault(logConfig.MaxBackup, 7),
		MaxAge:     orDefault(logConfig.MaxAge, 7),
		Compress:   true,
	})
	return zapcore.NewCore(encoder, writer,
		zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			// The error core also catches panic and fatal entries.
			if level == zapcore.ErrorLevel {
				return l >= zapcore.ErrorLevel
			}
			return l == level
		}))
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func (l *Logger) Wrap(name string) any {
	n := *l
	n.l = l.l.With(zap.Namespace(name))
	return &n
}
func (l *Logger) Info(msg string, args ...zap.Field) {
	l.l.Info(msg, args...)
}
func (l *Logger) Debug(msg string, args ...zap.Field) {
	l.l.Debug(msg, args...)
}
func (l *Logger) Warn(msg string, args ...zap.Field) {
	l.l.Warn(msg, args...)
}
func (l *Logger) Error(msg string, args ...zap.Field) {
	l.l.Error(msg, args...)
}
func (l *Logger) Panic(msg string, args ...zap.Field) {
	l.l.Panic(msg, args...)
}
func (l *Logger) Fatal(msg string, args ...zap.Field) {
	l.l.Fatal(msg, args...)
}
func (l *Logger) Infof(template string, args ...interface{}) {
	l.l.Info(fmt.Sprintf(template, args...))
}
func (l *Logger) Debugf(template string, args ...interface{}) {
	l.l.Debug(fmt.Sprintf(template, args...))
}
func (l *Logger) Warnf(template string, args ...interface{}) {
	l.l.Warn(fmt.Sprintf(template, args...))
}
func (l *Logger) Errorf(template string, args ...interface{}) {
	l.l.Error(fmt.Sprintf(template, args...))
}
func (l *Logger) Panicf(template string, args ...interface{}) {
	l.l.Panic(fmt.Sprintf(template, args...))
}
