package utils

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Supported log levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Supported log formats.
const (
	LogFormatStructured LogFormat = "structured"
	LogFormatConsole    LogFormat = "console"
)

var orderedLogLevels = []struct {
	level    LogLevel
	zapLevel zapcore.Level
}{
	{level: LogLevelDebug, zapLevel: zapcore.DebugLevel},
	{level: LogLevelInfo, zapLevel: zapcore.InfoLevel},
	{level: LogLevelWarn, zapLevel: zapcore.WarnLevel},
	{level: LogLevelError, zapLevel: zapcore.ErrorLevel},
}

// SupportedLogLevels lists the accepted --log-level values from most to least verbose.
func SupportedLogLevels() []string {
	levelNames := make([]string, 0, len(orderedLogLevels))
	for _, orderedLevel := range orderedLogLevels {
		levelNames = append(levelNames, string(orderedLevel.level))
	}
	return levelNames
}

// SupportedLogFormats lists the accepted --log-format values.
func SupportedLogFormats() []string {
	return []string{string(LogFormatStructured), string(LogFormatConsole)}
}

// LoggerFactory builds zap loggers that write diagnostics to a single sink,
// standard error unless overridden. Command output never shares that sink.
type LoggerFactory struct {
	sink zapcore.WriteSyncer
}

// NewLoggerFactory constructs a factory writing to standard error.
func NewLoggerFactory() *LoggerFactory {
	return NewLoggerFactoryWithSink(zapcore.Lock(os.Stderr))
}

// NewLoggerFactoryWithSink constructs a factory writing to sink.
func NewLoggerFactoryWithSink(sink zapcore.WriteSyncer) *LoggerFactory {
	return &LoggerFactory{sink: sink}
}

// CreateLogger produces a logger honoring the requested level and format.
// Console output uses capitalized levels, ISO8601 timestamps and no stack traces.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	zapLevel, levelError := resolveZapLevel(requestedLogLevel)
	if levelError != nil {
		return nil, levelError
	}

	encoderConfiguration := zap.NewProductionEncoderConfig()
	loggerOptions := []zap.Option{zap.ErrorOutput(factory.sink)}
	var encoder zapcore.Encoder
	switch requestedLogFormat {
	case LogFormatStructured:
		encoder = zapcore.NewJSONEncoder(encoderConfiguration)
		loggerOptions = append(loggerOptions, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	case LogFormatConsole:
		encoderConfiguration.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfiguration.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfiguration)
	default:
		return nil, fmt.Errorf(unsupportedLogFormatTemplateConstant, requestedLogFormat)
	}

	return zap.New(zapcore.NewCore(encoder, factory.sink, zapLevel), loggerOptions...), nil
}

func resolveZapLevel(requestedLogLevel LogLevel) (zapcore.Level, error) {
	for _, orderedLevel := range orderedLogLevels {
		if orderedLevel.level == requestedLogLevel {
			return orderedLevel.zapLevel, nil
		}
	}
	return zapcore.InvalidLevel, fmt.Errorf(unsupportedLogLevelTemplateConstant, requestedLogLevel)
}
