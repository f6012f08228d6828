// Package logging はロギング機能を提供します
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ログレベルを表す文字列です
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// ログの出力フォーマットです
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
}

// SlogLogger は log/slog のハンドラーでログを出力するロガーです
type SlogLogger struct {
	logger *slog.Logger
}

// NewLogger は新しいSlogLoggerインスタンスを作成します。
// level と format が不正な場合は INFO とテキスト形式になります。
func NewLogger(writer io.Writer, level, format string) *SlogLogger {
	if writer == nil {
		writer = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var handler slog.Handler
	if strings.ToLower(format) == FormatJSON {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	return &SlogLogger{logger: slog.New(handler)}
}

// Log はメッセージを指定したレベルで出力します
func (l *SlogLogger) Log(level, message string, err error) {
	var attrs []any
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.logger.Log(context.Background(), ParseLevel(level), message, attrs...)
}

// ParseLevel はレベル文字列を slog.Level に変換します（大文字小文字は区別しません）
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel はレベル文字列が既知の値かどうかを判定します
func ValidLevel(level string) bool {
	switch strings.ToUpper(level) {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return true
	}
	return false
}

// ValidFormat はフォーマット文字列が既知の値かどうかを判定します
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatText, FormatJSON:
		return true
	}
	return false
}

// Discard は何も出力しないロガーです
type Discard struct{}

// Log は何もしません
func (Discard) Log(string, string, error) {}
