// Package logger 配置全局 zerolog 日志
//
// 各组件通过 For(name) 获取带 component 字段的子日志器，
// 对应旧代码中 "[SceneManager] ..." 这样的前缀约定。
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options 日志配置
type Options struct {
	// Level 日志级别：debug, info, warn, error
	Level string
	// Verbose 为 false 时丢弃所有日志输出
	Verbose bool
	// Writer 输出目标，为 nil 时使用 stderr
	Writer io.Writer
	// Console 使用人类可读的控制台格式（而不是 JSON）
	Console bool
}

// Setup 根据配置初始化全局日志器
//
// 无法解析的级别回退为 info。
func Setup(opts Options) {
	if !opts.Verbose {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		log.Logger = zerolog.New(io.Discard)
		return
	}

	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if opts.Console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// For 返回指定组件的子日志器
func For(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
