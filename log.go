package main

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger 创建带时间戳的日志器
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext 返回 ctx 中的日志器，不存在时返回 log.Default()
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// DebugInfo 记录各阶段的耗时
type DebugInfo struct {
	ReadTagsTime time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
	JsonTime     time.Duration
	TotalTime    time.Duration
}

// track 返回一个在调用时把耗时累加到 d 的函数
func track(d *time.Duration) func() {
	start := time.Now()
	return func() {
		*d += time.Since(start)
	}
}

// report 以 debug 级别输出各阶段耗时
func (d *DebugInfo) report(logger *log.Logger) {
	logger.Debug("标签读取耗时", "elapsed", d.ReadTagsTime)
	logger.Debug("布局算法耗时", "elapsed", d.LayoutTime)
	logger.Debug("图像渲染耗时", "elapsed", d.RenderTime)
	logger.Debug("JSON元数据创建耗时", "elapsed", d.JsonTime)
	logger.Debug("总耗时", "elapsed", d.TotalTime)
}
