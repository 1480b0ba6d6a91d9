// Package callbacks provides tools.Callback implementations for
// observing tool invocations: a no-op, a writer-backed printer,
// a package logger, and a fanout combinator.
package callbacks

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/effective-security/xlog"
	"github.com/openfax/faxtools/tools"
)

// ensure that the callbacks implement the correct interfaces
var (
	_ tools.Callback = (*Noop)(nil)
	_ tools.Callback = (*Printer)(nil)
	_ tools.Callback = (*PackageLogger)(nil)
	_ tools.Callback = (*Fanout)(nil)
)

// Fanout is a callback handler that forwards the events to multiple callbacks.
type Fanout struct {
	callbacks []tools.Callback
}

func NewFanout(callbacks ...tools.Callback) *Fanout {
	return &Fanout{callbacks: callbacks}
}

func (l *Fanout) Add(callback tools.Callback) {
	l.callbacks = append(l.callbacks, callback)
}

func (l *Fanout) OnToolStart(ctx context.Context, tool tools.ITool, input string) {
	for _, callback := range l.callbacks {
		callback.OnToolStart(ctx, tool, input)
	}
}

func (l *Fanout) OnToolEnd(ctx context.Context, tool tools.ITool, input string, output string) {
	for _, callback := range l.callbacks {
		callback.OnToolEnd(ctx, tool, input, output)
	}
}

func (l *Fanout) OnToolError(ctx context.Context, tool tools.ITool, input string, err error) {
	for _, callback := range l.callbacks {
		callback.OnToolError(ctx, tool, input, err)
	}
}

// Noop does nothing.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (l *Noop) OnToolStart(ctx context.Context, tool tools.ITool, input string) {
}

func (l *Noop) OnToolEnd(ctx context.Context, tool tools.ITool, input string, output string) {
}

func (l *Noop) OnToolError(ctx context.Context, tool tools.ITool, input string, err error) {
}

// Printer writes the tool events to the provided writer.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (l *Printer) OnToolStart(ctx context.Context, tool tools.ITool, input string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "TOOL START: %s: %s\n", tool.Name(), input)
}

func (l *Printer) OnToolEnd(ctx context.Context, tool tools.ITool, input string, output string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "TOOL END: %s: %s\n", tool.Name(), output)
}

func (l *Printer) OnToolError(ctx context.Context, tool tools.ITool, input string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "TOOL ERROR: %s: %s\n", tool.Name(), err.Error())
}

// PackageLogger logs the tool events with the provided logger.
type PackageLogger struct {
	logger *xlog.PackageLogger
}

func NewPackageLogger(logger *xlog.PackageLogger) *PackageLogger {
	return &PackageLogger{logger: logger}
}

func (l *PackageLogger) OnToolStart(ctx context.Context, tool tools.ITool, input string) {
	l.logger.ContextKV(ctx, xlog.DEBUG,
		"tool", tool.Name(),
		"input", input,
	)
}

func (l *PackageLogger) OnToolEnd(ctx context.Context, tool tools.ITool, input string, output string) {
	l.logger.ContextKV(ctx, xlog.DEBUG,
		"tool", tool.Name(),
		"output", output,
	)
}

func (l *PackageLogger) OnToolError(ctx context.Context, tool tools.ITool, input string, err error) {
	l.logger.ContextKV(ctx, xlog.ERROR,
		"tool", tool.Name(),
		"input", input,
		"err", err.Error(),
	)
}
