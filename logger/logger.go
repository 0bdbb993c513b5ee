package logger

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

type Logger struct {
	log   *log.Logger
	warn  *log.Logger
	err   *log.Logger
	trace *log.Logger

	traceOn *atomic.Bool
}

func New(prefix string) Logger {
	return NewWithWriters(prefix, os.Stdout, os.Stderr)
}

// NewWithWriters routes regular output to out and warnings, errors and
// traces to errOut.
func NewWithWriters(prefix string, out, errOut io.Writer) Logger {
	return Logger{
		log:     log.New(out, "["+prefix+"] ", log.Ldate|log.Ltime),
		warn:    log.New(errOut, "["+prefix+" WARN] ", log.Ldate|log.Ltime|log.Lshortfile),
		err:     log.New(errOut, "["+prefix+" ERR] ", log.Ldate|log.Ltime|log.Llongfile),
		trace:   log.New(errOut, "["+prefix+" TRACE] ", log.Ldate|log.Ltime|log.Lshortfile),
		traceOn: &atomic.Bool{},
	}
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return NewWithWriters("", io.Discard, io.Discard)
}

// SetTrace toggles Trace output. Copies of l share the setting.
func (l Logger) SetTrace(on bool) {
	if l.traceOn != nil {
		l.traceOn.Store(on)
	}
}

func (l Logger) Log(format string, a ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Printf(format, a...)
}
func (l Logger) Warn(format string, a ...interface{}) {
	if l.warn == nil {
		return
	}
	l.warn.Printf(format, a...)
}
func (l Logger) Err(err error, format string, a ...interface{}) {
	if l.err == nil {
		return
	}
	if err != nil {
		l.err.Printf(format+": %v", append(a, err)...)
	} else {
		l.err.Printf(format, a...)
	}
}
func (l Logger) Trace(format string, a ...interface{}) {
	if l.trace == nil || l.traceOn == nil || !l.traceOn.Load() {
		return
	}
	l.trace.Printf(format, a...)
}
