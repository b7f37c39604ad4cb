// internal/platform/logx/logx.go
package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// EnvLevel es la variable de entorno que fija el nivel inicial.
const EnvLevel = "SUBBURST_LOG_LEVEL"

type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Err(err error, kv ...any)
	With(kv ...any) Logger
	SetLevel(lvl Level)
}

// colores por tag; fatih/color los desactiva solo si stderr no es TTY
var tagColors = map[string]*color.Color{
	"DBG": color.New(color.FgHiBlack),
	"INF": color.New(color.FgHiBlue),
	"WRN": color.New(color.FgHiYellow),
	"ERR": color.New(color.FgHiRed, color.Bold),
}

type simpleLogger struct {
	mu      *sync.Mutex
	lvl     *Level
	scope   []string // pares key=value fijos
	lg      *log.Logger
	colored bool
}

func New() Logger {
	return newLogger(os.Stderr, ParseLevel(os.Getenv(EnvLevel)), !color.NoColor)
}

// NewWithLevel creates a logger with a specific log level
func NewWithLevel(lvl Level) Logger {
	return newLogger(os.Stderr, lvl, !color.NoColor)
}

// NewWithWriter creates an uncolored logger writing to w (useful for tests and files).
func NewWithWriter(w io.Writer, lvl Level) Logger {
	return newLogger(w, lvl, false)
}

// NewSilent creates a logger that only outputs errors (silent mode for UI)
func NewSilent() Logger {
	return NewWithLevel(LevelError)
}

// Discard devuelve un logger que no escribe nada.
func Discard() Logger {
	return newLogger(io.Discard, LevelError+1, false)
}

func newLogger(w io.Writer, lvl Level, colored bool) *simpleLogger {
	return &simpleLogger{
		mu:      &sync.Mutex{},
		lvl:     &lvl,
		lg:      log.New(w, "", 0),
		colored: colored,
	}
}

// With comparte writer, lock y nivel con el padre; solo el scope es propio.
func (s *simpleLogger) With(kv ...any) Logger {
	clone := *s
	clone.scope = append(append([]string{}, s.scope...), kvPairs(kv...)...)
	return &clone
}

func (s *simpleLogger) SetLevel(lvl Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.lvl = lvl
}

func (s *simpleLogger) Debug(msg string, kv ...any) { s.log(LevelDebug, "DBG", msg, kv...) }
func (s *simpleLogger) Info(msg string, kv ...any)  { s.log(LevelInfo, "INF", msg, kv...) }
func (s *simpleLogger) Warn(msg string, kv ...any)  { s.log(LevelWarn, "WRN", msg, kv...) }
func (s *simpleLogger) Err(err error, kv ...any) {
	if err == nil {
		return
	}
	kv = append([]any{"error", err.Error()}, kv...)
	s.log(LevelError, "ERR", "", kv...)
}

func (s *simpleLogger) log(l Level, tag, msg string, kv ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l < *s.lvl {
		return
	}
	ts := time.Now().Format("15:04:05")
	if s.colored {
		if c, ok := tagColors[tag]; ok {
			tag = c.Sprint(tag)
		}
	}
	fields := append([]string{}, s.scope...)
	fields = append(fields, kvPairs(kv...)...)
	line := fmt.Sprintf("%s %s %s", ts, tag, msg)
	if len(strings.TrimSpace(msg)) == 0 {
		// sin msg (e.g., Err) se evita el doble espacio
		line = fmt.Sprintf("%s %s", ts, tag)
	}
	if len(fields) > 0 {
		line = fmt.Sprintf("%s %s", line, strings.Join(fields, " "))
	}
	s.lg.Println(line)
}

func kvPairs(kv ...any) []string {
	out := make([]string, 0, len(kv))
	for i := 0; i < len(kv); i += 2 {
		var k, v any
		k = kv[i]
		if i+1 < len(kv) {
			v = kv[i+1]
		} else {
			v = "(missing)"
		}
		out = append(out, fmt.Sprintf("%v=%v", k, v))
	}
	return out
}

// ParseLevel convierte "debug", "info", "warn" o "error" en un Level (Info por defecto).
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg":
		return LevelDebug
	case "info", "inf", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "err", "error":
		return LevelError
	default:
		return LevelInfo
	}
}
