// FILE: lixenwraith/logcore/format.go
package logcore

import (
	"io"
	"os"
	"strconv"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
)

// DefaultTimestampFormat is the layout of the standard formatter's timestamp column
const DefaultTimestampFormat = "2006-01-02 15:04:05.000000"

// Format names accepted by config and FormatterByName
const (
	FormatStandard = "standard"
	FormatConsole  = "console"
	FormatJSON     = "json"
	FormatTerminal = "terminal"
)

var (
	// StandardFormatter writes "line_id | timestamp | level | thread | message"
	StandardFormatter = NewStandardFormatter(DefaultTimestampFormat)
	// JSONFormatter writes one JSON object per line
	JSONFormatter = NewJSONFormatter(DefaultTimestampFormat)
)

// bufPool recycles formatting buffers across records
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return &b
	},
}

// writeBuf hands the assembled line to w in a single Write call
func writeBuf(w io.Writer, fill func([]byte) []byte) error {
	bp := bufPool.Get().(*[]byte)
	buf := fill((*bp)[:0])
	_, err := w.Write(buf)
	if cap(buf) <= 64*1024 {
		*bp = buf
		bufPool.Put(bp)
	}
	return err
}

// NewStandardFormatter returns the standard layout with a custom timestamp layout
func NewStandardFormatter(layout string) Formatter {
	if layout == "" {
		layout = DefaultTimestampFormat
	}
	return func(w io.Writer, r Record) error {
		return writeBuf(w, func(buf []byte) []byte {
			return appendStandard(buf, r, layout, "", "")
		})
	}
}

// ConsoleFormatter writes the message only
func ConsoleFormatter(w io.Writer, r Record) error {
	return writeBuf(w, func(buf []byte) []byte {
		buf = append(buf, r.Message...)
		return append(buf, '\n')
	})
}

// NewJSONFormatter returns a formatter emitting {"id","time","level","thread","msg"} lines
func NewJSONFormatter(layout string) Formatter {
	if layout == "" {
		layout = DefaultTimestampFormat
	}
	return func(w io.Writer, r Record) error {
		return writeBuf(w, func(buf []byte) []byte {
			buf = append(buf, `{"id":`...)
			buf = strconv.AppendUint(buf, r.LineID, 10)
			buf = append(buf, `,"time":"`...)
			buf = appendJSONString(buf, r.Time.Format(layout))
			buf = append(buf, `","level":"`...)
			buf = append(buf, r.Level.String()...)
			buf = append(buf, `","thread":"`...)
			buf = appendJSONString(buf, r.Thread)
			buf = append(buf, `","msg":"`...)
			buf = appendJSONString(buf, r.Message)
			return append(buf, "\"}\n"...)
		})
	}
}

// ANSI colour per level for the terminal formatter
var levelColors = map[Level]string{
	LevelTrace:   "\x1b[90m",
	LevelDebug:   "\x1b[36m",
	LevelInfo:    "\x1b[32m",
	LevelWarning: "\x1b[33m",
	LevelError:   "\x1b[31m",
	LevelFatal:   "\x1b[1;31m",
}

const colorReset = "\x1b[0m"

// NewTerminalFormatter returns the standard layout with a coloured level column
// when out is an interactive terminal, and the plain standard layout otherwise.
func NewTerminalFormatter(layout string, out io.Writer) Formatter {
	if !shouldColorize(out) {
		return NewStandardFormatter(layout)
	}
	if layout == "" {
		layout = DefaultTimestampFormat
	}
	return func(w io.Writer, r Record) error {
		return writeBuf(w, func(buf []byte) []byte {
			return appendStandard(buf, r, layout, levelColors[r.Level], colorReset)
		})
	}
}

// FormatterByName resolves a configured format name. out is the writer the
// formatter will be attached to, used only for terminal detection.
func FormatterByName(name, layout string, out io.Writer) (Formatter, error) {
	switch name {
	case FormatStandard, "":
		return NewStandardFormatter(layout), nil
	case FormatConsole:
		return ConsoleFormatter, nil
	case FormatJSON:
		return NewJSONFormatter(layout), nil
	case FormatTerminal:
		return NewTerminalFormatter(layout, out), nil
	default:
		return nil, fmtErrorf("invalid format: '%s' (use standard, console, json, or terminal)", name)
	}
}

func shouldColorize(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func appendStandard(buf []byte, r Record, layout, colorOn, colorOff string) []byte {
	buf = strconv.AppendUint(buf, r.LineID, 10)
	buf = append(buf, " | "...)
	buf = r.Time.AppendFormat(buf, layout)
	buf = append(buf, " | "...)
	if colorOn != "" {
		buf = append(buf, colorOn...)
		buf = append(buf, r.Level.String()...)
		buf = append(buf, colorOff...)
	} else {
		buf = append(buf, r.Level.String()...)
	}
	buf = append(buf, " | "...)
	buf = append(buf, r.Thread...)
	buf = append(buf, " | "...)
	buf = append(buf, r.Message...)
	return append(buf, '\n')
}

const hexDigits = "0123456789abcdef"

// appendJSONString escapes str for use inside a JSON string literal
func appendJSONString(buf []byte, str string) []byte {
	for i := 0; i < len(str); {
		c := str[i]
		if c < utf8.RuneSelf {
			switch {
			case c == '"' || c == '\\':
				buf = append(buf, '\\', c)
			case c == '\n':
				buf = append(buf, '\\', 'n')
			case c == '\r':
				buf = append(buf, '\\', 'r')
			case c == '\t':
				buf = append(buf, '\\', 't')
			case c < 0x20:
				buf = append(buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
			default:
				buf = append(buf, c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(str[i:])
		if r == utf8.RuneError && size == 1 {
			buf = append(buf, "\ufffd"...)
		} else {
			buf = append(buf, str[i:i+size]...)
		}
		i += size
	}
	return buf
}
