// FILE: lixenwraith/logcore/file.go
package logcore

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileSink is a buffered append-only log file. The registry flushes it after
// every record, so the buffer only coalesces the writes of one record.
type FileSink struct {
	mu   sync.Mutex
	path string
	file *os.File
	w    *bufio.Writer
}

// OpenFileSink rotates path keeping keep numbered backups, then opens a fresh file
func OpenFileSink(path string, keep int) (*FileSink, error) {
	if err := RotateFiles(path, keep); err != nil {
		return nil, err
	}
	return appendFileSink(path)
}

// appendFileSink opens path for append without rotating
func appendFileSink(path string) (*FileSink, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmtErrorf("failed to create log directory '%s': %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmtErrorf("failed to open log file '%s': %w", path, err)
	}
	return &FileSink{
		path: path,
		file: f,
		w:    bufio.NewWriterSize(f, 32*1024),
	}, nil
}

// Path returns the file name
func (s *FileSink) Path() string {
	return s.path
}

func (s *FileSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return 0, os.ErrClosed
	}
	return s.w.Write(p)
}

// Flush writes buffered data to the file
func (s *FileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	return s.w.Flush()
}

// Close flushes, syncs and closes the file. Safe to call more than once.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.w.Flush()
	if syncErr := s.file.Sync(); syncErr != nil {
		err = combineErrors(err, syncErr)
	}
	if closeErr := s.file.Close(); closeErr != nil {
		err = combineErrors(err, closeErr)
	}
	s.file = nil
	if err != nil {
		return fmtErrorf("failed to close log file '%s': %w", s.path, err)
	}
	return nil
}

// newSizeRotatingWriter returns a lumberjack writer rotating at maxSizeMB
func newSizeRotatingWriter(path string, maxSizeMB, keep int) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: keep,
		LocalTime:  true,
	}
}

// openFileSink opens and registers the configured file sink, the caller holds lifecycleMu
func (c *Core) openFileSink(cfg *Config) error {
	if cfg.FilePath == "" || c.fileSink != nil {
		return nil
	}

	level, err := ParseLevel(cfg.FileLevel)
	if err != nil {
		return err
	}

	var w io.WriteCloser
	switch {
	case cfg.FileMaxSizeMB > 0:
		w = newSizeRotatingWriter(cfg.FilePath, int(cfg.FileMaxSizeMB), int(cfg.FileKeep))
	case !c.fileOpened:
		w, err = OpenFileSink(cfg.FilePath, int(cfg.FileKeep))
	default:
		// Restart after Finish continues the same file
		w, err = appendFileSink(cfg.FilePath)
	}
	if err != nil {
		return err
	}

	f, err := FormatterByName(cfg.DefaultFormat, cfg.TimestampFormat, w)
	if err != nil {
		w.Close()
		return err
	}

	c.fileSink = w
	c.fileOpened = true
	c.sinks.AddSink(w, level, f)
	return nil
}

// closeFileSink unregisters and closes the owned file sink, the caller holds lifecycleMu
func (c *Core) closeFileSink() error {
	if c.fileSink == nil {
		return nil
	}
	w := c.fileSink
	c.fileSink = nil
	c.sinks.RemoveSink(w)
	return w.Close()
}
