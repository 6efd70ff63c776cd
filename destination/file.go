package destination

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/benny779/Logger/core"
)

const fileExt = ".log"

// File writes log lines to a file, archiving it when a line-count or
// byte-size policy is exceeded. Archives are named "<base>_<NNN>.log" in
// the same directory.
type File struct {
	state
	mu       sync.Mutex
	dir      string
	path     string
	maxLines int
	maxBytes int64
}

// FileConfig holds configuration for the file destination.
type FileConfig struct {
	// Dir is the target directory (default: the working directory). It is
	// created at construction time if absent.
	Dir string
	// FileName is the file name without extension (default: today's date).
	FileName string
	// MinimumLevel is the severity filter (default: Debug).
	MinimumLevel core.Level
	// MaxLines archives the file before a write would make it exceed this
	// many lines (0 = no line policy).
	MaxLines int
	// MaxBytes archives the file once it exceeds this many bytes
	// (0 = no byte policy). Checked only when the line policy did not
	// already archive on the same write.
	MaxBytes int64
}

// NewFile creates a file destination.
func NewFile(id string, cfg FileConfig) (*File, error) {
	f := &File{maxLines: cfg.MaxLines, maxBytes: cfg.MaxBytes}
	if err := f.state.init(id, cfg.MinimumLevel, core.DebugLevel); err != nil {
		return nil, err
	}

	dir := cfg.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, core.ConfigWrap(err, "resolve working directory")
		}
		dir = wd
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, core.ConfigWrap(err, "create log directory")
	}

	name := cfg.FileName
	if name == "" {
		name = time.Now().Format("2006-01-02")
	}

	f.dir = dir
	f.path = filepath.Join(dir, name+fileExt)
	return f, nil
}

// Path returns the live file's path.
func (f *File) Path() string { return f.path }

// Write runs rotation maintenance and appends the formatted line.
// Maintenance and append form one critical section per destination instance
// so concurrent dispatches cannot interleave rotation and writes.
func (f *File) Write(e *core.Entry) {
	line := e.Line
	f.record(Attempt(func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.maintain()
		return f.append(line)
	}))
}

// maintain archives the live file when a policy is exceeded. Line count is
// checked first; the byte policy only runs when the line policy did not
// already trigger an archive, so one write never archives twice. Any
// maintenance failure leaves the live file untouched and the append
// proceeds regardless.
func (f *File) maintain() {
	archived := false
	if f.maxLines > 0 {
		if n, err := countLines(f.path); err == nil && n > f.maxLines-1 {
			f.archive()
			archived = true
		}
	}
	if !archived && f.maxBytes > 0 {
		if info, err := os.Stat(f.path); err == nil && info.Size() > f.maxBytes {
			f.archive()
		}
	}
}

// archive moves the live file to the next archive slot. The sequence number
// is the current count of files matching "<base>*.log" in the directory,
// zero-padded to 3 digits; a file already occupying that exact name is
// deleted first.
func (f *File) archive() {
	base := strings.TrimSuffix(filepath.Base(f.path), fileExt)
	matches, err := filepath.Glob(filepath.Join(f.dir, base+"*"+fileExt))
	if err != nil {
		return
	}

	target := filepath.Join(f.dir, fmt.Sprintf("%s_%03d%s", base, len(matches), fileExt))
	if _, err := os.Stat(target); err == nil {
		if err := os.Remove(target); err != nil {
			return
		}
	}
	// Rename failure leaves the live file in place; the append still runs.
	_ = os.Rename(f.path, target)
}

func (f *File) append(line string) error {
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	err = writeLine(file, line)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

func countLines(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
	}
	return n, sc.Err()
}
