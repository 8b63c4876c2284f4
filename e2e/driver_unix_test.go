//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
	"unsafe"

	"github.com/creack/pty"
)

const (
	ringSize  = 1 << 20 // 1 MiB of scrollback
	termRows  = 40
	termCols  = 120
	pollEvery = 25 * time.Millisecond
)

var binPath = "memberpick_e2e"

const (
	KeyEnter = "\r"
	KeyCtrlC = "\x03"
	KeyEsc   = "\x1b"
	KeyDown  = "j"
	KeyEnd   = "G"
	KeyClear = "c"
	KeyQuit  = "q"
)

// ansiRe strips CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// ring keeps the most recent ringSize bytes of terminal output
type ring struct {
	mu   sync.Mutex
	buf  []byte
	head int
	full bool
}

func (r *ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range p {
		r.buf[r.head] = b
		r.head = (r.head + 1) % len(r.buf)
		if r.head == 0 {
			r.full = true
		}
	}
	return len(p), nil
}

func (r *ring) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.full {
		return string(r.buf[:r.head])
	}
	return string(r.buf[r.head:]) + string(r.buf[:r.head])
}

// App drives one memberpick process inside a pseudo terminal
type App struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	done      chan error
	workspace string
	out       *ring
}

// NewApp prepares an app with an empty working directory
func NewApp(t *testing.T) *App {
	workspace, err := os.MkdirTemp("", "memberpick-e2e-*")
	if err != nil {
		t.Fatalf("failed to create workspace: %v", err)
	}
	return &App{
		t:         t,
		workspace: workspace,
		out:       &ring{buf: make([]byte, ringSize)},
	}
}

// WriteConfig writes the default config file into the workspace
func (a *App) WriteConfig(content string) string {
	a.t.Helper()
	path := filepath.Join(a.workspace, ".memberpick.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		a.t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// Exists reports whether name exists in the workspace
func (a *App) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(a.workspace, name))
	return err == nil
}

// Start launches memberpick with args in the workspace
func (a *App) Start(args ...string) error {
	a.cmd = exec.Command(binPath, args...)
	a.cmd.Dir = a.workspace
	a.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+a.workspace,
		"MEMBERPICK_CONFIG=",
		"MEMBERPICK_E2E_TEST=1",
	)

	ptyFile, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}
	a.pty, a.tty = ptyFile, tty
	a.cmd.Stdin, a.cmd.Stdout, a.cmd.Stderr = tty, tty, tty

	ws := struct{ Row, Col, X, Y uint16 }{termRows, termCols, 0, 0}
	syscall.Syscall(syscall.SYS_IOCTL, ptyFile.Fd(), uintptr(syscall.TIOCSWINSZ), uintptr(unsafe.Pointer(&ws)))

	if err := a.cmd.Start(); err != nil {
		ptyFile.Close()
		tty.Close()
		return fmt.Errorf("failed to start command: %w", err)
	}

	a.done = make(chan error, 1)
	go func(cmd *exec.Cmd) { a.done <- cmd.Wait() }(a.cmd)
	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := a.pty.Read(buf)
			if n > 0 {
				a.out.Write(buf[:n])
			}
			if err != nil {
				return
			}
		}
	}()
	return nil
}

// Press writes keys to the terminal
func (a *App) Press(keys string) error {
	a.t.Helper()
	_, err := a.pty.Write([]byte(keys))
	return err
}

// Ready waits for the ready marker the app prints in test mode
func (a *App) Ready() bool {
	a.t.Helper()
	return a.waitFor(func(s string) bool { return strings.Contains(s, "__READY__") }, 5*time.Second)
}

// See waits for text to show up in the plain output
func (a *App) See(text string) bool {
	a.t.Helper()
	return a.waitFor(func(s string) bool { return strings.Contains(ansiRe.ReplaceAllString(s, ""), text) }, 3*time.Second)
}

// SeeLine waits for a single output line containing all parts
func (a *App) SeeLine(parts ...string) bool {
	a.t.Helper()
	return a.waitFor(func(s string) bool {
		for _, line := range strings.Split(ansiRe.ReplaceAllString(s, ""), "\n") {
			if containsAll(line, parts) {
				return true
			}
		}
		return false
	}, 3*time.Second)
}

// Plain returns the output so far with escape sequences removed
func (a *App) Plain() string {
	return ansiRe.ReplaceAllString(a.out.String(), "")
}

// WaitExit waits for the process to exit on its own
func (a *App) WaitExit(timeout time.Duration) error {
	a.t.Helper()
	select {
	case err := <-a.done:
		a.cmd = nil
		return err
	case <-time.After(timeout):
		return fmt.Errorf("app did not exit within %s", timeout)
	}
}

// DumpTail logs the last n bytes of plain output
func (a *App) DumpTail(n int) {
	s := a.Plain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	a.t.Logf("--- output tail ---\n%s", s)
}

// Cleanup closes the terminal, kills the process and removes the workspace
func (a *App) Cleanup() {
	if a.pty != nil {
		_ = a.pty.Close()
	}
	if a.tty != nil {
		_ = a.tty.Close()
	}
	if a.cmd != nil && a.cmd.Process != nil {
		_ = a.cmd.Process.Kill()
		<-a.done
	}
	_ = os.RemoveAll(a.workspace)
}

func (a *App) waitFor(pred func(string) bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for !pred(a.out.String()) {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(pollEvery)
	}
	return true
}

func containsAll(s string, parts []string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
