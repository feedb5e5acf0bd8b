// Package cloc invokes the external cloc tool and decodes its JSON output
// into the raw records the viewer ingests.
package cloc

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// DefaultTimeout is passed to cloc's own --timeout option and bounds the
// subprocess via context.
const DefaultTimeout = 15 * time.Second

// InstallHelp is shown when the cloc binary cannot be found on PATH.
const InstallHelp = `cloc is not installed on your system.
Visit https://github.com/AlDanial/cloc for more information.

Common installation methods:

  npm install -g cloc       # npm
  sudo apt install cloc     # Debian, Ubuntu
  sudo dnf install cloc     # Fedora
  sudo pacman -S cloc       # Arch
  brew install cloc         # macOS with Homebrew
  winget install AlDanial.Cloc  # Windows`

// ErrNotInstalled indicates the cloc binary is missing from PATH.
var ErrNotInstalled = errors.New("cloc: binary not found in PATH")

// RunError is a cloc subprocess failure with its exit code translated into
// a human-readable message.
type RunError struct {
	Code    int
	Message string
}

func (e *RunError) Error() string {
	return fmt.Sprintf("cloc: %s (exit code %d)", e.Message, e.Code)
}

// Exit codes cloc is known to emit.
func messageForCode(code int) string {
	switch {
	case code == 25:
		return "failed to create tarfile of files from git, or not a git repository"
	case code == 126:
		return "permission denied on the working directory"
	case code == 127:
		return "cloc command not found"
	case code < 0 || code > 128:
		return "terminated by signal " + strconv.Itoa(code)
	default:
		return "unknown cloc error"
	}
}

// Runner builds and executes a cloc invocation. The zero value is not
// usable; use NewRunner.
type Runner struct {
	bin     string
	timeout time.Duration
	workDir string
	flags   []string
	args    []string
}

// NewRunner returns a Runner for the given binary name (usually "cloc").
func NewRunner(bin string, timeout time.Duration) *Runner {
	if bin == "" {
		bin = "cloc"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{bin: bin, timeout: timeout}
}

// WithFlag appends a bare flag such as --by-file.
func (r *Runner) WithFlag(flag string) *Runner {
	r.flags = append(r.flags, flag)
	return r
}

// WithWorkDir sets the subprocess working directory.
func (r *Runner) WithWorkDir(dir string) *Runner {
	r.workDir = dir
	return r
}

// WithArg appends a positional argument, usually the path to scan.
func (r *Runner) WithArg(arg string) *Runner {
	r.args = append(r.args, arg)
	return r
}

// Installed reports whether the configured binary is resolvable on PATH.
func (r *Runner) Installed() bool {
	_, err := exec.LookPath(r.bin)
	return err == nil
}

// Run executes `cloc --by-file --json --timeout N <args>` and returns the
// decoded output. The context bounds the whole subprocess.
func (r *Runner) Run(ctx context.Context) (*Output, error) {
	if !r.Installed() {
		return nil, ErrNotInstalled
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout+time.Second)
	defer cancel()

	argv := []string{"--by-file", "--json", "--timeout", strconv.Itoa(int(r.timeout.Seconds()))}
	argv = append(argv, r.flags...)
	argv = append(argv, r.args...)

	cmd := exec.CommandContext(ctx, r.bin, argv...)
	cmd.Dir = r.workDir

	stdout, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			return nil, &RunError{Code: code, Message: messageForCode(code)}
		}
		return nil, fmt.Errorf("cloc: run: %w", err)
	}

	out, err := Decode(stdout)
	if err != nil {
		return nil, fmt.Errorf("cloc: decode output: %w", err)
	}
	return out, nil
}
