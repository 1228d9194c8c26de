// Package ptyproc spawns one child process per argument token, attached to
// its own PTY, and exposes half-duplex Input/Output handles whose errors
// degrade gracefully once the child goes away.
package ptyproc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/creack/pty"
)

// Process is one PTY-attached child. Index identifies it within the
// owning mux run (matches the order tokens were read in).
type Process struct {
	Index int
	Argv  []string

	cmd    *exec.Cmd
	master *os.File

	input  *Input
	output *Output

	exitOnce sync.Once
	exitCh   chan ExitResult
}

// ExitResult is delivered on Process.Exited() once the child terminates.
type ExitResult struct {
	Index      int
	ExitCode   int
	Err        error
}

// Spawn starts argv[0] with the remaining elements as arguments, attached
// to a new PTY sized rows x cols.
func Spawn(index int, argv []string, rows, cols int) (*Process, error) {
	if len(argv) == 0 {
		return nil, errors.New("ptyproc: empty argv")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	master, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return nil, fmt.Errorf("spawning %q: %w", argv[0], err)
	}

	p := &Process{
		Index:  index,
		Argv:   argv,
		cmd:    cmd,
		master: master,
		exitCh: make(chan ExitResult, 1),
	}
	p.input = &Input{master: master}
	p.output = &Output{master: master}

	go p.wait()

	return p, nil
}

func (p *Process) wait() {
	err := p.cmd.Wait()
	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
	}
	p.input.markClosed()
	p.exitCh <- ExitResult{Index: p.Index, ExitCode: code, Err: nonExitError(err)}
	close(p.exitCh)
}

func nonExitError(err error) error {
	var exitErr *exec.ExitError
	if err == nil || errors.As(err, &exitErr) {
		return nil
	}
	return err
}

// Exited yields exactly one ExitResult when the child terminates.
func (p *Process) Exited() <-chan ExitResult { return p.exitCh }

// Input returns the write side of the child's PTY.
func (p *Process) Input() *Input { return p.input }

// Output returns the read side of the child's PTY.
func (p *Process) Output() *Output { return p.output }

// Resize updates the child's PTY window size.
func (p *Process) Resize(rows, cols int) error {
	return pty.Setsize(p.master, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

// Kill terminates the child forcefully.
func (p *Process) Kill() error {
	if p.cmd.Process == nil {
		return nil
	}
	return p.cmd.Process.Kill()
}

// Input is the write half of a child's PTY. Once the child exits its
// master read end starts returning EIO/ErrClosed on write; Write absorbs
// that rather than propagating it, matching the original's
// io::ErrorKind::BrokenPipe handling in process.rs.
type Input struct {
	master *os.File
	closed atomic.Bool
}

func (in *Input) Write(p []byte) (int, error) {
	if in.closed.Load() {
		return len(p), nil
	}
	n, err := in.master.Write(p)
	if err != nil {
		if isBrokenPipe(err) {
			in.markClosed()
			return len(p), nil
		}
		return n, err
	}
	return n, nil
}

func (in *Input) markClosed() { in.closed.Store(true) }

func isBrokenPipe(err error) bool {
	return errors.Is(err, os.ErrClosed) || errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EPIPE)
}

// Output is the read half of a child's PTY. On Linux, a read after the
// slave side closes returns EIO rather than io.EOF; Read translates that
// specific case into io.EOF so callers only need to handle one
// end-of-stream sentinel, while any other read error still propagates.
type Output struct {
	master *os.File
}

func (out *Output) Read(p []byte) (int, error) {
	n, err := out.master.Read(p)
	if err != nil && isClosedPTYError(err) {
		return n, io.EOF
	}
	return n, err
}

func isClosedPTYError(err error) bool {
	return errors.Is(err, syscall.EIO)
}
