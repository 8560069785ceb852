package launch

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// Runner spawns external processes for activations. Children are fully
// detached: own session, stdio on /dev/null, never reaped by us.
type Runner struct{}

// NewRunner creates a process runner.
func NewRunner() *Runner { return &Runner{} }

// Run starts command through the shell and releases it.
func (r *Runner) Run(command string) error {
	if strings.TrimSpace(command) == "" {
		return fmt.Errorf("empty command")
	}
	return r.start(exec.Command("sh", "-c", command))
}

// OpenURL hands rawURL to the desktop's default handler.
func (r *Runner) OpenURL(rawURL string) error {
	return r.start(exec.Command("xdg-open", rawURL))
}

// Copy places text on the Wayland clipboard.
func (r *Runner) Copy(text string) error {
	cmd := exec.Command("wl-copy", "--", text)
	return r.start(cmd)
}

func (r *Runner) start(cmd *exec.Cmd) error {
	devnull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer devnull.Close()

	cmd.Stdin = devnull
	cmd.Stdout = devnull
	cmd.Stderr = devnull
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
