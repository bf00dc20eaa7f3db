package bapps

import (
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// pagerArgs refines the behavior of known pagers.
var pagerArgs = map[string][]string{
	"less": {
		"-F",        // don't page if content can fix in one screen
		"--no-init", // don't clean screen when start paging
	},
}

// withPager runs fn with os.Stdout piped into pager. An empty pager, or one
// that fails to start, leaves stdout untouched.
func withPager(pager string, logger *zap.Logger, fn func()) {
	if pager == "" {
		fn()
		return
	}

	// #nosec args audit for less
	cmd := exec.Command(pager, pagerArgs[pager]...)
	r, w, err := os.Pipe()
	if err != nil {
		logger.Warn("failed to create os pipeline", zap.Error(err))
		fn()
		return
	}

	// Capture STDOUT for the Pager. Keep the old
	// value so we can restore it later.
	stdout := os.Stdout
	cmd.Stdin = r
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		r.Close()
		w.Close()
		fmt.Printf("[WARNING] Cannot use pager(%s), set output back to stdout\n", pager)
		fn()
		return
	}

	pagerSig := make(chan struct{})
	os.Stdout = w
	go func() {
		defer close(pagerSig)
		// wait here in case of pager exit early
		err := cmd.Wait()
		logger.Debug("wait pager done", zap.String("pager", pager), zap.Error(err))
		// set to /dev/null to discard not wanted output
		os.Stdout, _ = os.Open(os.DevNull)
		w.Close()
	}()

	fn()
	w.Close()
	<-pagerSig
	// recovery normal output
	os.Stdout = stdout
}
