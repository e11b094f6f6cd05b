package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// progress reports human-readable milestones to stderr, but only when
// stdout is a terminal: a non-interactive invocation (piped into a file
// or another process) gets none of this chatter, matching how ollama's
// root command gates console attachment on term.IsTerminal.
type progress struct {
	enabled bool
}

func newProgress() *progress {
	return &progress{enabled: term.IsTerminal(int(os.Stdout.Fd()))}
}

func (p *progress) Printf(format string, args ...any) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
