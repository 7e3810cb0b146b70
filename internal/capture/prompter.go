// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capture

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/MKhiriev/red-box/internal/biometric"
)

type line struct {
	text string
	err  error
}

// Prompter reads terminal lines without blocking past context
// cancellation. A single reader goroutine owns the input, started on the
// first read.
type Prompter struct {
	in  io.Reader
	out io.Writer

	once  sync.Once
	lines chan line
}

// NewPrompter returns a [Prompter] reading from in and writing prompts to
// out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, lines: make(chan line)}
}

func (p *Prompter) start() {
	go func() {
		sc := bufio.NewScanner(p.in)
		for sc.Scan() {
			p.lines <- line{text: sc.Text()}
		}
		err := sc.Err()
		if err == nil {
			err = io.EOF
		}
		for {
			p.lines <- line{err: err}
		}
	}()
}

// ReadLine prints prompt and returns the next input line without the line
// terminator. It returns io.EOF once the input is exhausted and ctx.Err()
// when ctx is done first.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	p.once.Do(p.start)

	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-p.lines:
		return strings.TrimRight(l.text, "\r"), l.err
	}
}

// Confirm waits for the user to trigger a capture. Enter (or any other
// input) confirms; "q", end of input and context cancellation return
// [biometric.ErrCaptureCancelled].
func (p *Prompter) Confirm(ctx context.Context, prompt string) error {
	text, err := p.ReadLine(ctx, prompt)
	if err != nil {
		return fmt.Errorf("%w: %w", biometric.ErrCaptureCancelled, err)
	}

	switch strings.ToLower(strings.TrimSpace(text)) {
	case "q", "quit":
		return biometric.ErrCaptureCancelled
	}
	return nil
}
