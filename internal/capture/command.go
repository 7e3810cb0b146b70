// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capture

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/MKhiriev/red-box/models"
)

// Placeholders substituted in command templates.
const (
	PlaceholderIn      = "{in}"
	PlaceholderOut     = "{out}"
	PlaceholderSeconds = "{seconds}"
	PlaceholderRate    = "{rate}"
)

// Runner executes one command line and returns its stdout.
type Runner interface {
	Run(ctx context.Context, argv []string) ([]byte, error)
}

// RunnerFunc adapts a function to [Runner].
type RunnerFunc func(ctx context.Context, argv []string) ([]byte, error)

func (f RunnerFunc) Run(ctx context.Context, argv []string) ([]byte, error) {
	return f(ctx, argv)
}

// ExecRunner runs commands with os/exec. The process is killed when ctx is
// cancelled.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, argv []string) ([]byte, error) {
	if len(argv) == 0 {
		return nil, ErrNoCommand
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w: %s", ErrCommandFailed, argv[0], err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// expand splits tmpl into fields and substitutes the placeholders in each
// field. Splitting happens first, so substituted paths may contain spaces.
func expand(tmpl string, vars map[string]string) ([]string, error) {
	fields := strings.Fields(tmpl)
	if len(fields) == 0 {
		return nil, ErrNoCommand
	}

	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, k, v)
	}
	r := strings.NewReplacer(pairs...)

	for i, f := range fields {
		fields[i] = r.Replace(f)
	}
	return fields, nil
}

// parseEmbedding decodes the JSON array an extractor prints. null and []
// both yield an empty embedding.
func parseEmbedding(out []byte) (models.Embedding, error) {
	var vec []float64
	if err := json.Unmarshal(bytes.TrimSpace(out), &vec); err != nil {
		return nil, fmt.Errorf("%w: embedding is not a JSON number array: %w", ErrInvalidOutput, err)
	}
	return models.Embedding(vec), nil
}

// withTempDir runs fn with a private scratch directory that is removed
// afterwards. Biometric samples never outlive the call.
func withTempDir(fn func(dir string) error) error {
	dir, err := os.MkdirTemp("", "redbox-capture-*")
	if err != nil {
		return fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	return fn(dir)
}
