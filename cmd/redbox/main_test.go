package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/MKhiriev/red-box/internal/service"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func rootFailingWith(err error) *cobra.Command {
	root := NewRootCmd()
	root.AddCommand(&cobra.Command{
		Use:  "fail",
		RunE: func(*cobra.Command, []string) error { return err },
	})
	root.SetArgs([]string{"fail"})
	root.SetIn(strings.NewReader(""))
	root.SetOut(new(bytes.Buffer))
	return root
}

func TestRun_DestructiveDenialHidesFactor(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"bare", service.ErrUnauthorizedAccess},
		{"wrapping voice", fmt.Errorf("retrieve report.txt.enc: %w: %w", service.ErrUnauthorizedAccess, service.ErrVoiceMismatch)},
		{"wrapping face", fmt.Errorf("%w: %w", service.ErrUnauthorizedAccess, service.ErrFaceMismatch)},
		{"joined with io error", errors.Join(service.ErrUnauthorizedAccess, errors.New("remove: permission denied"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer

			code := run(rootFailingWith(tt.err), &stderr)

			assert.Equal(t, 1, code)
			assert.Equal(t, "redbox: unauthorized access\n", stderr.String())
			assert.NotContains(t, stderr.String(), "voice")
			assert.NotContains(t, stderr.String(), "facial")
		})
	}
}

func TestRun_OtherErrorsPrintedAsIs(t *testing.T) {
	var stderr bytes.Buffer

	code := run(rootFailingWith(service.ErrDestinationExists), &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, "redbox: "+service.ErrDestinationExists.Error()+"\n", stderr.String())
}

func TestRun_Success(t *testing.T) {
	var stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs([]string{"version"})
	root.SetOut(new(bytes.Buffer))

	assert.Equal(t, 0, run(root, &stderr))
	assert.Empty(t, stderr.String())
}
