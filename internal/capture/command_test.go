package capture

import (
	"context"
	"io"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/red-box/internal/biometric"
	"github.com/MKhiriev/red-box/internal/logger"
	"github.com/MKhiriev/red-box/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		vars    map[string]string
		want    []string
		wantErr error
	}{
		{
			name: "substitutes every placeholder",
			tmpl: "arecord -r {rate} -d {seconds} {out}",
			vars: map[string]string{PlaceholderRate: "44100", PlaceholderSeconds: "5", PlaceholderOut: "/tmp/v.wav"},
			want: []string{"arecord", "-r", "44100", "-d", "5", "/tmp/v.wav"},
		},
		{
			name: "path with spaces stays one argument",
			tmpl: "extract --image={in}",
			vars: map[string]string{PlaceholderIn: "/tmp/my dir/frame.jpg"},
			want: []string{"extract", "--image=/tmp/my dir/frame.jpg"},
		},
		{
			name: "unknown placeholder kept verbatim",
			tmpl: "tool {other}",
			vars: map[string]string{PlaceholderIn: "x"},
			want: []string{"tool", "{other}"},
		},
		{
			name:    "empty template",
			tmpl:    "   ",
			wantErr: ErrNoCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expand(tt.tmpl, tt.vars)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEmbedding(t *testing.T) {
	vec, err := parseEmbedding([]byte("[0.5, -1, 2e-3]\n"))
	require.NoError(t, err)
	assert.Equal(t, models.Embedding{0.5, -1, 0.002}, vec)

	vec, err = parseEmbedding([]byte("null"))
	require.NoError(t, err)
	assert.Zero(t, vec.Dim())

	_, err = parseEmbedding([]byte("no face here"))
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExecRunner(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}
	enc := NewCommandFaceEncoder("cat {in}", ExecRunner{}, logger.Nop())

	// cat echoes the "image" back, which is already a JSON embedding
	face, err := enc.ExtractFaceEmbedding(context.Background(), models.ImageSample{Data: []byte("[1,2,3]"), Format: "jpeg"})
	require.NoError(t, err)
	assert.Equal(t, models.Embedding{1, 2, 3}, face.Vector)

	_, err = ExecRunner{}.Run(context.Background(), []string{"cat", "/definitely/not/here"})
	assert.ErrorIs(t, err, ErrCommandFailed)
}

func TestPrompter_ReadLine(t *testing.T) {
	var out strings.Builder
	p := NewPrompter(strings.NewReader("add notes.txt\r\nlist\n"), &out)
	ctx := context.Background()

	l, err := p.ReadLine(ctx, "> ")
	require.NoError(t, err)
	assert.Equal(t, "add notes.txt", l)

	l, err = p.ReadLine(ctx, "> ")
	require.NoError(t, err)
	assert.Equal(t, "list", l)

	_, err = p.ReadLine(ctx, "")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "> > ", out.String())
}

func TestPrompter_Confirm(t *testing.T) {
	p := NewPrompter(strings.NewReader("\nQ\n"), io.Discard)
	ctx := context.Background()

	assert.NoError(t, p.Confirm(ctx, ""))
	assert.ErrorIs(t, p.Confirm(ctx, ""), biometric.ErrCaptureCancelled)
	// end of input
	assert.ErrorIs(t, p.Confirm(ctx, ""), biometric.ErrCaptureCancelled)
}

func TestPrompter_ContextCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p := NewPrompter(r, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := p.Confirm(ctx, "")
	assert.ErrorIs(t, err, biometric.ErrCaptureCancelled)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
