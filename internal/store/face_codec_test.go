package store

import (
	"testing"

	"github.com/MKhiriev/red-box/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaceCodec_Deterministic(t *testing.T) {
	face := models.FaceTemplate{Vector: models.Embedding{0.25, -1.5, 3}}

	a, err := encodeFaceTemplate(face)
	require.NoError(t, err)
	b, err := encodeFaceTemplate(face)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestFaceCodec_Tampering re-encodes envelopes with one field changed and
// checks each is rejected.
func TestFaceCodec_Tampering(t *testing.T) {
	vec := []float64{0.25, -1.5, 3}
	good := faceEnvelope{Version: faceEnvelopeVersion, Dim: 3, Vector: vec, Checksum: faceChecksum(vec)}

	tests := []struct {
		name   string
		mutate func(e *faceEnvelope)
	}{
		{"version", func(e *faceEnvelope) { e.Version = 2 }},
		{"dim", func(e *faceEnvelope) { e.Dim = 4 }},
		{"zero dim", func(e *faceEnvelope) { e.Dim = 0; e.Vector = nil }},
		{"vector", func(e *faceEnvelope) { e.Vector = []float64{0.25, -1.5, 3.0001} }},
		{"checksum", func(e *faceEnvelope) { e.Checksum = make([]byte, 32) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := good
			env.Vector = append([]float64(nil), good.Vector...)
			tt.mutate(&env)

			data, err := faceEncMode.Marshal(env)
			require.NoError(t, err)

			_, err = decodeFaceTemplate(data)
			assert.ErrorIs(t, err, ErrMalformedTemplate)
		})
	}
}

func TestFaceCodec_NotCBOR(t *testing.T) {
	_, err := decodeFaceTemplate([]byte{0xff, 0x00, 0x13})
	assert.ErrorIs(t, err, ErrMalformedTemplate)
}
