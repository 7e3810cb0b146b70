// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"

	"github.com/MKhiriev/red-box/models"
)

const faceEnvelopeVersion = 1

// faceEnvelope is the on-disk form of a face template. Integer keys keep
// the encoding compact.
type faceEnvelope struct {
	Version  uint8     `cbor:"1,keyasint"`
	Dim      int       `cbor:"2,keyasint"`
	Vector   []float64 `cbor:"3,keyasint"`
	Checksum []byte    `cbor:"4,keyasint"`
}

// faceDomainKey separates template checksums from any other blake3 use.
var faceDomainKey = [32]byte{
	'r', 'e', 'd', '-', 'b', 'o', 'x', '.', 'f', 'a', 'c', 'e', '.',
	't', 'e', 'm', 'p', 'l', 'a', 't', 'e',
}

var (
	faceEncMode cbor.EncMode
	faceDecMode cbor.DecMode
)

func init() {
	var err error

	faceEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("store: CBOR encoder initialization failed: " + err.Error())
	}

	faceDecMode, err = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic("store: CBOR decoder initialization failed: " + err.Error())
	}
}

func faceChecksum(vector []float64) []byte {
	hasher, err := blake3.NewKeyed(faceDomainKey[:])
	if err != nil {
		panic("store: BLAKE3 keyed hash initialization failed: " + err.Error())
	}

	var buf [8]byte
	for _, v := range vector {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = hasher.Write(buf[:])
	}
	return hasher.Sum(nil)
}

func encodeFaceTemplate(t models.FaceTemplate) ([]byte, error) {
	if t.Vector.Dim() == 0 {
		return nil, fmt.Errorf("%w: empty face template", ErrMalformedTemplate)
	}

	return faceEncMode.Marshal(faceEnvelope{
		Version:  faceEnvelopeVersion,
		Dim:      t.Vector.Dim(),
		Vector:   t.Vector,
		Checksum: faceChecksum(t.Vector),
	})
}

func decodeFaceTemplate(data []byte) (models.FaceTemplate, error) {
	var env faceEnvelope
	if err := faceDecMode.Unmarshal(data, &env); err != nil {
		return models.FaceTemplate{}, fmt.Errorf("%w: %w", ErrMalformedTemplate, err)
	}

	switch {
	case env.Version != faceEnvelopeVersion:
		return models.FaceTemplate{}, fmt.Errorf("%w: unknown version %d", ErrMalformedTemplate, env.Version)
	case env.Dim == 0 || env.Dim != len(env.Vector):
		return models.FaceTemplate{}, fmt.Errorf("%w: dimension %d with %d values", ErrMalformedTemplate, env.Dim, len(env.Vector))
	case !bytes.Equal(env.Checksum, faceChecksum(env.Vector)):
		return models.FaceTemplate{}, fmt.Errorf("%w: checksum mismatch", ErrMalformedTemplate)
	}

	return models.FaceTemplate{Vector: env.Vector}, nil
}
