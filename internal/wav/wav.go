// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package wav reads and writes 16-bit PCM RIFF/WAVE files, the format the
// voice enrollment sample is retained in and recorder commands produce.
package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/red-box/models"
)

var (
	// ErrInvalidWAV is returned for input that is not a well-formed
	// RIFF/WAVE stream.
	ErrInvalidWAV = errors.New("invalid wav data")

	// ErrUnsupportedFormat is returned for WAVE files that are not 16-bit
	// integer PCM.
	ErrUnsupportedFormat = errors.New("unsupported wav format")
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
	bitsPerSample    = 16
)

type fmtChunk struct {
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// Encode writes s as a canonical 44-byte-header PCM16 WAVE stream.
func Encode(w io.Writer, s models.AudioSample) error {
	if s.SampleRate <= 0 || s.Channels <= 0 {
		return fmt.Errorf("%w: sample rate %d, channels %d", ErrUnsupportedFormat, s.SampleRate, s.Channels)
	}

	dataLen := uint32(len(s.Samples) * 2)
	blockAlign := uint16(s.Channels * bitsPerSample / 8)

	var buf bytes.Buffer
	buf.Grow(44 + int(dataLen))

	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36)+dataLen)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, fmtChunk{
		AudioFormat:   formatPCM,
		Channels:      uint16(s.Channels),
		SampleRate:    uint32(s.SampleRate),
		ByteRate:      uint32(s.SampleRate) * uint32(blockAlign),
		BlockAlign:    blockAlign,
		BitsPerSample: bitsPerSample,
	})

	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataLen)
	_ = binary.Write(&buf, binary.LittleEndian, s.Samples)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	return nil
}

// Decode reads a PCM16 WAVE stream. Unknown chunks are skipped.
func Decode(r io.Reader) (models.AudioSample, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return models.AudioSample{}, fmt.Errorf("%w: short header", ErrInvalidWAV)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return models.AudioSample{}, fmt.Errorf("%w: missing RIFF/WAVE magic", ErrInvalidWAV)
	}

	var (
		format  *fmtChunk
		chunkID [4]byte
		size    uint32
	)
	for {
		if _, err := io.ReadFull(r, chunkID[:]); err != nil {
			return models.AudioSample{}, fmt.Errorf("%w: no data chunk", ErrInvalidWAV)
		}
		if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
			return models.AudioSample{}, fmt.Errorf("%w: truncated chunk header", ErrInvalidWAV)
		}

		switch string(chunkID[:]) {
		case "fmt ":
			if size < 16 {
				return models.AudioSample{}, fmt.Errorf("%w: fmt chunk too small", ErrInvalidWAV)
			}
			format = &fmtChunk{}
			if err := binary.Read(r, binary.LittleEndian, format); err != nil {
				return models.AudioSample{}, fmt.Errorf("%w: truncated fmt chunk", ErrInvalidWAV)
			}
			if err := skip(r, int64(size-16)+int64(size&1)); err != nil {
				return models.AudioSample{}, err
			}
			if (format.AudioFormat != formatPCM && format.AudioFormat != formatExtensible) ||
				format.BitsPerSample != bitsPerSample || format.Channels == 0 {
				return models.AudioSample{}, fmt.Errorf("%w: format %d, %d bits, %d channels",
					ErrUnsupportedFormat, format.AudioFormat, format.BitsPerSample, format.Channels)
			}

		case "data":
			if format == nil {
				return models.AudioSample{}, fmt.Errorf("%w: data chunk before fmt chunk", ErrInvalidWAV)
			}
			samples := make([]int16, size/2)
			if err := binary.Read(r, binary.LittleEndian, samples); err != nil {
				return models.AudioSample{}, fmt.Errorf("%w: truncated data chunk", ErrInvalidWAV)
			}
			return models.AudioSample{
				SampleRate: int(format.SampleRate),
				Channels:   int(format.Channels),
				Samples:    samples,
			}, nil

		default:
			if err := skip(r, int64(size)+int64(size&1)); err != nil {
				return models.AudioSample{}, err
			}
		}
	}
}

func skip(r io.Reader, n int64) error {
	if n <= 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, r, n); err != nil {
		return fmt.Errorf("%w: truncated chunk", ErrInvalidWAV)
	}
	return nil
}
