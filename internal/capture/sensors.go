// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capture

import (
	"github.com/MKhiriev/red-box/internal/biometric"
	"github.com/MKhiriev/red-box/internal/config"
	"github.com/MKhiriev/red-box/internal/logger"
)

// NewSensors wires the command-driven collaborators configured in cfg. The
// face matcher is the euclidean matcher with the configured tolerance.
func NewSensors(cfg config.Biometrics, prompter *Prompter, runner Runner, log *logger.Logger) biometric.Sensors {
	if runner == nil {
		runner = ExecRunner{}
	}

	return biometric.Sensors{
		FaceCapturer:  NewCommandFaceCapturer(cfg.FaceCaptureCmd, prompter, runner, cfg.CaptureRetries, log),
		FaceEncoder:   NewCommandFaceEncoder(cfg.FaceExtractCmd, runner, log),
		FaceMatcher:   biometric.NewEuclideanFaceMatcher(cfg.FaceTolerance),
		VoiceRecorder: NewCommandVoiceRecorder(cfg.VoiceRecordCmd, runner, cfg.CaptureRetries, log),
		VoiceEncoder:  NewCommandVoiceEncoder(cfg.VoiceExtractCmd, runner, log),
	}
}
