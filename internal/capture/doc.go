// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package capture implements the biometric collaborators of the vault on
// top of external commands.
//
// Camera, microphone and embedding models are not linked into the binary.
// Each collaborator runs a configurable command line whose placeholders
// ({in}, {out}, {seconds}, {rate}) are substituted with temporary file
// paths and recording parameters:
//
//   - [CommandFaceCapturer] runs the capture command after the user
//     confirms on the terminal and reads the written image.
//   - [CommandVoiceRecorder] runs the recorder command and decodes the
//     PCM16 WAV it writes.
//   - [CommandFaceEncoder] and [CommandVoiceEncoder] run an extractor that
//     prints the embedding as a JSON array of numbers on stdout.
//
// [Prompter] owns the terminal input; the interactive client shares it so
// that capture confirmations and shell commands read from one buffer.
package capture
