// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoticeLevel classifies a user-facing message.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
)

// Notice is a message the vault core emits for the user-facing layer.
type Notice struct {
	Level NoticeLevel
	Title string
	Text  string
}
