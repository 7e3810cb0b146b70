// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the red-box command-line runtime.
//
// [App] wires configuration, logging, the key backend, storages, capture
// adapters and services of one vault into a single process lifecycle.
// [Session] layers the session policy on top of the vault services: add and
// list need a session unlocked by a successful verification, while retrieve
// and delete challenge the user on every call.
package client
