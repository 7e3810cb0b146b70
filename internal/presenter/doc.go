// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package presenter renders vault notices, entry listings and the audit
// trail on a terminal with the red-box colour scheme.
package presenter
