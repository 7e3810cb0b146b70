// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/red-box/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(NewRootCmd(), os.Stderr))
}

// run executes root and prints a failure to w. It returns the process exit
// code.
func run(root *cobra.Command, w io.Writer) int {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(w, "redbox:", failureText(err))
		return 1
	}
	return 0
}

// failureText is the text shown for err. A destructive denial always reads
// the same, whatever it wraps.
func failureText(err error) string {
	if errors.Is(err, service.ErrUnauthorizedAccess) {
		return service.ErrUnauthorizedAccess.Error()
	}
	return err.Error()
}
