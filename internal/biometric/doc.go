// Package biometric holds the pure comparison logic of the two-factor
// challenge and the narrow interfaces behind which capture devices and
// embedding extraction models live.
//
// The package never captures or extracts anything itself. Concrete
// command-driven collaborators live in package capture.
package biometric
