// Package config provides configuration loading, merging, and validation
// facilities for the red-box vault.
//
// Configuration is assembled from several sources. Earlier sources win for
// every field they set to a non-zero value:
//  1. Command-line flags
//  2. Environment variables (REDBOX_ prefix)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [Load]. [StructuredConfig.Paths] derives the
// on-disk layout of a vault from the loaded configuration.
package config
