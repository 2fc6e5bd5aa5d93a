// Package core defines the shared language of the workspace definition system.
//
// This package contains:
//   - The raw Record handed over by a document loader (Metadata, Declaration, Body)
//   - The Definition and Factory contracts every declaration type implements
//   - The error types raised while turning records into definitions
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// Type packages (pkg/types/...) and the registry depend on core, not the reverse.
package core
