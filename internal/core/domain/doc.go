// Package domain defines the core business entities for payslip-drive.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Page: One page of a source payroll document
//   - Classification: The reference and pay period found on a page
//   - RunLog: The ordered, user-facing log of one run
//   - RunReport: The outcome of a split or upload run
//   - RunRecord: A persisted summary of a past run
//   - Settings: Immutable application configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
