// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - TextNormaliser: Flattens page text before classification
//   - DocumentReader: Opens source documents page by page
//   - PayslipStore: Local directory of split payslips
//   - RunLogWriter: Persists dated run logs
//   - StorageConnector: Authenticates and yields a StorageClient
//   - StorageClient: Remote folder lookup, folder creation and file upload
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunHistoryStore: Persistent run history. Without it, runs are not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
