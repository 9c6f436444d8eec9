// Package google provides shared infrastructure for the Google Drive connector.
//
// This package contains:
//   - OAuth client configuration loaded from the downloaded credentials.json
//   - A token source that persists refreshed tokens back to token.json
//   - Service factories for creating Google API clients
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to stay below Google API quotas
//
// # Usage
//
//	cfg, err := google.LoadOAuthConfig(credentialsPath)
//	ts := google.NewPersistingTokenSource(ctx, cfg, tok, save)
//	svc, err := google.NewDriveService(ctx, ts)
//
// # OAuth2 Scopes
//
// Uploads need https://www.googleapis.com/auth/drive to look up folders
// created outside the application. For user-created internal apps,
// restricted scopes don't require verification.
package google
