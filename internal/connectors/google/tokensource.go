package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/payslip-drive/internal/logger"
)

// TokenSaver persists a token.
type TokenSaver func(*oauth2.Token) error

// PersistingTokenSource refreshes tokens through the OAuth config and saves
// every token that differs from the last one seen, so that a refreshed
// access token survives the process.
type PersistingTokenSource struct {
	mu   sync.Mutex
	base oauth2.TokenSource
	last string
	save TokenSaver
}

// NewPersistingTokenSource creates a token source seeded with tok.
// The returned source can be used with option.WithTokenSource() when
// creating Google API services.
func NewPersistingTokenSource(
	ctx context.Context, cfg *oauth2.Config, tok *oauth2.Token, save TokenSaver,
) *PersistingTokenSource {
	return &PersistingTokenSource{
		base: cfg.TokenSource(ctx, tok),
		last: tok.AccessToken,
		save: save,
	}
}

// Token implements oauth2.TokenSource interface.
// Called by Google API clients when they need an access token.
func (t *PersistingTokenSource) Token() (*oauth2.Token, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tok, err := t.base.Token()
	if err != nil {
		return nil, wrapRefreshError(err)
	}

	if tok.AccessToken != t.last {
		t.last = tok.AccessToken
		if err := t.save(tok); err != nil {
			// The token in memory is still valid for this run.
			logger.Warn("Failed to persist refreshed token: %v", err)
		} else {
			logger.Debug("Refreshed token persisted")
		}
	}
	return tok, nil
}

// wrapRefreshError marks a refresh the token endpoint rejected, such as a
// revoked or expired refresh token, as ErrUnauthorized. Transport failures
// are returned unchanged.
func wrapRefreshError(err error) error {
	var rerr *oauth2.RetrieveError
	if !errors.As(err, &rerr) {
		return err
	}
	rejected := rerr.ErrorCode == "invalid_grant" ||
		(rerr.Response != nil && rerr.Response.StatusCode == http.StatusUnauthorized)
	if !rejected {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnauthorized, err)
}
