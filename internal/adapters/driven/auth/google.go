// Package auth obtains Google OAuth tokens for the Drive connector, reusing
// the stored token when possible and falling back to a browser login.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/payslip-drive/internal/adapters/driving/oauth"
	"github.com/custodia-labs/payslip-drive/internal/connectors/google"
	"github.com/custodia-labs/payslip-drive/internal/connectors/google/drive"
	"github.com/custodia-labs/payslip-drive/internal/core/domain"
	"github.com/custodia-labs/payslip-drive/internal/logger"
)

// DefaultLoginTimeout bounds the wait for the browser redirect.
const DefaultLoginTimeout = 5 * time.Minute

var _ drive.Authenticator = (*GoogleAuthenticator)(nil)

// GoogleAuthenticator implements drive.Authenticator on top of
// credentials.json and token.json.
type GoogleAuthenticator struct {
	credentialsFile string
	token           *TokenFile
	openBrowser     func(url string) error
	notify          func(url string)
	timeout         time.Duration
	interactive     bool
}

// Option configures a GoogleAuthenticator.
type Option func(*GoogleAuthenticator)

// WithBrowser replaces the browser opener.
func WithBrowser(open func(url string) error) Option {
	return func(a *GoogleAuthenticator) { a.openBrowser = open }
}

// WithNotify registers a callback that receives the consent URL before the
// browser is opened.
func WithNotify(notify func(url string)) Option {
	return func(a *GoogleAuthenticator) { a.notify = notify }
}

// WithLoginTimeout sets how long to wait for the browser redirect.
func WithLoginTimeout(d time.Duration) Option {
	return func(a *GoogleAuthenticator) { a.timeout = d }
}

// WithInteractive controls whether TokenSource may fall back to the browser
// login. When false it returns domain.ErrAuthRequired instead, leaving the
// login to "payslip auth login".
func WithInteractive(interactive bool) Option {
	return func(a *GoogleAuthenticator) { a.interactive = interactive }
}

// NewGoogleAuthenticator creates an authenticator for the given files.
func NewGoogleAuthenticator(credentialsFile, tokenFile string, opts ...Option) *GoogleAuthenticator {
	a := &GoogleAuthenticator{
		credentialsFile: credentialsFile,
		token:           NewTokenFile(tokenFile),
		openBrowser:     oauth.OpenBrowser,
		timeout:         DefaultLoginTimeout,
		interactive:     true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// TokenSource returns a source backed by the stored token, refreshing it if
// expired. Without a usable token, or when Google rejects the refresh token,
// the interactive login runs first. Other refresh failures are returned.
func (a *GoogleAuthenticator) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	cfg, err := google.LoadOAuthConfig(a.credentialsFile)
	if err != nil {
		return nil, err
	}

	tok, err := a.token.Load()
	switch {
	case err == nil && (tok.Valid() || tok.RefreshToken != ""):
		ts := google.NewPersistingTokenSource(ctx, cfg, tok, a.token.Save)
		_, refreshErr := ts.Token()
		if refreshErr == nil {
			return ts, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !google.IsUnauthorized(refreshErr) {
			return nil, fmt.Errorf("refresh token: %w", refreshErr)
		}
		logger.Warn("Stored token was rejected, signing in again: %v", refreshErr)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		logger.Warn("Ignoring unreadable token file: %v", err)
	}

	if !a.interactive {
		return nil, fmt.Errorf("%w: run \"payslip auth login\"", domain.ErrAuthRequired)
	}
	tok, err = a.authorise(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := a.token.Save(tok); err != nil {
		return nil, err
	}
	return google.NewPersistingTokenSource(ctx, cfg, tok, a.token.Save), nil
}

// Login always runs the browser flow and stores the resulting token.
func (a *GoogleAuthenticator) Login(ctx context.Context) (*oauth2.Token, error) {
	cfg, err := google.LoadOAuthConfig(a.credentialsFile)
	if err != nil {
		return nil, err
	}
	tok, err := a.authorise(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := a.token.Save(tok); err != nil {
		return nil, err
	}
	return tok, nil
}

// authorise runs the PKCE authorisation code flow against a loopback redirect.
func (a *GoogleAuthenticator) authorise(ctx context.Context, base *oauth2.Config) (*oauth2.Token, error) {
	state, err := randomState()
	if err != nil {
		return nil, fmt.Errorf("generate state: %w", err)
	}
	verifier := oauth2.GenerateVerifier()

	server := oauth.NewCallbackServer(0, state)
	if err := server.Start(); err != nil {
		return nil, fmt.Errorf("start callback server: %w", err)
	}
	defer func() {
		if err := server.Stop(); err != nil {
			logger.Debug("Callback server shutdown: %v", err)
		}
	}()

	cfg := *base
	cfg.RedirectURL = server.RedirectURI()
	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))

	if a.notify != nil {
		a.notify(authURL)
	}
	logger.Info("Opening browser for Google authorisation")
	if err := a.openBrowser(authURL); err != nil {
		logger.Warn("Could not open browser: %v", err)
	}

	code, err := server.WaitForCode(ctx, a.timeout)
	if err != nil {
		return nil, fmt.Errorf("authorisation: %w", err)
	}

	tok, err := cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}
	return tok, nil
}

// Status describes the stored authorisation.
type Status struct {
	CredentialsFile    string
	CredentialsPresent bool
	TokenFile          string
	TokenPresent       bool
	Valid              bool
	Refreshable        bool
	Expiry             time.Time
}

// Status inspects the credential and token files without network access.
func (a *GoogleAuthenticator) Status() (Status, error) {
	st := Status{CredentialsFile: a.credentialsFile, TokenFile: a.token.Path()}

	if _, err := os.Stat(a.credentialsFile); err == nil {
		st.CredentialsPresent = true
	} else if !errors.Is(err, fs.ErrNotExist) {
		return st, fmt.Errorf("stat credentials: %w", err)
	}

	tok, err := a.token.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return st, err
	}
	st.TokenPresent = true
	st.Valid = tok.Valid()
	st.Refreshable = tok.RefreshToken != ""
	st.Expiry = tok.Expiry
	return st, nil
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
