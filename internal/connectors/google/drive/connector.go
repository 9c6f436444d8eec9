package drive

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/payslip-drive/internal/connectors/google"
	"github.com/custodia-labs/payslip-drive/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.StorageConnector = (*Connector)(nil)

// Authenticator yields an authorised token source, prompting the user
// when no usable token is stored.
type Authenticator interface {
	TokenSource(ctx context.Context) (oauth2.TokenSource, error)
}

// Connector authenticates and builds a Drive client.
type Connector struct {
	auth    Authenticator
	limiter *google.RateLimiter
}

// NewConnector creates a Drive connector.
func NewConnector(auth Authenticator) *Connector {
	return &Connector{auth: auth, limiter: google.NewRateLimiter()}
}

// Connect implements driven.StorageConnector.
func (c *Connector) Connect(ctx context.Context) (driven.StorageClient, error) {
	ts, err := c.auth.TokenSource(ctx)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	svc, err := google.NewDriveService(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return NewClient(svc, c.limiter), nil
}
