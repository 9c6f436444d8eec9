package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/payslip-drive/internal/adapters/driven/auth"
	"github.com/custodia-labs/payslip-drive/internal/core/domain"
)

func TestAuthLogin(t *testing.T) {
	a := &fakeAuth{}
	s := domain.DefaultSettings()
	s.TokenFile = "/home/test/.payslip/token.json"
	install(t, &Services{Settings: s, Auth: a})

	out, err := execute(t, "", "auth", "login")

	require.NoError(t, err)
	assert.Equal(t, 1, a.logins)
	assert.Contains(t, out, "Signed in. Token saved to /home/test/.payslip/token.json")
}

func TestAuthLogin_Failure(t *testing.T) {
	install(t, &Services{Auth: &fakeAuth{err: domain.ErrCredentialsMissing}})

	_, err := execute(t, "", "auth", "login")

	assert.ErrorIs(t, err, domain.ErrCredentialsMissing)
}

func TestAuthLogin_NotConfigured(t *testing.T) {
	install(t, &Services{})

	_, err := execute(t, "", "auth", "login")

	assert.ErrorIs(t, err, errNotConfigured)
}

func TestAuthStatus(t *testing.T) {
	tests := []struct {
		name   string
		status auth.Status
		want   string
	}{
		{
			name:   "not signed in",
			status: auth.Status{CredentialsFile: "credentials.json", CredentialsPresent: true, TokenFile: "token.json"},
			want:   "not signed in",
		},
		{
			name: "valid",
			status: auth.Status{
				TokenFile: "token.json", TokenPresent: true, Valid: true,
				Expiry: time.Now().Add(time.Hour),
			},
			want: "valid until",
		},
		{
			name:   "refreshable",
			status: auth.Status{TokenFile: "token.json", TokenPresent: true, Refreshable: true},
			want:   "will refresh",
		},
		{
			name:   "expired",
			status: auth.Status{TokenFile: "token.json", TokenPresent: true},
			want:   "expired. Run 'payslip auth login'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			install(t, &Services{Auth: &fakeAuth{status: tt.status}})

			out, err := execute(t, "", "auth", "status")

			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestAuthStatus_Presence(t *testing.T) {
	install(t, &Services{Auth: &fakeAuth{status: auth.Status{
		CredentialsFile:    "/cfg/credentials.json",
		CredentialsPresent: true,
		TokenFile:          "/cfg/token.json",
	}}})

	out, err := execute(t, "", "auth", "status")

	require.NoError(t, err)
	assert.Contains(t, out, "Credentials: /cfg/credentials.json (found)")
	assert.Contains(t, out, "Token:       /cfg/token.json (missing)")
}
