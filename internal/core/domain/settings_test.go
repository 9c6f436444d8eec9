package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "output_bulletins", s.OutputDir)
	assert.Equal(t, "logs", s.LogDir)
	assert.True(t, s.HistoryEnabled)
	assert.Equal(t, DefaultWatchDebounce, s.WatchDebounce)
	assert.NoError(t, s.Validate())
}

func TestSettings_Validate(t *testing.T) {
	s := DefaultSettings()
	s.OutputDir = ""
	assert.True(t, errors.Is(s.Validate(), ErrConfigInvalid))

	s = DefaultSettings()
	s.LogDir = ""
	assert.True(t, errors.Is(s.Validate(), ErrConfigInvalid))
}

func TestSettings_ValidateForUpload(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, errors.Is(s.ValidateForUpload(), ErrConfigInvalid))

	s.DriveParentFolderID = "parent"
	assert.True(t, errors.Is(s.ValidateForUpload(), ErrConfigInvalid))

	s.CredentialsFile = "credentials.json"
	s.TokenFile = "token.json"
	assert.NoError(t, s.ValidateForUpload())
}
