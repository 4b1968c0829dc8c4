package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		t.Run("level "+level, func(t *testing.T) {
			log, err := New(level, false)
			require.NoError(t, err)
			require.NotNil(t, log)
			log.Debug("exercised")
		})
	}
}

func TestNewBadLevel(t *testing.T) {
	_, err := New("chatty", true)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chatty")
}

func TestNop(t *testing.T) {
	Nop().Info("discarded")
}
