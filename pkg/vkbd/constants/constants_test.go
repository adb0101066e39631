package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButtonNames(t *testing.T) {
	assert.Equal(t, "Start", VirtualButtonStart.GetName())
	assert.Equal(t, "Menu", VirtualButtonMenu.GetName())
	assert.Equal(t, "Unknown", VirtualButton(99).GetName())
}

func TestIsDevMode(t *testing.T) {
	t.Setenv("ENVIRONMENT", "dev")
	assert.True(t, IsDevMode())

	t.Setenv("ENVIRONMENT", "")
	assert.False(t, IsDevMode())
}
