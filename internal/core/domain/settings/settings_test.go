package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettings_WithDefaults(t *testing.T) {
	assert.Equal(t, Default(), Settings{}.WithDefaults())

	custom := Settings{SSHCommand: "mosh", Editor: "nano", LogLevel: "debug", Color: ColorNever}
	assert.Equal(t, custom, custom.WithDefaults())

	partial := Settings{Editor: "nano"}.WithDefaults()
	assert.Equal(t, "nano", partial.Editor)
	assert.Equal(t, "ssh", partial.SSHCommand)
	assert.Equal(t, ColorAuto, partial.Color)
}
