package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.Equal(t, "Print the scoop version", versionCmd.Short)
}

func TestVersionCmd_Executes(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"dev", "scoop version dev\n"},
		{"1.4.0", "scoop version 1.4.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			setupCLI(t)
			original := version
			version = tt.version
			defer func() { version = original }()

			out, err := run("version")

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	setupCLI(t)

	_, err := run("version", "extra")

	assert.Error(t, err)
}
