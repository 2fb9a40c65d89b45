package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"Always", ColorAlways, false},
		{" never ", ColorNever, false},
		{"sometimes", ColorAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSameLine(t *testing.T) {
	assert.True(t, Environment{Interactive: true}.SameLine())
	assert.False(t, Environment{Interactive: true, Windows: true}.SameLine())
	assert.False(t, Environment{Interactive: false}.SameLine())
}

func TestColor(t *testing.T) {
	tests := []struct {
		name string
		env  Environment
		mode ColorMode
		want bool
	}{
		{"auto_tty", Environment{Interactive: true}, ColorAuto, true},
		{"auto_piped", Environment{}, ColorAuto, false},
		{"auto_windows", Environment{Interactive: true, Windows: true}, ColorAuto, false},
		{"auto_no_color", Environment{Interactive: true, NoColorEnv: true}, ColorAuto, false},
		{"always_piped", Environment{}, ColorAlways, true},
		{"never_tty", Environment{Interactive: true}, ColorNever, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.env.Color(tt.mode))
		})
	}
}

func TestDetectNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.True(t, Detect().NoColorEnv)
}
