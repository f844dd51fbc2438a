package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.Equal(t, filepath.Join(home, ".config", "measured"), UserConfigDir())
	require.Equal(t, filepath.Join(home, ".config", "measured", "config.yaml"), UserConfigFile())
}

func TestUserConfig_NoHome(t *testing.T) {
	t.Setenv("HOME", "")

	require.Empty(t, UserConfigDir())
	require.Empty(t, UserConfigFile())
}

func TestExpand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~/units", filepath.Join(home, "units")},
		{"~", home},
		{"./a/../b", "b"},
		{"/abs/units/", "/abs/units"},
		{"~other/x", "~other/x"},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Expand(tt.in), tt.in)
	}
}
