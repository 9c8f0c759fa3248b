package adapter

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

func newTestLauncher(command string, args []string, startErr error) (*Launcher, *[]call) {
	var calls []call
	l := NewLauncher(command, args, NullLogger())
	l.start = func(name string, args ...string) error {
		calls = append(calls, call{name, args})
		return startErr
	}
	l.run = l.start
	return l, &calls
}

func TestLauncherConfigured(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("configured commands may resolve through 'open -a' on macOS")
	}
	// sh is on PATH on every unix CI host
	l, calls := newTestLauncher("sh", []string{"--new-window"}, nil)

	require.NoError(t, l.Open("https://www.artic.edu/artworks/1"))
	assert.Equal(t, []call{{"sh", []string{"--new-window", "https://www.artic.edu/artworks/1"}}}, *calls)
}

func TestLauncherSystemDefault(t *testing.T) {
	l, calls := newTestLauncher("", nil, nil)

	require.NoError(t, l.Open("https://example.com/a.jpg"))
	require.Len(t, *calls, 1)

	name, args := defaultOpener(runtime.GOOS, "https://example.com/a.jpg")
	assert.Equal(t, call{name, args}, (*calls)[0])
}

func TestLauncherSystemDefaultFails(t *testing.T) {
	l, _ := newTestLauncher("", nil, errors.New("exec: not found"))
	assert.Error(t, l.Open("https://example.com"))
}

func TestDefaultOpener(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"darwin", "open", []string{"u"}},
		{"windows", "cmd", []string{"/c", "start", "", "u"}},
		{"linux", "xdg-open", []string{"u"}},
		{"freebsd", "xdg-open", []string{"u"}},
	}
	for _, tt := range tests {
		name, args := defaultOpener(tt.goos, "u")
		assert.Equal(t, tt.wantName, name, tt.goos)
		assert.Equal(t, tt.wantArgs, args, tt.goos)
	}
}
