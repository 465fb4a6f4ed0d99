package app

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WiresDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", tmpDir)
		t.Setenv("LOCALAPPDATA", filepath.Join(tmpDir, "AppData", "Local"))
	}

	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	application, err := New(fyneApp, DefaultConfig())
	require.NoError(t, err)

	assert.NotNil(t, application.Logger())
	assert.NotNil(t, application.State())
	assert.Same(t, fyneApp, application.FyneApp())

	manifest := application.Manifest()
	require.NotNil(t, manifest)
	assert.Equal(t, DefaultManifest(), manifest)

	count, err := application.State().SectionCount.Get()
	require.NoError(t, err)
	assert.Equal(t, len(manifest.Sections), count)
}

func TestNew_FailsOnMalformedManifest(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", tmpDir)
		t.Setenv("LOCALAPPDATA", filepath.Join(tmpDir, "AppData", "Local"))
	}

	path := filepath.Join(tmpDir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sections: [unclosed"), 0644))

	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	cfg := DefaultConfig()
	cfg.ManifestPath = path

	_, err := New(fyneApp, cfg)
	assert.Error(t, err)
}
