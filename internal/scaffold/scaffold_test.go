package scaffold

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildZip creates an in-memory archive from a name-to-content map.
// Entries ending in "/" become directories.
func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		if name[len(name)-1] == '/' {
			_, err := w.Create(name)
			require.NoError(t, err)
			continue
		}
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestUnpack_StripsWrapperDirectory(t *testing.T) {
	payload := buildZip(t, map[string]string{
		"getting-started/pom.xml":                        "<project/>",
		"getting-started/src/main/java/GreetingRes.java": "class GreetingRes {}",
	})
	target := filepath.Join(t.TempDir(), "my-app")

	require.NoError(t, Unpack(payload, target))

	pom, err := os.ReadFile(filepath.Join(target, "pom.xml"))
	require.NoError(t, err)
	assert.Equal(t, "<project/>", string(pom))
	assert.FileExists(t, filepath.Join(target, "src/main/java/GreetingRes.java"))
}

func TestUnpack_NoWrapperDirectory(t *testing.T) {
	payload := buildZip(t, map[string]string{
		"pom.xml":   "<project/>",
		"README.md": "hi",
	})
	target := filepath.Join(t.TempDir(), "flat")

	require.NoError(t, Unpack(payload, target))
	assert.FileExists(t, filepath.Join(target, "pom.xml"))
	assert.FileExists(t, filepath.Join(target, "README.md"))
}

func TestUnpack_MixedTopLevelKeepsAllEntries(t *testing.T) {
	payload := buildZip(t, map[string]string{
		"app/pom.xml": "<project/>",
		"other.txt":   "loose file",
	})
	target := filepath.Join(t.TempDir(), "mixed")

	require.NoError(t, Unpack(payload, target))
	assert.FileExists(t, filepath.Join(target, "app/pom.xml"))
	assert.FileExists(t, filepath.Join(target, "other.txt"))
}

func TestUnpack_RejectsNonEmptyTarget(t *testing.T) {
	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "existing.txt"), []byte("x"), 0644))

	payload := buildZip(t, map[string]string{"app/pom.xml": "<project/>"})
	err := Unpack(payload, target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not empty")
}

func TestUnpack_EmptyExistingTargetIsFine(t *testing.T) {
	target := t.TempDir()
	payload := buildZip(t, map[string]string{"app/pom.xml": "<project/>"})

	require.NoError(t, Unpack(payload, target))
	assert.FileExists(t, filepath.Join(target, "pom.xml"))
}

func TestUnpack_RejectsPathEscape(t *testing.T) {
	payload := buildZip(t, map[string]string{
		"app/ok.txt":           "fine",
		"app/../../escape.txt": "bad",
	})
	target := filepath.Join(t.TempDir(), "escape")

	err := Unpack(payload, target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes target directory")
	assert.NoDirExists(t, target, "failed unpack leaves no target behind")
}

func TestUnpack_GarbagePayload(t *testing.T) {
	err := Unpack([]byte("this is not a zip"), filepath.Join(t.TempDir(), "x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read project archive")
}
