package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunCheck_CleanTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/a.md", "[x](./b.md)")
	writeFile(t, root, "docs/b.md", "# B")

	result, err := runCheck("", root)
	require.NoError(t, err)
	require.True(t, result.OK())
	require.Equal(t, 2, result.FilesScanned)
}

func TestRunCheck_MissingLink(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/a.md", "[x](./missing.md)")

	result, err := runCheck("", root)
	require.NoError(t, err)
	require.False(t, result.OK())
	require.Equal(t, 1, result.MissingCount())
	require.Equal(t, "./missing.md", result.Missing[0].Target)
}

func TestRunCheck_ConfigIgnoreApplied(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "vendor/broken.md", "[x](./missing.md)")
	writeFile(t, root, "docs/a.md", "")
	cfgPath := writeFile(t, root, "linkcheck.yaml", "ignore:\n  - vendor\n")

	result, err := runCheck(cfgPath, root)
	require.NoError(t, err)
	require.True(t, result.OK())
	require.Equal(t, 1, result.FilesScanned)
}

func TestRunCheck_BadConfigFails(t *testing.T) {
	root := t.TempDir()
	cfgPath := writeFile(t, root, "linkcheck.yaml", "ignore: [unclosed")

	_, err := runCheck(cfgPath, root)
	require.Error(t, err)
}
