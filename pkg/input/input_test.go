package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "dirWebList.txt")
	require.NoError(t, os.WriteFile(filename, []byte("admin\n\n  backup  \r\nlogin\n   \n"), 0o644))

	lines, err := ReadLines(filename)
	require.NoError(t, err)
	require.Equal(t, []string{"admin", "backup", "login"}, lines)
}

func TestReadLines_Missing(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestLoadList_Missing(t *testing.T) {
	require.Empty(t, LoadList("wordlist", filepath.Join(t.TempDir(), "missing.txt")))
	require.Empty(t, LoadList("wordlist", ""))
}

func TestReadFrom(t *testing.T) {
	items, err := ReadFrom(strings.NewReader("a\n b \n\nc"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, items)
}
