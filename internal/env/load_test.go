package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := `# showroom overrides
SHOWROOM_TEST_VARIANT=gallery
export SHOWROOM_TEST_QUOTED="a value"
SHOWROOM_TEST_SINGLE='x'
not a pair
=nokey
SHOWROOM_TEST_KEPT=from-file
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	t.Setenv("SHOWROOM_TEST_KEPT", "from-env")
	for _, k := range []string{"SHOWROOM_TEST_VARIANT", "SHOWROOM_TEST_QUOTED", "SHOWROOM_TEST_SINGLE"} {
		k := k
		t.Cleanup(func() { os.Unsetenv(k) })
	}

	set, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"SHOWROOM_TEST_VARIANT", "SHOWROOM_TEST_QUOTED", "SHOWROOM_TEST_SINGLE"}, set)
	assert.Equal(t, "gallery", os.Getenv("SHOWROOM_TEST_VARIANT"))
	assert.Equal(t, "a value", os.Getenv("SHOWROOM_TEST_QUOTED"))
	assert.Equal(t, "x", os.Getenv("SHOWROOM_TEST_SINGLE"))
	assert.Equal(t, "from-env", os.Getenv("SHOWROOM_TEST_KEPT"))
}

func TestLoadMissingFile(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
	assert.Empty(t, set)
}
