package challenge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB(t *testing.T) {
	dir := t.TempDir()

	db, err := OpenDB(dir)
	require.NoError(t, err)

	err = db.Set([]byte("foo"), []byte("bar"), defaultWriteOptions)
	assert.NoError(t, err)

	err = db.Close()
	assert.NoError(t, err)

	db, err = OpenDB(dir)
	require.NoError(t, err)

	value, closer, err := db.Get([]byte("foo"))
	require.NoError(t, err)
	assert.Equal(t, []byte("bar"), value)
	assert.NoError(t, closer.Close())

	err = db.Close()
	assert.NoError(t, err)
}

func TestOpenDBMissingDirectory(t *testing.T) {
	assert.PanicsWithValue(t, "challenge: missing directory", func() {
		_, _ = OpenDB("")
	})
}
