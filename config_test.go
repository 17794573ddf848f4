package challenge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/blake2b"

	"github.com/256dpi/challenge/program"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "challenge.yaml")

	// missing file
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// partial file
	err = os.WriteFile(path, []byte("directory: /tmp/bank\nrent:\n  per_byte: 10\nlog:\n  level: debug\n"), 0644)
	require.NoError(t, err)

	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/bank", cfg.Directory)
	assert.Equal(t, uint64(128), cfg.Rent.Overhead)
	assert.Equal(t, uint64(10), cfg.Rent.PerByte)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DefaultConfig().ProgramID, cfg.ProgramID)

	prg, err := cfg.Program(nil)
	require.NoError(t, err)
	assert.Equal(t, program.Rent{Overhead: 128, PerByte: 10}, prg.Rent())
	assert.Equal(t, cfg.ProgramID, prg.ID().String())

	// invalid program id
	err = os.WriteFile(path, []byte("program_id: foo\n"), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)

	// overflowing rent
	err = os.WriteFile(path, []byte("rent:\n  per_byte: 18446744073709551615\n"), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)

	// invalid yaml
	err = os.WriteFile(path, []byte("queue: [\n"), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestDefaultConfigProgramID(t *testing.T) {
	id, err := program.ParseKey(DefaultConfig().ProgramID)
	require.NoError(t, err)
	assert.Equal(t, program.Key(blake2b.Sum256([]byte("challenge/program"))), id)
}

func TestConfigSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "challenge.yaml")

	cfg := DefaultConfig()
	cfg.Queue = 7

	err := cfg.Save(path)
	require.NoError(t, err)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LogConfig{Level: "debug", Development: true})
	require.NoError(t, err)
	assert.NotNil(t, logger.Check(zapcore.DebugLevel, "debug"))

	logger, err = NewLogger(LogConfig{})
	require.NoError(t, err)
	assert.Nil(t, logger.Check(zapcore.DebugLevel, "debug"))

	_, err = NewLogger(LogConfig{Level: "loud"})
	assert.Error(t, err)
}
