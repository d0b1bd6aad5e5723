package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormLogger "gorm.io/gorm/logger"
)

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "adverts.log")

	log, err := NewLogger(LogConfig{Level: "debug", Format: "json", Output: "file", FilePath: path, MaxSize: 1})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log.Info("hello", zap.String("k", "v"))
	_ = log.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"hello"`)
	assert.Contains(t, string(raw), `"k":"v"`)
}

func TestNewLogger_BadLevelFallsBackToInfo(t *testing.T) {
	log, err := NewLogger(LogConfig{Level: "loud", Format: "console", Output: "stdout"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestNewGormLogger_LevelFollowsZap(t *testing.T) {
	debug, err := NewLogger(LogConfig{Level: "debug", Output: "stdout"})
	require.NoError(t, err)
	assert.Equal(t, gormLogger.Info, NewGormLogger(debug, 0).(*GormLogger).LogLevel)

	assert.Equal(t, gormLogger.Warn, NewGormLogger(zap.NewNop(), 0).(*GormLogger).LogLevel)

	silent := NewGormLogger(zap.NewNop(), 0).LogMode(gormLogger.Silent)
	assert.Equal(t, gormLogger.Silent, silent.(*GormLogger).LogLevel)
}
