package seeds

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"adverts_backend/internals/databases/dbtest"
	model "adverts_backend/internals/features/adverts/announcements/model"
)

func TestRunAllSeeds_IsIdempotent(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	require.NoError(t, RunAllSeeds(ctx, db, ".", zap.NewNop()))

	var first int64
	require.NoError(t, db.Model(&model.AnnouncementModel{}).Count(&first).Error)
	assert.Equal(t, int64(3), first)

	require.NoError(t, RunAllSeeds(ctx, db, ".", zap.NewNop()))

	var second int64
	require.NoError(t, db.Model(&model.AnnouncementModel{}).Count(&second).Error)
	assert.Equal(t, first, second)
}

func TestRunAllSeeds_Errors(t *testing.T) {
	db := dbtest.Open(t)

	err := RunAllSeeds(context.Background(), db, t.TempDir(), zap.NewNop())
	assert.ErrorContains(t, err, "read seed file")

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "announcements"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "announcements", "data_announcements.json"), []byte("{not json"), 0o644))

	err = RunAllSeeds(context.Background(), db, dir, zap.NewNop())
	assert.ErrorContains(t, err, "decode seed file")
}
