package jobs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"migranthealth/models"
	"migranthealth/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSnapshotSkipsEmptyState(t *testing.T) {
	dir := t.TempDir()
	s := store.New(nil)

	require.NoError(t, WriteSnapshot(s, dir, time.Now()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteSnapshotDumpsState(t *testing.T) {
	dir := t.TempDir()
	s := store.New(nil)
	s.Login("Amina", models.RolePatient)

	now := time.Date(2024, 5, 1, 0, 5, 0, 0, time.UTC)
	require.NoError(t, WriteSnapshot(s, dir, now))

	raw, err := os.ReadFile(filepath.Join(dir, "state-01-05-2024.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Amina")
}

func TestRunDailyTasks(t *testing.T) {
	s := store.New(nil)
	admin := s.Login("Root", models.RoleAdmin)
	s.CreateHealthCamp(models.HealthCamp{Name: "TB Screening", Location: "Center A", Date: "2024-05-01", CreatedBy: admin.ID})

	RunDailyTasks(s, t.TempDir(), time.Date(2024, 5, 1, 0, 5, 0, 0, time.UTC))
}
