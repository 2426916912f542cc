package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/ssassign/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testAssignment() report.Assignment {
	return report.Assignment{
		Method: "Greedy",
		Rows: []report.Row{
			{Street: "Elm", Driver: "Al", Score: 2},
			{Street: "Oak", Driver: "Bo", Score: 1},
		},
		Total: 3,
	}
}

func TestInit_CreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	require.NoError(t, Init(dbPath))
	_, err := os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestInit_EmptyPath(t *testing.T) {
	assert.Error(t, Init(""))
}

func TestInit_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, Init(dbPath))
	assert.NoError(t, Init(dbPath))
}

func TestSaveAndGetRun(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	r := NewRun(testAssignment(), "streets.txt", "drivers.txt")
	id, err := SaveRun(ctx, db, r)
	require.NoError(t, err)
	assert.Positive(t, id)
	assert.Equal(t, id, r.ID)

	got, err := GetRun(ctx, db, id)
	require.NoError(t, err)
	assert.Equal(t, "Greedy", got.Method)
	assert.Equal(t, "streets.txt", got.StreetsFile)
	assert.Equal(t, 2, got.Size)
	assert.Equal(t, 3.0, got.Total)
	assert.Nil(t, got.Gap)
	assert.True(t, r.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, testAssignment(), got.Assignment())
}

func TestSaveRun_WithGap(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	gap := 1.5
	r := NewRun(testAssignment(), "", "")
	r.Gap = &gap
	id, err := SaveRun(ctx, db, r)
	require.NoError(t, err)

	got, err := GetRun(ctx, db, id)
	require.NoError(t, err)
	require.NotNil(t, got.Gap)
	assert.Equal(t, 1.5, *got.Gap)
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	list, err := ListRuns(ctx, db, 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	for i := 0; i < 3; i++ {
		_, err := SaveRun(ctx, db, NewRun(testAssignment(), "", ""))
		require.NoError(t, err)
	}

	list, err = ListRuns(ctx, db, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Greater(t, list[0].ID, list[1].ID)
	assert.Empty(t, list[0].Rows)
}

func TestGetRun_NotFound(t *testing.T) {
	db := setupTestDB(t)
	_, err := GetRun(context.Background(), db, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNilDB(t *testing.T) {
	ctx := context.Background()
	_, err := SaveRun(ctx, nil, &Run{})
	assert.ErrorIs(t, err, errDBNotInitialized)
	_, err = ListRuns(ctx, nil, 1)
	assert.ErrorIs(t, err, errDBNotInitialized)
	_, err = GetRun(ctx, nil, 1)
	assert.ErrorIs(t, err, errDBNotInitialized)
}

func TestSaveRun_Canceled(t *testing.T) {
	db := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SaveRun(ctx, db, NewRun(testAssignment(), "", ""))
	assert.Error(t, err)
}
