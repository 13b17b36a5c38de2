package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndList(t *testing.T) {
	db := openTestDB(t)

	id, err := db.Record(Run{
		Scenario: "section", Workspace: "/tmp/ws1", Executable: "mfnwt",
		Success: true, Message: "Normal termination of simulation",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = db.Record(Run{Scenario: "section", Workspace: "/tmp/ws2", Executable: "mfnwt", Success: false, Message: "did not converge"})
	require.NoError(t, err)

	runs, err := db.List("")
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, r := range runs {
		assert.Equal(t, "section", r.Scenario)
		assert.NotEmpty(t, r.ID)
	}
}

func TestListFilterByScenario(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Record(Run{Scenario: "a", Workspace: "w", Executable: "e", Success: true})
	require.NoError(t, err)
	_, err = db.Record(Run{Scenario: "b", Workspace: "w", Executable: "e", Success: true})
	require.NoError(t, err)

	runs, err := db.List("a")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "a", runs[0].Scenario)

	runs, err = db.List("missing")
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestSuccessFlagRoundTrip(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Record(Run{Scenario: "s", Workspace: "w", Executable: "e", Success: false, Message: "m"})
	require.NoError(t, err)

	runs, err := db.List("s")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.False(t, runs[0].Success)
	assert.Equal(t, "m", runs[0].Message)
}
