package words

import (
	"database/sql"
	mrand "math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizesAndFilters(t *testing.T) {
	l, err := New([]string{" doggy ", "Drive", "toolong", "abc", "DOGGY", "dad1y", ""})
	require.NoError(t, err)

	assert.Equal(t, []string{"DOGGY", "DRIVE"}, l.Words())
	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Contains("doggy"))
	assert.False(t, l.Contains("DADDY"))
}

func TestNewRejectsEmptyResult(t *testing.T) {
	_, err := New([]string{"x", "toolong", ""})
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# comment line\n\n doggy \nDRIVE\nstate\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"DOGGY", "DRIVE", "STATE"}, l.Words())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestDefaultList(t *testing.T) {
	l := Default()
	assert.Greater(t, l.Len(), 0)
	assert.True(t, l.Contains("CRANE"))
}

func TestRandomSeededIsDeterministic(t *testing.T) {
	l, err := New([]string{"DOGGY", "DRIVE", "DADDY", "FIELD", "STATE"})
	require.NoError(t, err)

	a := l.Random(mrand.New(mrand.NewSource(9)))
	b := l.Random(mrand.New(mrand.NewSource(9)))
	assert.Equal(t, a, b)
	assert.True(t, l.Contains(a))
}

func TestRandomNilRngStillPicksMember(t *testing.T) {
	l, err := New([]string{"DOGGY", "STATE"})
	require.NoError(t, err)
	assert.True(t, l.Contains(l.Random(nil)))
}

func TestDailyIsDeterministicPerDate(t *testing.T) {
	l, err := New([]string{"DOGGY", "DRIVE", "DADDY", "FIELD", "STATE"})
	require.NoError(t, err)

	day := time.Date(2026, 8, 23, 15, 4, 5, 0, time.UTC)
	first := l.Daily(day, "salt")
	second := l.Daily(day.Add(3*time.Hour), "salt") // same UTC date
	assert.Equal(t, first, second)
	assert.True(t, l.Contains(first))
}

func TestDateKey(t *testing.T) {
	ts := time.Date(2026, 8, 23, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-23", DateKey(ts))
}

func TestLoadDB(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "words.db")

	db, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE words (word TEXT NOT NULL)`)
	require.NoError(t, err)
	for _, w := range []string{"doggy", "STATE", "bad"} {
		_, err = db.Exec(`INSERT INTO words(word) VALUES (?)`, w)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	l, err := LoadDB(dsn)
	require.NoError(t, err)
	assert.Equal(t, []string{"DOGGY", "STATE"}, l.Words())
}
