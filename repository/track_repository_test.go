package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "artist", "album", "duration", "genre", "image", "audio_url",
	})
}

func TestGetAllTracksOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLTrackRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM tracks ORDER BY position").
		WillReturnRows(trackRows().
			AddRow("1", "Chill Vibes", "Lofi Master", "Relaxation Vol. 1", 180, "Lofi Hip Hop", "img1", "url1").
			AddRow("2", "Summer Breeze", "Acoustic Dreams", "Seasonal Moods", 210, "Indie Folk", "img2", "url2"))

	tracks, err := repo.GetAllTracks()
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "1", tracks[0].ID)
	assert.Equal(t, "2", tracks[1].ID)
	assert.Equal(t, 210, tracks[1].Duration)
}

func TestGetTrackByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLTrackRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM tracks WHERE id = ?").
		WithArgs("4").
		WillReturnRows(trackRows().
			AddRow("4", "Coffee Shop Jazz", "Urban Quartet", "City Sounds", 195, "Jazz", "img", "url"))

	track, err := repo.GetTrackByID("4")
	require.NoError(t, err)
	require.NotNil(t, track)
	assert.Equal(t, "Coffee Shop Jazz", track.Title)
	assert.Equal(t, "Jazz", track.Genre)
}

func TestGetTrackByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLTrackRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM tracks WHERE id = ?").
		WithArgs("999").
		WillReturnRows(trackRows())

	track, err := repo.GetTrackByID("999")
	require.NoError(t, err)
	assert.Nil(t, track)
}

func TestSearchTracksPattern(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLTrackRepository(db)

	// The query is lowercased and wrapped in wildcards, once per column.
	mock.ExpectQuery(regexp.QuoteMeta("LOWER(title) LIKE ?")).
		WithArgs("%jazz%", "%jazz%", "%jazz%", "%jazz%").
		WillReturnRows(trackRows().
			AddRow("4", "Coffee Shop Jazz", "Urban Quartet", "City Sounds", 195, "Jazz", "img", "url"))

	tracks, err := repo.SearchTracks("Jazz")
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "4", tracks[0].ID)
}

func TestSearchTracksEmptyQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLTrackRepository(db)

	// Empty query degenerates to '%%', matching the whole catalog.
	mock.ExpectQuery(regexp.QuoteMeta("LOWER(title) LIKE ?")).
		WithArgs("%%", "%%", "%%", "%%").
		WillReturnRows(trackRows().
			AddRow("1", "Chill Vibes", "Lofi Master", "Relaxation Vol. 1", 180, "Lofi Hip Hop", "img", "url"))

	tracks, err := repo.SearchTracks("")
	require.NoError(t, err)
	assert.Len(t, tracks, 1)
}

func TestCountTracks(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMySQLTrackRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM tracks")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountTracks()
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
