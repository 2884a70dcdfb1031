package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"wavefm/model"
)

// TrackRepository defines the interface for catalog data operations. The
// catalog is read-only at runtime; CreateTrack exists for seeding.
type TrackRepository interface {
	CreateTrack(track *model.Track) error
	GetTrackByID(id string) (*model.Track, error)
	GetAllTracks() ([]*model.Track, error)
	SearchTracks(query string) ([]*model.Track, error)
	CountTracks() (int64, error)
}

// mysqlTrackRepository implements TrackRepository for MySQL.
type mysqlTrackRepository struct {
	db *sql.DB
}

// NewMySQLTrackRepository creates a new instance of mysqlTrackRepository.
func NewMySQLTrackRepository(db *sql.DB) TrackRepository {
	return &mysqlTrackRepository{db: db}
}

const trackColumns = "id, title, artist, album, duration, genre, image, audio_url"

// CreateTrack adds a new track to the catalog.
func (r *mysqlTrackRepository) CreateTrack(track *model.Track) error {
	query := `INSERT INTO tracks (id, title, artist, album, duration, genre, image, audio_url)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement for CreateTrack: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(track.ID, track.Title, track.Artist, track.Album,
		track.Duration, track.Genre, track.Image, track.AudioURL)
	if err != nil {
		return fmt.Errorf("failed to execute CreateTrack for track %s: %w", track.ID, err)
	}
	return nil
}

// GetTrackByID retrieves a track by its ID.
func (r *mysqlTrackRepository) GetTrackByID(id string) (*model.Track, error) {
	query := "SELECT " + trackColumns + " FROM tracks WHERE id = ?"
	row := r.db.QueryRow(query, id)

	track := &model.Track{}
	err := row.Scan(&track.ID, &track.Title, &track.Artist, &track.Album,
		&track.Duration, &track.Genre, &track.Image, &track.AudioURL)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Track not found
		}
		return nil, fmt.Errorf("failed to scan track by ID %s: %w", id, err)
	}
	return track, nil
}

// GetAllTracks retrieves every track in catalog insertion order.
func (r *mysqlTrackRepository) GetAllTracks() ([]*model.Track, error) {
	query := "SELECT " + trackColumns + " FROM tracks ORDER BY position"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	return scanTracks(rows)
}

// SearchTracks returns tracks whose title, artist, album or genre
// contains the query, case-insensitively, in catalog insertion order.
// An empty query matches the whole catalog.
func (r *mysqlTrackRepository) SearchTracks(query string) ([]*model.Track, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	stmt := `SELECT ` + trackColumns + ` FROM tracks
	          WHERE LOWER(title) LIKE ? OR LOWER(artist) LIKE ?
	             OR LOWER(album) LIKE ? OR LOWER(genre) LIKE ?
	          ORDER BY position`
	rows, err := r.db.Query(stmt, pattern, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search tracks for %q: %w", query, err)
	}
	defer rows.Close()

	return scanTracks(rows)
}

// CountTracks returns the number of tracks in the catalog.
func (r *mysqlTrackRepository) CountTracks() (int64, error) {
	var count int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM tracks").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tracks: %w", err)
	}
	return count, nil
}

func scanTracks(rows *sql.Rows) ([]*model.Track, error) {
	tracks := make([]*model.Track, 0)
	for rows.Next() {
		track := &model.Track{}
		err := rows.Scan(&track.ID, &track.Title, &track.Artist, &track.Album,
			&track.Duration, &track.Genre, &track.Image, &track.AudioURL)
		if err != nil {
			return nil, fmt.Errorf("failed to scan track row: %w", err)
		}
		tracks = append(tracks, track)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during track rows iteration: %w", err)
	}
	return tracks, nil
}
