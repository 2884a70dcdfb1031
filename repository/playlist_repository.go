package repository

import (
	"database/sql"
	"fmt"

	"wavefm/model"
)

// PlaylistRepository defines the interface for playlist data operations.
// Lookups are ownership-scoped: the owner is part of the key, so a
// mismatched owner behaves exactly like a missing playlist.
type PlaylistRepository interface {
	CreatePlaylist(playlist *model.Playlist) error
	GetPlaylistsByOwner(owner string) ([]*model.Playlist, error)
	GetPlaylistByIDAndOwner(id, owner string) (*model.Playlist, error)
	UpdatePlaylist(id, owner string, update *model.PlaylistUpdate) (bool, error)
	DeletePlaylist(id, owner string) (bool, error)
}

// mysqlPlaylistRepository implements PlaylistRepository for MySQL.
type mysqlPlaylistRepository struct {
	db *sql.DB
}

// NewMySQLPlaylistRepository creates a new mysqlPlaylistRepository.
func NewMySQLPlaylistRepository(db *sql.DB) PlaylistRepository {
	return &mysqlPlaylistRepository{db: db}
}

// CreatePlaylist stores a playlist and its track references atomically.
// Track ids are not validated against the catalog.
func (r *mysqlPlaylistRepository) CreatePlaylist(playlist *model.Playlist) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for CreatePlaylist: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO playlists (id, name, description, owner_username) VALUES (?, ?, ?, ?)",
		playlist.ID, playlist.Name, playlist.Description, playlist.Username)
	if err != nil {
		return fmt.Errorf("failed to insert playlist %s: %w", playlist.ID, err)
	}

	if err := insertTrackIDs(tx, playlist.ID, playlist.TrackIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit CreatePlaylist: %w", err)
	}
	return nil
}

// GetPlaylistsByOwner retrieves all playlists owned by the given user.
func (r *mysqlPlaylistRepository) GetPlaylistsByOwner(owner string) ([]*model.Playlist, error) {
	query := `SELECT id, name, description, owner_username, created_at
	           FROM playlists WHERE owner_username = ? ORDER BY created_at, id`
	rows, err := r.db.Query(query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists for owner %s: %w", owner, err)
	}
	defer rows.Close()

	playlists := make([]*model.Playlist, 0)
	for rows.Next() {
		playlist := &model.Playlist{}
		err := rows.Scan(&playlist.ID, &playlist.Name, &playlist.Description,
			&playlist.Username, &playlist.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist row: %w", err)
		}
		playlists = append(playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during playlist rows iteration: %w", err)
	}

	for _, playlist := range playlists {
		trackIDs, err := r.loadTrackIDs(playlist.ID)
		if err != nil {
			return nil, err
		}
		playlist.TrackIDs = trackIDs
	}
	return playlists, nil
}

// GetPlaylistByIDAndOwner retrieves one playlist by id and owner.
func (r *mysqlPlaylistRepository) GetPlaylistByIDAndOwner(id, owner string) (*model.Playlist, error) {
	query := `SELECT id, name, description, owner_username, created_at
	           FROM playlists WHERE id = ? AND owner_username = ?`
	row := r.db.QueryRow(query, id, owner)

	playlist := &model.Playlist{}
	err := row.Scan(&playlist.ID, &playlist.Name, &playlist.Description,
		&playlist.Username, &playlist.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Playlist not found (or not owned by caller)
		}
		return nil, fmt.Errorf("failed to scan playlist %s: %w", id, err)
	}

	trackIDs, err := r.loadTrackIDs(playlist.ID)
	if err != nil {
		return nil, err
	}
	playlist.TrackIDs = trackIDs
	return playlist, nil
}

// UpdatePlaylist overwrites the provided fields only. It reports whether
// a playlist matched the id/owner pair; an update with no provided
// fields is a successful no-op.
func (r *mysqlPlaylistRepository) UpdatePlaylist(id, owner string, update *model.PlaylistUpdate) (bool, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction for UpdatePlaylist: %w", err)
	}
	defer tx.Rollback()

	var existingID string
	err = tx.QueryRow(
		"SELECT id FROM playlists WHERE id = ? AND owner_username = ?",
		id, owner).Scan(&existingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up playlist %s for update: %w", id, err)
	}

	if update.Name != nil {
		if _, err := tx.Exec("UPDATE playlists SET name = ? WHERE id = ?", *update.Name, id); err != nil {
			return false, fmt.Errorf("failed to update playlist %s name: %w", id, err)
		}
	}
	if update.Description != nil {
		if _, err := tx.Exec("UPDATE playlists SET description = ? WHERE id = ?", *update.Description, id); err != nil {
			return false, fmt.Errorf("failed to update playlist %s description: %w", id, err)
		}
	}
	if update.TrackIDs != nil {
		if _, err := tx.Exec("DELETE FROM playlist_tracks WHERE playlist_id = ?", id); err != nil {
			return false, fmt.Errorf("failed to clear tracks for playlist %s: %w", id, err)
		}
		if err := insertTrackIDs(tx, id, *update.TrackIDs); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit UpdatePlaylist: %w", err)
	}
	return true, nil
}

// DeletePlaylist removes a playlist by id and owner, reporting whether
// one was deleted. Track references go with it via cascade.
func (r *mysqlPlaylistRepository) DeletePlaylist(id, owner string) (bool, error) {
	res, err := r.db.Exec(
		"DELETE FROM playlists WHERE id = ? AND owner_username = ?", id, owner)
	if err != nil {
		return false, fmt.Errorf("failed to delete playlist %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows for playlist delete: %w", err)
	}
	return affected > 0, nil
}

func (r *mysqlPlaylistRepository) loadTrackIDs(playlistID string) ([]string, error) {
	rows, err := r.db.Query(
		"SELECT track_id FROM playlist_tracks WHERE playlist_id = ? ORDER BY position",
		playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks for playlist %s: %w", playlistID, err)
	}
	defer rows.Close()

	trackIDs := make([]string, 0)
	for rows.Next() {
		var trackID string
		if err := rows.Scan(&trackID); err != nil {
			return nil, fmt.Errorf("failed to scan playlist track row: %w", err)
		}
		trackIDs = append(trackIDs, trackID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during playlist track rows iteration: %w", err)
	}
	return trackIDs, nil
}

func insertTrackIDs(tx *sql.Tx, playlistID string, trackIDs []string) error {
	for i, trackID := range trackIDs {
		_, err := tx.Exec(
			"INSERT INTO playlist_tracks (playlist_id, position, track_id) VALUES (?, ?, ?)",
			playlistID, i, trackID)
		if err != nil {
			return fmt.Errorf("failed to insert track %s into playlist %s: %w", trackID, playlistID, err)
		}
	}
	return nil
}
