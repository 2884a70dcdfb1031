package model

import "time"

// Playlist is a user-owned, ordered list of track id references.
// TrackIDs may contain duplicates and may reference tracks that no longer
// exist; resolution simply skips ids that do not resolve.
type Playlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TrackIDs    []string  `json:"track_ids"`
	Username    string    `json:"username"` // owner
	CreatedAt   time.Time `json:"created_at"`
}

// PlaylistWithTracks is a playlist with its track ids resolved against
// the catalog. Tracks keeps the TrackIDs order, minus unresolved ids.
type PlaylistWithTracks struct {
	Playlist
	Tracks []*Track `json:"tracks"`
}

// PlaylistUpdate carries a partial update. Nil fields keep their prior
// values; an update with all fields nil is a successful no-op.
type PlaylistUpdate struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	TrackIDs    *[]string `json:"track_ids"`
}
