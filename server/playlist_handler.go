package server

import (
	"encoding/json"
	"net/http"

	"wavefm/logger"
	"wavefm/model"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// CreatePlaylistRequest represents the playlist creation request body.
type CreatePlaylistRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TrackIDs    []string `json:"track_ids"`
}

// GetPlaylistsHandler returns the caller's playlists in summary form
// (track ids only, no resolved track objects).
func (h *APIHandler) GetPlaylistsHandler(w http.ResponseWriter, r *http.Request) {
	username, err := GetUsernameFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	playlists, err := h.playlistRepo.GetPlaylistsByOwner(username)
	if err != nil {
		logger.Error("[Playlists] Failed to list playlists",
			logger.String("username", username), logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "Failed to list playlists")
		return
	}
	writeJSON(w, http.StatusOK, playlists)
}

// CreatePlaylistHandler creates a playlist for the caller. Track ids are
// stored as given, without catalog validation.
func (h *APIHandler) CreatePlaylistHandler(w http.ResponseWriter, r *http.Request) {
	username, err := GetUsernameFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreatePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Playlist name is required")
		return
	}
	if req.TrackIDs == nil {
		req.TrackIDs = []string{}
	}

	playlist := &model.Playlist{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		TrackIDs:    req.TrackIDs,
		Username:    username,
	}

	if err := h.playlistRepo.CreatePlaylist(playlist); err != nil {
		logger.Error("[Playlists] Failed to create playlist",
			logger.String("username", username), logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "Failed to create playlist")
		return
	}

	logger.Info("[Playlists] Playlist created",
		logger.String("playlistId", playlist.ID), logger.String("username", username))
	writeJSON(w, http.StatusOK, map[string]string{
		"message":     "Playlist created successfully",
		"playlist_id": playlist.ID,
	})
}

// GetPlaylistHandler returns one playlist with its track ids resolved
// against the catalog. Ids that no longer resolve are skipped; track_ids
// still lists them.
func (h *APIHandler) GetPlaylistHandler(w http.ResponseWriter, r *http.Request) {
	username, err := GetUsernameFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	playlistID := mux.Vars(r)["id"]

	playlist, err := h.playlistRepo.GetPlaylistByIDAndOwner(playlistID, username)
	if err != nil {
		logger.Error("[Playlists] Failed to get playlist",
			logger.String("playlistId", playlistID), logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "Failed to get playlist")
		return
	}
	if playlist == nil {
		writeError(w, http.StatusNotFound, "Playlist not found")
		return
	}

	tracks := make([]*model.Track, 0, len(playlist.TrackIDs))
	for _, trackID := range playlist.TrackIDs {
		track, err := h.trackRepo.GetTrackByID(trackID)
		if err != nil {
			logger.Error("[Playlists] Failed to resolve track",
				logger.String("trackId", trackID), logger.ErrorField(err))
			writeError(w, http.StatusInternalServerError, "Failed to get playlist")
			return
		}
		if track != nil {
			tracks = append(tracks, track)
		}
	}

	writeJSON(w, http.StatusOK, model.PlaylistWithTracks{
		Playlist: *playlist,
		Tracks:   tracks,
	})
}

// UpdatePlaylistHandler overwrites the provided playlist fields only.
func (h *APIHandler) UpdatePlaylistHandler(w http.ResponseWriter, r *http.Request) {
	username, err := GetUsernameFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	playlistID := mux.Vars(r)["id"]

	var update model.PlaylistUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	found, err := h.playlistRepo.UpdatePlaylist(playlistID, username, &update)
	if err != nil {
		logger.Error("[Playlists] Failed to update playlist",
			logger.String("playlistId", playlistID), logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "Failed to update playlist")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Playlist not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Playlist updated successfully",
	})
}

// DeletePlaylistHandler deletes one of the caller's playlists.
func (h *APIHandler) DeletePlaylistHandler(w http.ResponseWriter, r *http.Request) {
	username, err := GetUsernameFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	playlistID := mux.Vars(r)["id"]

	found, err := h.playlistRepo.DeletePlaylist(playlistID, username)
	if err != nil {
		logger.Error("[Playlists] Failed to delete playlist",
			logger.String("playlistId", playlistID), logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete playlist")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Playlist not found")
		return
	}

	logger.Info("[Playlists] Playlist deleted",
		logger.String("playlistId", playlistID), logger.String("username", username))
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Playlist deleted successfully",
	})
}
