package server

import (
	"net/http"

	"wavefm/logger"

	"github.com/gorilla/mux"
)

// GetTracksHandler returns the whole catalog in insertion order.
func (h *APIHandler) GetTracksHandler(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.trackRepo.GetAllTracks()
	if err != nil {
		logger.Error("[Tracks] Failed to list tracks", logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "Failed to list tracks")
		return
	}
	writeJSON(w, http.StatusOK, tracks)
}

// GetTrackHandler returns a single track by id.
func (h *APIHandler) GetTrackHandler(w http.ResponseWriter, r *http.Request) {
	trackID := mux.Vars(r)["id"]

	track, err := h.trackRepo.GetTrackByID(trackID)
	if err != nil {
		logger.Error("[Tracks] Failed to get track",
			logger.String("trackId", trackID), logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "Failed to get track")
		return
	}
	if track == nil {
		writeError(w, http.StatusNotFound, "Track not found")
		return
	}
	writeJSON(w, http.StatusOK, track)
}

// SearchTracksHandler returns tracks matching the query substring.
func (h *APIHandler) SearchTracksHandler(w http.ResponseWriter, r *http.Request) {
	query := mux.Vars(r)["query"]

	tracks, err := h.trackRepo.SearchTracks(query)
	if err != nil {
		logger.Error("[Tracks] Search failed",
			logger.String("query", query), logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "Failed to search tracks")
		return
	}
	writeJSON(w, http.StatusOK, tracks)
}
