package server

import (
	"net/http"
	"testing"

	"wavefm/model"
)

func TestGetTracks(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/tracks", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var tracks []model.Track
	decodeBody(t, rec, &tracks)
	if len(tracks) != 5 {
		t.Fatalf("got %d tracks, want 5", len(tracks))
	}
	if tracks[0].ID != "1" || tracks[4].ID != "5" {
		t.Errorf("tracks not in insertion order: first %q last %q", tracks[0].ID, tracks[4].ID)
	}
}

func TestGetTrack(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/tracks/3", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var track model.Track
	decodeBody(t, rec, &track)
	if track.Title != "Neon Nights" {
		t.Errorf("title = %q, want %q", track.Title, "Neon Nights")
	}
}

func TestGetTrackNotFound(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/tracks/999", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestSearchTracks(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"genre match case-insensitive", "jazz", []string{"4"}},
		{"artist substring", "waves", []string{"5"}},
		{"title substring", "dreams", []string{"2", "5"}}, // artist "Acoustic Dreams" and title "Electronic Dreams"
		{"no match", "zzzzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()

			rec := env.do(t, http.MethodGet, "/api/tracks/search/"+tt.query, "", nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var tracks []model.Track
			decodeBody(t, rec, &tracks)
			if len(tracks) != len(tt.wantIDs) {
				t.Fatalf("got %d tracks, want %d", len(tracks), len(tt.wantIDs))
			}
			for i, wantID := range tt.wantIDs {
				if tracks[i].ID != wantID {
					t.Errorf("tracks[%d].ID = %q, want %q", i, tracks[i].ID, wantID)
				}
			}
		})
	}
}
