package db

import (
	"testing"

	"wavefm/model"
)

// fakeTrackRepo records inserted tracks for seeding tests.
type fakeTrackRepo struct {
	tracks []*model.Track
}

func (r *fakeTrackRepo) CreateTrack(track *model.Track) error {
	r.tracks = append(r.tracks, track)
	return nil
}

func (r *fakeTrackRepo) GetTrackByID(id string) (*model.Track, error) { return nil, nil }

func (r *fakeTrackRepo) GetAllTracks() ([]*model.Track, error) { return r.tracks, nil }

func (r *fakeTrackRepo) SearchTracks(query string) ([]*model.Track, error) { return nil, nil }

func (r *fakeTrackRepo) CountTracks() (int64, error) { return int64(len(r.tracks)), nil }

func TestSeedTracksEmptyCatalog(t *testing.T) {
	repo := &fakeTrackRepo{}

	seeded, err := SeedTracks(repo)
	if err != nil {
		t.Fatalf("SeedTracks: %v", err)
	}
	if !seeded {
		t.Error("expected seeding to run on an empty catalog")
	}
	if len(repo.tracks) != len(SampleTracks) {
		t.Fatalf("seeded %d tracks, want %d", len(repo.tracks), len(SampleTracks))
	}
	if repo.tracks[0].ID != "1" || repo.tracks[4].ID != "5" {
		t.Errorf("unexpected seed ids: first %q last %q", repo.tracks[0].ID, repo.tracks[4].ID)
	}
}

func TestSeedTracksIdempotent(t *testing.T) {
	repo := &fakeTrackRepo{}

	if _, err := SeedTracks(repo); err != nil {
		t.Fatalf("first SeedTracks: %v", err)
	}
	seeded, err := SeedTracks(repo)
	if err != nil {
		t.Fatalf("second SeedTracks: %v", err)
	}
	if seeded {
		t.Error("second seeding run should be a no-op")
	}
	if len(repo.tracks) != len(SampleTracks) {
		t.Errorf("catalog grew to %d tracks after reseeding", len(repo.tracks))
	}
}

func TestSeedTracksPartialCatalogUntouched(t *testing.T) {
	repo := &fakeTrackRepo{tracks: []*model.Track{{ID: "custom"}}}

	seeded, err := SeedTracks(repo)
	if err != nil {
		t.Fatalf("SeedTracks: %v", err)
	}
	if seeded {
		t.Error("non-empty catalog must not be seeded")
	}
	if len(repo.tracks) != 1 {
		t.Errorf("catalog modified: %d tracks", len(repo.tracks))
	}
}
