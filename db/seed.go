package db

import (
	"fmt"

	"wavefm/logger"
	"wavefm/model"
	"wavefm/repository"
)

// SampleTracks is the catalog inserted on first startup.
var SampleTracks = []*model.Track{
	{
		ID:       "1",
		Title:    "Chill Vibes",
		Artist:   "Lofi Master",
		Album:    "Relaxation Vol. 1",
		Duration: 180,
		Genre:    "Lofi Hip Hop",
		Image:    "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=300&h=300&fit=crop",
		AudioURL: "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
	},
	{
		ID:       "2",
		Title:    "Summer Breeze",
		Artist:   "Acoustic Dreams",
		Album:    "Seasonal Moods",
		Duration: 210,
		Genre:    "Indie Folk",
		Image:    "https://images.unsplash.com/photo-1459749411175-04bf5292ceea?w=300&h=300&fit=crop",
		AudioURL: "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
	},
	{
		ID:       "3",
		Title:    "Neon Nights",
		Artist:   "Synthwave Collective",
		Album:    "Retro Future",
		Duration: 240,
		Genre:    "Synthwave",
		Image:    "https://images.unsplash.com/photo-1571330735066-03aaa9429d89?w=300&h=300&fit=crop",
		AudioURL: "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
	},
	{
		ID:       "4",
		Title:    "Coffee Shop Jazz",
		Artist:   "Urban Quartet",
		Album:    "City Sounds",
		Duration: 195,
		Genre:    "Jazz",
		Image:    "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=300&h=300&fit=crop",
		AudioURL: "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
	},
	{
		ID:       "5",
		Title:    "Electronic Dreams",
		Artist:   "Digital Waves",
		Album:    "Cyber Meditation",
		Duration: 220,
		Genre:    "Electronic",
		Image:    "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=300&h=300&fit=crop",
		AudioURL: "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
	},
}

// SeedTracks inserts the sample catalog if no tracks exist yet. It
// reports whether seeding happened. A non-empty catalog is never merged
// with or updated from the sample data.
func SeedTracks(trackRepo repository.TrackRepository) (bool, error) {
	count, err := trackRepo.CountTracks()
	if err != nil {
		return false, fmt.Errorf("failed to count tracks before seeding: %w", err)
	}
	if count > 0 {
		logger.Info("Track catalog already populated, skipping seed",
			logger.Int64("tracks", count))
		return false, nil
	}

	for _, track := range SampleTracks {
		if err := trackRepo.CreateTrack(track); err != nil {
			return false, fmt.Errorf("failed to seed track %s: %w", track.ID, err)
		}
	}
	logger.Info("Track catalog seeded", logger.Int("tracks", len(SampleTracks)))
	return true, nil
}
