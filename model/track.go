package model

// Track represents one entry in the music catalog. The catalog is seeded
// once and read-only afterwards; only URLs are stored, the audio itself
// is never served by this system.
type Track struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Duration int    `json:"duration"` // seconds
	Genre    string `json:"genre"`
	Image    string `json:"image"`
	AudioURL string `json:"audio_url"`
}
