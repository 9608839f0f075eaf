package playlist

// Track is one playlist entry. Field order is the JSON key order the player
// expects.
type Track struct {
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	File    string `json:"file"`
	Artwork string `json:"artwork"`
}

// Result summarizes a completed run.
type Result struct {
	OutputPath string
	Count      int
	// DefaultArtwork counts tracks that fell back to the default artwork.
	DefaultArtwork int
}
