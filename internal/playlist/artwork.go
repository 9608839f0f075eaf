package playlist

// ArtworkIndex answers exact, case-sensitive filename membership questions
// against one listing of the images folder.
type ArtworkIndex struct {
	names map[string]struct{}
}

// NewArtworkIndex indexes the given directory entry names.
func NewArtworkIndex(names []string) *ArtworkIndex {
	idx := &ArtworkIndex{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		idx.names[name] = struct{}{}
	}
	return idx
}

// Has reports whether name was present in the listing.
func (idx *ArtworkIndex) Has(name string) bool {
	_, ok := idx.names[name]
	return ok
}

// Len returns the number of indexed names.
func (idx *ArtworkIndex) Len() int {
	return len(idx.names)
}

// Resolve returns the first of <title>.jpg, <title>.png, <title>.jpeg that is
// present. When none is, it returns fallback and false.
func (idx *ArtworkIndex) Resolve(title, fallback string) (string, bool) {
	for _, ext := range artworkExts {
		candidate := title + ext
		if idx.Has(candidate) {
			return candidate, true
		}
	}
	return fallback, false
}
