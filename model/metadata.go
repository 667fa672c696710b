package model

// CompositionMetadata is what the corpus metadata table knows about a file.
type CompositionMetadata struct {
	Composer string
	Title    string
	Year     uint
}
