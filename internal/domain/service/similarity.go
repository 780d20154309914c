package service

// Similarity scores how alike two normalized strings are, from 0 (unrelated) to 100 (identical).
type Similarity interface {
	Score(a, b string) int
}

// SimilarityFunc adapts a plain function to the Similarity interface.
type SimilarityFunc func(a, b string) int

// Score calls f(a, b).
func (f SimilarityFunc) Score(a, b string) int {
	return f(a, b)
}
