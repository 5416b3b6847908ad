package health

// CorpusChecker reports the size of the loaded corpus index.
type CorpusChecker interface {
	Len() int
}
