package port

// SourceScanner resolves command line inputs to conversion sources.
type SourceScanner interface {
	// Expand resolves an input argument to source files. A directory yields
	// the supported image files directly inside it, any other path passes
	// through unchanged.
	Expand(path string) ([]string, error)
}
