package link

// Relativizer expresses a file path relative to a working-copy root.
type Relativizer interface {
	// Rel returns target relative to base using the platform's path rules.
	Rel(base, target string) (string, error)
}
