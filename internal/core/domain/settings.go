package domain

// Settings holds process-wide switches that survive restarts.
type Settings struct {
	// Maintenance refuses every mutating operation while set.
	Maintenance bool
}
