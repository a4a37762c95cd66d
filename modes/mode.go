package modes

// Mode selects between hermetic development runs and production runs.
type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// Hermetic reports whether configuration files and scripts found on the
// host must be ignored.
func (m Mode) Hermetic() bool {
	return m != ModeProduction
}
