// Package build holds values stamped into the cmini binary by the linker.
package build

var (
	// Version is the release of cmini, "dev" for local builds.
	Version = "dev"

	// Commit is the revision the binary was built from. Empty when unstamped.
	Commit = ""
)

// Describe returns the version, followed by the short commit when one was stamped.
func Describe() string {
	if Commit == "" {
		return Version
	}
	short := Commit
	if len(short) > 7 {
		short = short[:7]
	}
	return Version + " (" + short + ")"
}
