// Package binary locates and invokes the external todozi (tdz) binary.
//
// The binary's install location is unknown across environments: package
// manager installs, cargo installs, local release builds and custom
// prefixes all place it differently. Resolution is an ordered probe over
// a fixed candidate list, most-likely-correct first, with the bare name
// last so the ambient PATH gets the final say.
package binary

import (
	"os"
	"path/filepath"
	"runtime"
)

// Name is the external binary's command name.
const Name = "tdz"

// Candidates returns the ordered probe list. A configured path, when
// non-empty, is tried before everything else. Order is significant:
// the first candidate to run successfully wins.
func Candidates(configured string) []string {
	var list []string
	if configured != "" {
		list = append(list, configured)
	}

	list = append(list,
		"/usr/local/bin/"+Name,
		"/opt/homebrew/bin/"+Name,
		"/usr/bin/"+Name,
	)

	if home, err := os.UserHomeDir(); err == nil {
		list = append(list, filepath.Join(home, ".cargo", "bin", Name))
	}

	// Project-relative release builds, both platform naming conventions.
	list = append(list,
		filepath.Join("target", "release", Name),
		filepath.Join("target", "release", Name+".exe"),
	)

	// Bare name: defer to the ambient search path.
	list = append(list, Name)

	return list
}

// watchable reports whether a candidate is a concrete filesystem path
// (as opposed to a bare name resolved through PATH).
func watchable(candidate string) bool {
	if candidate == Name || candidate == Name+".exe" {
		return false
	}
	if runtime.GOOS == "windows" && filepath.VolumeName(candidate) != "" {
		return true
	}
	return filepath.Dir(candidate) != "."
}
