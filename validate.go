package relinfo

import (
	"regexp"
	"slices"
)

// versionRegex accepts v<major>.<minor>.<patch> with an optional
// -<status> suffix. It is deliberately anchored at the start only:
// upstream matched version strings by prefix, and the accepted set has
// to stay identical so existing URL templates keep resolving.
var versionRegex = regexp.MustCompile(`^v\d+\.\d+\.\d+(-\w+)?`)

// specialVersionNames are symbolic versions that bypass the pattern check.
var specialVersionNames = []string{"latest", "nightly", "stable"}

// IsVersion reports whether v is a special version name or starts with
// a well-formed v<major>.<minor>.<patch>[-<status>] version.
func IsVersion(v string) bool {
	if slices.Contains(specialVersionNames, v) {
		return true
	}
	return versionRegex.MatchString(v)
}

// IsSystem reports whether system is a supported system name.
func IsSystem(system string) bool {
	return slices.Contains(validSystems, system)
}

// IsOS reports whether os is a supported short os name.
func IsOS(os string) bool {
	return slices.Contains(validOS, os)
}

// IsArchitecture reports whether arch is a supported architecture name.
func IsArchitecture(arch string) bool {
	return slices.Contains(validArchitectures, arch)
}

// IsArch reports whether arch is a supported canonical short
// architecture name.
func IsArch(arch string) bool {
	return slices.Contains(validArchs, arch)
}

// IsValidRelease reports whether a release exists for the given
// version, system and architecture combination. It is a pure
// predicate: callers branch on it and produce their own user-facing
// message, it never returns an error.
func IsValidRelease(version, system, architecture string) bool {
	if system == "windows" && architecture != "i686" && architecture != "x86_64" {
		return false
	}
	if system == "macos" && architecture != "x86_64" {
		return false
	}
	if system == "freebsd" && architecture != "x86_64" {
		return false
	}
	if version == "latest" {
		if architecture != "i686" && architecture != "x86_64" {
			return false
		}
		if system != "windows" && system != "macos" && system != "linux" {
			return false
		}
	}
	return true
}
