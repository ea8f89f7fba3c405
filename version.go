package relinfo

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrNoVersionsProvided is returned by LatestVersion when there is
// nothing to pick from.
var ErrNoVersionsProvided = errors.New("no versions provided")

// stripV removes the leading "v" from a version string. Special
// version names pass through unchanged.
func stripV(version string) string {
	return strings.TrimLeft(version, "v")
}

// majorPart returns everything before the first dot ("v1.2.3-beta" -> "v1").
func majorPart(version string) string {
	return strings.SplitN(version, ".", 2)[0]
}

// minorPart returns the first two dot-separated segments
// ("v1.2.3-beta" -> "v1.2").
func minorPart(version string) string {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ".")
}

// patchPart returns everything before the status suffix
// ("v1.2.3-beta" -> "v1.2.3").
func patchPart(version string) string {
	return strings.SplitN(version, "-", 2)[0]
}

// CompareVersions compares two release versions under semver ordering
// and returns -1, 0 or 1. The leading "v" spelling used throughout
// this module is accepted.
func CompareVersions(a, b string) (int, error) {
	va, err := semver.NewVersion(a)
	if err != nil {
		return 0, fmt.Errorf("failed to parse version %q: %w", a, err)
	}
	vb, err := semver.NewVersion(b)
	if err != nil {
		return 0, fmt.Errorf("failed to parse version %q: %w", b, err)
	}
	return va.Compare(vb), nil
}

// SortVersions returns the parseable versions sorted in ascending
// semver order. Strings that do not parse as a version, including the
// special names, are skipped.
func SortVersions(versions []string) []string {
	type parsed struct {
		raw string
		ver *semver.Version
	}

	valid := make([]parsed, 0, len(versions))
	for _, raw := range versions {
		if ver, err := semver.NewVersion(raw); err == nil {
			valid = append(valid, parsed{raw: raw, ver: ver})
		}
	}

	slices.SortStableFunc(valid, func(a, b parsed) int {
		return a.ver.Compare(b.ver)
	})

	sorted := make([]string, len(valid))
	for i, p := range valid {
		sorted[i] = p.raw
	}
	return sorted
}

// LatestVersion returns the newest parseable version in the list.
func LatestVersion(versions []string) (string, error) {
	if len(versions) == 0 {
		return "", ErrNoVersionsProvided
	}

	sorted := SortVersions(versions)
	if len(sorted) == 0 {
		return "", fmt.Errorf("no parseable versions among %d candidates", len(versions))
	}
	return sorted[len(sorted)-1], nil
}
