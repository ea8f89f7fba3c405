// Package relinfo computes the flat mapping of substitution variables
// that describes a software release: the version, system and
// architecture names together with every derived spelling and
// abbreviation of them (capitalized, upper-cased, aliased, combined).
// The mapping is meant to be fed into a URL or filename template by an
// external collaborator; this package owns only the naming rules.
package relinfo

import (
	"strings"
	"unicode/utf8"
)

// one adapts a single-string predicate to the variadic ValidateFunc shape.
func one(pred func(string) bool) ValidateFunc {
	return func(args ...string) bool {
		return pred(args[0])
	}
}

// The base naming rules. Cased variants (System, SYS, Osarch, ...) are
// not separate filters: GenerateInfo derives them from these outputs
// with capitalize and strings.ToUpper.
var (
	filterSystem = &NameFilter{Field: "system", Check: "system name", Validate: one(IsSystem)}
	filterSys    = &NameFilter{Field: "system", Check: "system name", Rules: rulesSys, Validate: one(IsSystem)}
	filterOS     = &NameFilter{Field: "system", Check: "system name", Rules: rulesOS, Validate: one(IsSystem)}

	filterArch = &NameFilter{Field: "architecture", Check: "architecture name", Rules: rulesArch, Validate: one(IsArchitecture)}
	filterBit  = &NameFilter{Field: "architecture", Check: "architecture name", Rules: rulesBit, Validate: one(IsArchitecture)}

	filterExtension = &NameFilter{Field: "system", Check: "system name", Rules: rulesExtension, Validate: one(IsSystem)}

	filterOsarch = &NameFilter{
		Field: "os-architecture",
		Check: "os-architecture pair",
		Shape: func(args ...string) string { return args[0] + "-" + args[1] },
		Rules: rulesOsarch,
		Validate: func(args ...string) bool {
			return IsOS(args[0]) && IsArchitecture(args[1])
		},
	}

	filterVersion      = &NameFilter{Field: "version", Check: "version string", Validate: one(IsVersion)}
	filterMajorVersion = &NameFilter{
		Field:    "version",
		Check:    "version string",
		Shape:    func(args ...string) string { return majorPart(stripV(args[0])) },
		Validate: one(IsVersion),
	}
	filterMinorVersion = &NameFilter{
		Field:    "version",
		Check:    "version string",
		Shape:    func(args ...string) string { return minorPart(stripV(args[0])) },
		Validate: one(IsVersion),
	}
	filterPatchVersion = &NameFilter{
		Field:    "version",
		Check:    "version string",
		Shape:    func(args ...string) string { return patchPart(stripV(args[0])) },
		Validate: one(IsVersion),
	}
)

// capitalize upper-cases the first rune and lower-cases the remainder,
// so "linux-aarch64" becomes "Linux-aarch64" and "v1.2.3-beta" becomes
// "V1.2.3-beta". Word-segmented title casing would mangle both.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(s[:size]) + strings.ToLower(s[size:])
}

// GenerateInfo builds the full substitution mapping for a release.
//
// plainVersion is either a special name (latest, nightly, stable) or a
// v<major>.<minor>.<patch>[-<status>] version; system and architecture
// must come from the supported vocabularies. Every key in extra is
// merged into the result last, so a caller-supplied field silently
// replaces a derived one of the same name.
//
// Any input failing validation aborts the call with a
// *ValidationError; no partial mapping is returned.
func GenerateInfo(plainVersion, system, architecture string, extra map[string]string) (map[string]string, error) {
	os, err := filterOS.Apply(system)
	if err != nil {
		return nil, err
	}
	arch, err := filterArch.Apply(architecture)
	if err != nil {
		return nil, err
	}

	system, err = filterSystem.Apply(system)
	if err != nil {
		return nil, err
	}
	sys, err := filterSys.Apply(system)
	if err != nil {
		return nil, err
	}

	osarch, err := filterOsarch.Apply(os, architecture)
	if err != nil {
		return nil, err
	}
	bit, err := filterBit.Apply(architecture)
	if err != nil {
		return nil, err
	}
	extension, err := filterExtension.Apply(system)
	if err != nil {
		return nil, err
	}

	version, err := filterVersion.Apply(plainVersion)
	if err != nil {
		return nil, err
	}
	major, err := filterMajorVersion.Apply(plainVersion)
	if err != nil {
		return nil, err
	}
	minor, err := filterMinorVersion.Apply(plainVersion)
	if err != nil {
		return nil, err
	}
	patch, err := filterPatchVersion.Apply(plainVersion)
	if err != nil {
		return nil, err
	}

	// The v-preserving family is derived from the raw string with no
	// validation of its own; the v-stripped siblings above already
	// vouched for the version.
	vmajor := majorPart(plainVersion)
	vminor := minorPart(plainVersion)
	vpatch := patchPart(plainVersion)

	info := map[string]string{
		"system": system,
		"System": capitalize(system),
		"SYSTEM": strings.ToUpper(system),

		"sys": sys,
		"Sys": capitalize(sys),
		"SYS": strings.ToUpper(sys),

		"os": os,
		"Os": capitalize(os),
		"OS": strings.ToUpper(os),

		"architecture": architecture,

		"arch": arch,
		"Arch": capitalize(arch),
		"ARCH": strings.ToUpper(arch),

		"osarch": osarch,
		"Osarch": capitalize(osarch),
		"OSarch": strings.ToUpper(osarch),

		"bit":       bit,
		"extension": extension,

		"version":        version,
		"major_version":  major,
		"minor_version":  minor,
		"patch_version":  patch,
		"vmajor_version": vmajor,
		"vminor_version": vminor,
		"vpatch_version": vpatch,
		"Vmajor_version": capitalize(vmajor),
		"Vminor_version": capitalize(vminor),
		"Vpatch_version": capitalize(vpatch),
	}

	for key, value := range extra {
		info[key] = value
	}
	return info, nil
}
