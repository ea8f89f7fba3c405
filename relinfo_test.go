package relinfo

import (
	"errors"
	"maps"
	"testing"
)

// TestGenerateInfoWindows checks the full catalog for a windows/x86_64
// release with a status suffix.
func TestGenerateInfoWindows(t *testing.T) {
	info, err := GenerateInfo("v1.2.3-beta", "windows", "x86_64", nil)
	if err != nil {
		t.Fatalf("GenerateInfo() error = %v, want nil", err)
	}

	want := map[string]string{
		"system": "windows",
		"System": "Windows",
		"SYSTEM": "WINDOWS",

		"sys": "winnt",
		"Sys": "Winnt",
		"SYS": "WINNT",

		"os": "win",
		"Os": "Win",
		"OS": "WIN",

		"architecture": "x86_64",

		"arch": "x64",
		"Arch": "X64",
		"ARCH": "X64",

		"osarch": "win64",
		"Osarch": "Win64",
		"OSarch": "WIN64",

		"bit":       "64",
		"extension": "exe",

		"version":        "v1.2.3-beta",
		"major_version":  "1",
		"minor_version":  "1.2",
		"patch_version":  "1.2.3",
		"vmajor_version": "v1",
		"vminor_version": "v1.2",
		"vpatch_version": "v1.2.3",
		"Vmajor_version": "V1",
		"Vminor_version": "V1.2",
		"Vpatch_version": "V1.2.3",
	}

	if len(info) != len(want) {
		t.Errorf("GenerateInfo() returned %d fields, want %d", len(info), len(want))
	}
	for key, wantValue := range want {
		got, ok := info[key]
		if !ok {
			t.Errorf("GenerateInfo() missing field %q", key)
			continue
		}
		if got != wantValue {
			t.Errorf("GenerateInfo()[%q] = %q, want %q", key, got, wantValue)
		}
	}
}

// TestGenerateInfoLinuxARM checks the special-cased combined
// identifier and bit width for an ARM release.
func TestGenerateInfoLinuxARM(t *testing.T) {
	info, err := GenerateInfo("v1.2.3", "linux", "ARMv8", nil)
	if err != nil {
		t.Fatalf("GenerateInfo() error = %v, want nil", err)
	}

	want := map[string]string{
		"sys":       "linux",
		"os":        "linux",
		"arch":      "aarch64",
		"Arch":      "Aarch64",
		"ARCH":      "AARCH64",
		"osarch":    "linux-aarch64",
		"Osarch":    "Linux-aarch64",
		"OSarch":    "LINUX-AARCH64",
		"bit":       "64",
		"extension": "tar.gz",
	}
	for key, wantValue := range want {
		if got := info[key]; got != wantValue {
			t.Errorf("GenerateInfo()[%q] = %q, want %q", key, got, wantValue)
		}
	}
}

// TestGenerateInfoUnlistedCombination checks that an os-arch pair with
// no combined-table entry falls through to the joined default.
func TestGenerateInfoUnlistedCombination(t *testing.T) {
	info, err := GenerateInfo("v1.0.0", "freebsd", "x86_64", nil)
	if err != nil {
		t.Fatalf("GenerateInfo() error = %v, want nil", err)
	}

	want := map[string]string{
		"osarch":    "freebsd-x86_64",
		"Osarch":    "Freebsd-x86_64",
		"OSarch":    "FREEBSD-X86_64",
		"extension": "tar.gz",
	}
	for key, wantValue := range want {
		if got := info[key]; got != wantValue {
			t.Errorf("GenerateInfo()[%q] = %q, want %q", key, got, wantValue)
		}
	}
}

// TestGenerateInfoSpecialVersion checks that special version names
// flow through every version field unchanged.
func TestGenerateInfoSpecialVersion(t *testing.T) {
	info, err := GenerateInfo("latest", "linux", "x86_64", nil)
	if err != nil {
		t.Fatalf("GenerateInfo() error = %v, want nil", err)
	}

	want := map[string]string{
		"version":        "latest",
		"major_version":  "latest",
		"minor_version":  "latest",
		"patch_version":  "latest",
		"vmajor_version": "latest",
		"Vmajor_version": "Latest",
	}
	for key, wantValue := range want {
		if got := info[key]; got != wantValue {
			t.Errorf("GenerateInfo()[%q] = %q, want %q", key, got, wantValue)
		}
	}
}

// TestGenerateInfoAllSystems checks that every supported system
// produces the full catalog with some valid architecture.
func TestGenerateInfoAllSystems(t *testing.T) {
	for _, system := range []string{"windows", "linux", "freebsd", "macos"} {
		info, err := GenerateInfo("v2.0.1", system, "x86_64", nil)
		if err != nil {
			t.Errorf("GenerateInfo(v2.0.1, %s, x86_64) error = %v, want nil", system, err)
			continue
		}
		if got := len(info); got != 28 {
			t.Errorf("GenerateInfo(v2.0.1, %s, x86_64) returned %d fields, want 28", system, got)
		}
	}
}

// TestGenerateInfoInvalidInputs checks that each bad input aborts the
// call with a ValidationError naming the right field.
func TestGenerateInfoInvalidInputs(t *testing.T) {
	tests := []struct {
		name         string
		version      string
		system       string
		architecture string
		wantField    string
	}{
		{"unknown system", "v1.0.0", "beos", "x86_64", "system"},
		{"cased system", "v1.0.0", "Windows", "x86_64", "system"},
		{"unknown architecture", "v1.0.0", "linux", "sparc", "architecture"},
		{"short arch instead of long", "v1.0.0", "linux", "x64", "architecture"},
		{"version without v", "1.0.0", "linux", "x86_64", "version"},
		{"version missing patch", "v1.0", "linux", "x86_64", "version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := GenerateInfo(tt.version, tt.system, tt.architecture, nil)
			if err == nil {
				t.Fatal("GenerateInfo() error = nil, want ValidationError")
			}
			if info != nil {
				t.Error("GenerateInfo() returned a partial mapping alongside an error")
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("GenerateInfo() error type = %T, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

// TestGenerateInfoExtras checks that extra fields are merged in and
// that a name collision favors the caller's value.
func TestGenerateInfoExtras(t *testing.T) {
	extra := map[string]string{
		"project": "julia",
		"os":      "custom-os",
	}
	info, err := GenerateInfo("v1.2.3", "linux", "x86_64", extra)
	if err != nil {
		t.Fatalf("GenerateInfo() error = %v, want nil", err)
	}

	if got := info["project"]; got != "julia" {
		t.Errorf(`info["project"] = %q, want %q`, got, "julia")
	}
	if got := info["os"]; got != "custom-os" {
		t.Errorf(`info["os"] = %q, want caller override %q`, got, "custom-os")
	}
}

// TestGenerateInfoIdempotent checks that repeated calls with the same
// inputs yield identical mappings.
func TestGenerateInfoIdempotent(t *testing.T) {
	first, err := GenerateInfo("v1.2.3-rc2", "macos", "x86_64", map[string]string{"k": "v"})
	if err != nil {
		t.Fatalf("GenerateInfo() error = %v, want nil", err)
	}
	second, err := GenerateInfo("v1.2.3-rc2", "macos", "x86_64", map[string]string{"k": "v"})
	if err != nil {
		t.Fatalf("GenerateInfo() error = %v, want nil", err)
	}

	if !maps.Equal(first, second) {
		t.Errorf("repeated GenerateInfo() calls differ:\n%v\n%v", first, second)
	}
}
