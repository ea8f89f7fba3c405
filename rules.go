package relinfo

// Static rewrite tables and closed vocabularies for release naming.
// Keys and values are load-bearing: they appear verbatim in download
// URLs and filenames, so they are never normalized or derived.

// rulesSys maps a system name to the "sys" alias used by some
// distributions. Systems without an entry keep their own name.
var rulesSys = map[string]string{
	"windows": "winnt",
}

// rulesOS maps a system name to its short "os" alias.
var rulesOS = map[string]string{
	"windows": "win",
}

// rulesArch maps an architecture name to its canonical short form.
var rulesArch = map[string]string{
	"i686":   "x86",
	"x86_64": "x64",
	"ARMv8":  "aarch64",
	"ARMv7":  "armv7l",
}

// rulesOsarch maps "<os>-<architecture>" to the bundle identifier for
// platforms that use a special-cased one. Note the mixed key spelling:
// the Linux entries key on the raw architecture token while the others
// key on the short os name. These are the literal strings upstream
// release archives use.
var rulesOsarch = map[string]string{
	"win-i686":     "win32",
	"win-x86_64":   "win64",
	"macos-x86_64": "mac64",
	"linux-ARMv7":  "linux-armv7l",
	"linux-ARMv8":  "linux-aarch64",
}

// rulesExtension maps a system name to its installer file extension.
var rulesExtension = map[string]string{
	"windows": "exe",
	"linux":   "tar.gz",
	"macos":   "dmg",
	"freebsd": "tar.gz",
}

// rulesBit maps an architecture name to its bit width.
var rulesBit = map[string]string{
	"i686":   "32",
	"x86_64": "64",
	"ARMv8":  "64",
	"ARMv7":  "32",
}

var (
	validSystems       = []string{"windows", "linux", "freebsd", "macos"}
	validOS            = []string{"win", "linux", "freebsd", "macos"}
	validArchitectures = []string{"i686", "x86_64", "ARMv8", "ARMv7"}
	validArchs         = []string{"x86", "x64", "aarch64", "armv7l"}
)
