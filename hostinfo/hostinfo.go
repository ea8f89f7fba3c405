// Package hostinfo detects the current machine's system and
// architecture spelling in the vocabularies the relinfo package
// validates against, so its output can be passed straight to
// relinfo.GenerateInfo.
package hostinfo

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// systemNames maps runtime.GOOS to the supported system vocabulary.
var systemNames = map[string]string{
	"windows": "windows",
	"linux":   "linux",
	"freebsd": "freebsd",
	"darwin":  "macos",
}

// kernelArchNames maps uname -m style tokens, as reported by the
// kernel, to architecture names.
var kernelArchNames = map[string]string{
	"x86_64":  "x86_64",
	"amd64":   "x86_64",
	"i686":    "i686",
	"i386":    "i686",
	"x86":     "i686",
	"aarch64": "ARMv8",
	"arm64":   "ARMv8",
	"armv8l":  "ARMv8",
	"armv7l":  "ARMv7",
	"armv6l":  "ARMv7",
}

// goArchNames maps runtime.GOARCH to architecture names, used when the
// kernel cannot be asked.
var goArchNames = map[string]string{
	"amd64": "x86_64",
	"386":   "i686",
	"arm64": "ARMv8",
	"arm":   "ARMv7",
}

// Detect returns the current host's system and architecture names.
//
// The system comes from runtime.GOOS. The architecture is taken from
// the kernel's reported machine type where possible, because GOARCH
// cannot distinguish e.g. an ARMv7 userland on an ARMv8 kernel the way
// uname can; when kernel inspection fails the GOARCH mapping is used
// instead. Context cancellation is a hard failure.
func Detect(ctx context.Context) (system, architecture string, err error) {
	system, ok := systemNames[runtime.GOOS]
	if !ok {
		return "", "", fmt.Errorf("unsupported system: %s", runtime.GOOS)
	}

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return "", "", fmt.Errorf("host detection cancelled: %w", ctx.Err())
		}
		slog.Debug("kernel arch lookup failed, falling back to GOARCH",
			"goarch", runtime.GOARCH, "error", err)
	} else if arch, ok := kernelArchNames[info.KernelArch]; ok {
		return system, arch, nil
	}

	architecture, ok = goArchNames[runtime.GOARCH]
	if !ok {
		return "", "", fmt.Errorf("unsupported architecture: %s", runtime.GOARCH)
	}
	return system, architecture, nil
}
