package types

import (
	"runtime"
	"strings"

	"github.com/arthur-debert/dotinstall/pkg/errors"
)

// Platform is the operating system family the installer targets
type Platform int

const (
	PlatformOther Platform = iota
	PlatformLinux
	PlatformMacOS
)

// String returns the config key used for platform-specific file lists
func (p Platform) String() string {
	switch p {
	case PlatformLinux:
		return "linux"
	case PlatformMacOS:
		return "macos"
	default:
		return "other"
	}
}

// DetectPlatform maps a GOOS value to a Platform
func DetectPlatform(goos string) Platform {
	switch goos {
	case "linux":
		return PlatformLinux
	case "darwin":
		return PlatformMacOS
	default:
		return PlatformOther
	}
}

// CurrentPlatform is DetectPlatform for the running binary
func CurrentPlatform() Platform {
	return DetectPlatform(runtime.GOOS)
}

// ParsePlatform accepts the String() forms plus "darwin" and "mac".
// An empty value means the running platform.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return CurrentPlatform(), nil
	case "linux":
		return PlatformLinux, nil
	case "macos", "darwin", "mac":
		return PlatformMacOS, nil
	case "other":
		return PlatformOther, nil
	default:
		return PlatformOther, errors.Newf(errors.ErrInvalidInput, "unknown platform %q (want linux, macos or other)", s)
	}
}
