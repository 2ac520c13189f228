package semverbump

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// DefaultVersionFile is the header path used when none is configured.
const DefaultVersionFile = "src/version.h"

var (
	majorPattern = regexp.MustCompile(`#define\s+VERSION_MAJOR\s+(\d+)`)
	minorPattern = regexp.MustCompile(`#define\s+VERSION_MINOR\s+(\d+)`)
	patchPattern = regexp.MustCompile(`#define\s+VERSION_PATCH\s+(\d+)`)
)

// Per-field fallbacks for a header missing a definition. Major falls back to 1,
// matching the version assumed for a project that has no header yet.
const (
	fallbackMajor = 1
	fallbackMinor = 0
	fallbackPatch = 0
)

const headerTemplate = `#ifndef VERSION_H
#define VERSION_H

// Semantic Versioning (MAJOR.MINOR.PATCH)
#define VERSION_MAJOR %d
#define VERSION_MINOR %d
#define VERSION_PATCH %d

// Build version string
#define VERSION_STRING "%s"

// Helper macros for version operations
#define MAKE_VERSION_STRING(major, minor, patch) #major "." #minor "." #patch
#define VERSION_STRING_FROM_NUMBERS(major, minor, patch) MAKE_VERSION_STRING(major, minor, patch)

#endif // VERSION_H
`

// ReadVersion reads the VERSION_MAJOR, VERSION_MINOR and VERSION_PATCH
// definitions from the header at path.
//
// A missing file yields DefaultVersion. A definition that is absent or does
// not fit in an int falls back to 1 for major and 0 for minor and patch; a
// malformed header is never an error. Only a file that exists but cannot be
// read is reported.
func ReadVersion(path string) (Version, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("version file not found, using default", "path", path, "version", DefaultVersion.String())
			return DefaultVersion, nil
		}
		return Version{}, fmt.Errorf("failed to read version file %q: %w", path, err)
	}

	v := Version{
		Major: fieldOrDefault(data, majorPattern, fallbackMajor, "VERSION_MAJOR", path),
		Minor: fieldOrDefault(data, minorPattern, fallbackMinor, "VERSION_MINOR", path),
		Patch: fieldOrDefault(data, patchPattern, fallbackPatch, "VERSION_PATCH", path),
	}
	return v, nil
}

func fieldOrDefault(data []byte, re *regexp.Regexp, fallback int, name, path string) int {
	n, ok := parseField(data, re)
	if !ok {
		slog.Debug("version field missing, using default", "path", path, "field", name, "default", fallback)
		return fallback
	}
	return n
}

// parseField returns the first integer captured by re, and false when there is
// no match or the digits overflow an int.
func parseField(data []byte, re *regexp.Regexp) (int, bool) {
	m := re.FindSubmatch(data)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return 0, false
	}
	return n, true
}

// RenderVersionHeader returns the header contents for v.
func RenderVersionHeader(v Version) string {
	return fmt.Sprintf(headerTemplate, v.Major, v.Minor, v.Patch, v.String())
}

// WriteVersion replaces the header at path with the template for v and
// returns the "major.minor.patch" string it embedded. Prior content is not
// merged. Parent directories are created as needed.
func WriteVersion(path string, v Version) (string, error) {
	if err := v.Validate(); err != nil {
		return "", err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %q: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(RenderVersionHeader(v)), 0644); err != nil {
		return "", fmt.Errorf("failed to write version file %q: %w", path, err)
	}
	return v.String(), nil
}
