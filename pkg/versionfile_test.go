package semverbump

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestReadVersionMissingFile(t *testing.T) {
	got, err := ReadVersion(filepath.Join(t.TempDir(), "src", "version.h"))
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 1, Minor: 0, Patch: 0}, got)
}

func TestReadVersion(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Version
	}{
		{
			name: "full header",
			content: `#ifndef VERSION_H
#define VERSION_H
#define VERSION_MAJOR 2
#define VERSION_MINOR 3
#define VERSION_PATCH 4
#endif
`,
			want: Version{2, 3, 4},
		},
		{
			name:    "only minor keeps major fallback of one",
			content: "#define VERSION_MINOR 5\n",
			want:    Version{1, 5, 0},
		},
		{
			name:    "explicit zero major",
			content: "#define VERSION_MAJOR 0\n#define VERSION_MINOR 9\n#define VERSION_PATCH 9\n",
			want:    Version{0, 9, 9},
		},
		{
			name:    "order independent with tabs",
			content: "#define\tVERSION_PATCH\t7\n#define  VERSION_MAJOR   3\n",
			want:    Version{3, 0, 7},
		},
		{
			name:    "empty file",
			content: "",
			want:    Version{1, 0, 0},
		},
		{
			name:    "garbage",
			content: "not a header at all\nVERSION_MAJOR=9\n",
			want:    Version{1, 0, 0},
		},
		{
			name:    "non numeric value falls back",
			content: "#define VERSION_MAJOR X\n#define VERSION_PATCH 2\n",
			want:    Version{1, 0, 2},
		},
		{
			name:    "overflowing value falls back",
			content: "#define VERSION_MINOR 99999999999999999999999\n",
			want:    Version{1, 0, 0},
		},
		{
			name:    "first definition wins",
			content: "#define VERSION_MAJOR 4\n#define VERSION_MAJOR 5\n",
			want:    Version{4, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "version.h")
			writeFile(t, path, tt.content)

			got, err := ReadVersion(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadVersionUnreadable(t *testing.T) {
	// A directory at the version path exists but cannot be read as a file.
	_, err := ReadVersion(t.TempDir())
	assert.Error(t, err)
}

func TestWriteVersionTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "version.h")

	s, err := WriteVersion(path, Version{3, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", s)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `#ifndef VERSION_H
#define VERSION_H

// Semantic Versioning (MAJOR.MINOR.PATCH)
#define VERSION_MAJOR 3
#define VERSION_MINOR 0
#define VERSION_PATCH 0

// Build version string
#define VERSION_STRING "3.0.0"

// Helper macros for version operations
#define MAKE_VERSION_STRING(major, minor, patch) #major "." #minor "." #patch
#define VERSION_STRING_FROM_NUMBERS(major, minor, patch) MAKE_VERSION_STRING(major, minor, patch)

#endif // VERSION_H
`
	assert.Equal(t, want, string(data))
}

func TestWriteVersionOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.h")
	writeFile(t, path, "#define VERSION_MAJOR 7\n#define CUSTOM_FLAG 1\n")

	_, err := WriteVersion(path, Version{7, 0, 1})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "CUSTOM_FLAG")
	assert.Equal(t, RenderVersionHeader(Version{7, 0, 1}), string(data))
}

func TestWriteVersionRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.h")

	_, err := WriteVersion(path, Version{Major: -1})
	assert.ErrorIs(t, err, ErrInvalidVersion)
	assert.NoFileExists(t, path)
}

func TestWriteVersionUnwritable(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	dir := filepath.Join(t.TempDir(), "ro")
	require.NoError(t, os.MkdirAll(dir, 0555))

	_, err := WriteVersion(filepath.Join(dir, "version.h"), Version{1, 0, 1})
	assert.Error(t, err)
}

func TestVersionRoundTrip(t *testing.T) {
	for _, v := range []Version{{0, 0, 0}, {0, 9, 10}, {1, 0, 0}, {3, 14, 159}, {100, 0, 7}} {
		t.Run(v.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "version.h")
			_, err := WriteVersion(path, v)
			require.NoError(t, err)

			got, err := ReadVersion(path)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		})
	}
}
