package semverbump

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// versionPattern locates a project version declaration on a single line.
// Every pattern captures four groups: the text before the version, an
// optional "v" prefix, the version itself and the text after it.
type versionPattern struct {
	re   *regexp.Regexp
	name string
}

const semverExpr = `(\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?)`

// Ordered from most to least specific.
var companionPatterns = []versionPattern{
	{
		re:   regexp.MustCompile(`^(\s*"version"\s*:\s*")(v?)` + semverExpr + `(")`),
		name: "JSON version field",
	},
	{
		re:   regexp.MustCompile(`^(\s*version\s*=\s*")(v?)` + semverExpr + `(")`),
		name: "TOML version field",
	},
	{
		re:   regexp.MustCompile(`(?i)^(\s*(?:export\s+)?version\s*[:=]\s*["']?)(v?)` + semverExpr + `(["']?)`),
		name: "version assignment",
	},
}

// CompanionMatch is the version declaration found in a companion file.
type CompanionMatch struct {
	Path    string `json:"path" yaml:"path"`
	Line    int    `json:"line" yaml:"line"`
	Version string `json:"version" yaml:"version"`
	Kind    string `json:"kind" yaml:"kind"`

	prefix string
	vMark  string
	suffix string
	start  int
	end    int
}

// FindCompanionVersion returns the first project version declaration in the
// file at path, such as the top-level "version" of a package.json, a
// version = "x.y.z" line or a VERSION=x.y.z assignment. Earlier lines win;
// within a line the more specific pattern wins.
func FindCompanionVersion(path string) (CompanionMatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CompanionMatch{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	lines := strings.Split(string(data), "\n")
	m, ok := findInLines(lines)
	if !ok {
		return CompanionMatch{}, fmt.Errorf("%w in %s", ErrNoVersionFound, path)
	}
	m.Path = path
	return m, nil
}

func findInLines(lines []string) (CompanionMatch, bool) {
	for i, line := range lines {
		for _, p := range companionPatterns {
			idx := p.re.FindStringSubmatchIndex(line)
			if idx == nil {
				continue
			}
			return CompanionMatch{
				Line:    i + 1,
				Version: line[idx[6]:idx[7]],
				Kind:    p.name,
				prefix:  line[idx[2]:idx[3]],
				vMark:   line[idx[4]:idx[5]],
				suffix:  line[idx[8]:idx[9]],
				start:   idx[0],
				end:     idx[1],
			}, true
		}
	}
	return CompanionMatch{}, false
}

// BumpCompanionFile rewrites the version declaration found by
// FindCompanionVersion to v, keeping a "v" prefix if the file used one.
// The rest of the file is left untouched.
func BumpCompanionFile(path string, v Version) (CompanionMatch, error) {
	if err := v.Validate(); err != nil {
		return CompanionMatch{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return CompanionMatch{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return CompanionMatch{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	m, ok := findInLines(lines)
	if !ok {
		return CompanionMatch{}, fmt.Errorf("%w in %s", ErrNoVersionFound, path)
	}
	m.Path = path

	line := lines[m.Line-1]
	lines[m.Line-1] = line[:m.start] + m.prefix + m.vMark + v.String() + m.suffix + line[m.end:]

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), info.Mode().Perm()); err != nil {
		return CompanionMatch{}, fmt.Errorf("writing file %s: %w", path, err)
	}
	return m, nil
}
