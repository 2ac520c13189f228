package semverbump

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Options configures a single bump.
type Options struct {
	// VersionFile is the header to read and rewrite. Defaults to DefaultVersionFile.
	VersionFile string

	// CommitMessage is classified to pick the bump type. When blank the
	// message comes from CommitSource.
	CommitMessage string

	// CommitSource is consulted when CommitMessage is blank. Defaults to a
	// GitCommitSource for RepoDir.
	CommitSource CommitSource

	// RepoDir is the working directory of the default CommitSource.
	RepoDir string

	// BumpFiles are companion files whose version declaration is set to the
	// new version after the header is written.
	BumpFiles []string
}

// BumpMeta holds metadata about a bump.
type BumpMeta struct {
	CommitMessage string           `json:"commitMessage" yaml:"commitMessage"`
	OldVersion    string           `json:"oldVersion" yaml:"oldVersion"`
	NewVersion    string           `json:"newVersion" yaml:"newVersion"`
	BumpType      BumpType         `json:"bumpType" yaml:"bumpType"`
	VersionFile   string           `json:"versionFile" yaml:"versionFile"`
	UpdatedFiles  []string         `json:"updatedFiles,omitempty" yaml:"updatedFiles,omitempty"`
	Companions    []CompanionMatch `json:"companions,omitempty" yaml:"companions,omitempty"`
	DryRun        bool             `json:"dryRun" yaml:"dryRun"`
}

type plan struct {
	meta    BumpMeta
	current Version
	next    Version
}

func (o Options) versionFile() string {
	if o.VersionFile == "" {
		return DefaultVersionFile
	}
	return o.VersionFile
}

func (o Options) commitSource() CommitSource {
	if o.CommitSource != nil {
		return o.CommitSource
	}
	dir := o.RepoDir
	if dir == "" {
		dir = "."
	}
	return NewGitCommitSource(dir)
}

// resolveCommitMessage returns the explicit message, or the last commit
// subject when none was given. It fails only when both are blank.
func resolveCommitMessage(ctx context.Context, opts Options) (string, error) {
	msg := strings.TrimSpace(opts.CommitMessage)
	if msg == "" {
		msg = strings.TrimSpace(commitSubjectOrEmpty(ctx, opts.commitSource()))
	}
	if msg == "" {
		return "", ErrNoCommitMessage
	}
	return msg, nil
}

func makePlan(ctx context.Context, opts Options) (plan, error) {
	var p plan
	p.meta.VersionFile = opts.versionFile()

	msg, err := resolveCommitMessage(ctx, opts)
	if err != nil {
		return p, err
	}
	p.meta.CommitMessage = msg

	p.current, err = ReadVersion(p.meta.VersionFile)
	if err != nil {
		return p, err
	}
	p.meta.OldVersion = p.current.String()

	p.meta.BumpType = Classify(msg)

	p.next, err = Bump(p.current, p.meta.BumpType)
	if err != nil {
		return p, err
	}
	if err := p.next.Validate(); err != nil {
		return p, err
	}
	if p.next.Compare(p.current) <= 0 {
		return p, fmt.Errorf("%w: %s -> %s", ErrVersionNotIncreased, p.current, p.next)
	}
	p.meta.NewVersion = p.next.String()

	slog.Debug("planned version bump",
		"versionFile", p.meta.VersionFile,
		"bumpType", p.meta.BumpType,
		"old", p.meta.OldVersion,
		"new", p.meta.NewVersion)
	return p, nil
}

// Run classifies the commit message, bumps the version read from the version
// file and rewrites it, then updates any companion files. Nothing is written
// when no commit message can be determined.
//
// A companion file that cannot be bumped is skipped with a warning.
func Run(ctx context.Context, opts Options) (BumpMeta, error) {
	p, err := makePlan(ctx, opts)
	if err != nil {
		return p.meta, err
	}

	written, err := WriteVersion(p.meta.VersionFile, p.next)
	if err != nil {
		return p.meta, err
	}
	p.meta.NewVersion = written
	p.meta.UpdatedFiles = append(p.meta.UpdatedFiles, p.meta.VersionFile)

	for _, bf := range opts.BumpFiles {
		m, err := BumpCompanionFile(bf, p.next)
		if err != nil {
			slog.Warn("failed to bump companion file", "path", bf, "error", err)
			continue
		}
		p.meta.Companions = append(p.meta.Companions, m)
		p.meta.UpdatedFiles = append(p.meta.UpdatedFiles, bf)
	}

	slog.Info("version bumped", "old", p.meta.OldVersion, "new", p.meta.NewVersion, "bumpType", p.meta.BumpType)
	return p.meta, nil
}

// DryRun computes the same BumpMeta as Run without writing any file.
// UpdatedFiles lists the version file and every companion file that exists
// and holds a version declaration.
func DryRun(ctx context.Context, opts Options) (BumpMeta, error) {
	p, err := makePlan(ctx, opts)
	if err != nil {
		return p.meta, err
	}
	p.meta.DryRun = true
	p.meta.UpdatedFiles = []string{p.meta.VersionFile}

	for _, bf := range opts.BumpFiles {
		if _, err := os.Stat(bf); err != nil {
			slog.Warn("companion file not accessible", "path", bf, "error", err)
			continue
		}
		m, err := FindCompanionVersion(bf)
		if err != nil {
			slog.Warn("companion file has no version", "path", bf, "error", err)
			continue
		}
		p.meta.Companions = append(p.meta.Companions, m)
		p.meta.UpdatedFiles = append(p.meta.UpdatedFiles, bf)
	}
	return p.meta, nil
}
