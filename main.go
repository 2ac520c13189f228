// Package main implements a CLI tool that bumps the semantic version in a C
// version header based on a conventional commit message.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/bcomnes/semverbump/internal/logging"
	semverbump "github.com/bcomnes/semverbump/pkg"
)

const name = "semverbump"

const noCommitMessage = "No commit message found. Unable to determine version bump."

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "bump a C version header from a conventional commit message",
		Version: Version,
		UsageText: `semverbump [options] [commit message...]

Reads VERSION_MAJOR, VERSION_MINOR and VERSION_PATCH from the version header
(default: src/version.h), picks a bump from the commit message and rewrites the
header. Without a commit message the subject of the last git commit is used.

  BREAKING CHANGE: / feat!: / fix!:   major
  feat:                               minor
  anything else                       patch

Examples:
  semverbump "feat: add retry support"
  semverbump --version-file include/version.h --bump-file library.json
  semverbump --dry-run --output json`,
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "version-file",
				Aliases: []string{"f"},
				Value:   semverbump.DefaultVersionFile,
				Usage:   "Path to the C header holding the version definitions",
				Sources: cli.EnvVars("SEMVERBUMP_VERSION_FILE"),
			},
			&cli.StringFlag{
				Name:    "repo-dir",
				Aliases: []string{"C"},
				Value:   ".",
				Usage:   "Git repository to read the last commit subject from",
				Sources: cli.EnvVars("SEMVERBUMP_REPO_DIR"),
			},
			&cli.StringSliceFlag{
				Name:  "bump-file",
				Usage: "Additional file whose version declaration is set to the new version. May be repeated.",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Report the bump without modifying any file",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   outputText,
				Usage:   "Report format: text, json or yaml",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Diagnostic log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefault(name, Version, cmd.String("log-level"))
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := strings.ToLower(cmd.String("output"))
			switch format {
			case outputText, outputJSON, outputYAML:
			default:
				return fmt.Errorf("unknown output format: %q", format)
			}

			// The message is free text; words starting with "-" are part of it.
			args := cmd.Args().Slice()

			opts := semverbump.Options{
				VersionFile:   cmd.String("version-file"),
				RepoDir:       cmd.String("repo-dir"),
				BumpFiles:     cmd.StringSlice("bump-file"),
				CommitMessage: strings.Join(args, " "),
			}

			var meta semverbump.BumpMeta
			var err error
			if cmd.Bool("dry-run") {
				meta, err = semverbump.DryRun(ctx, opts)
			} else {
				meta, err = semverbump.Run(ctx, opts)
			}
			if err != nil {
				return err
			}
			return report(stdout, format, meta)
		},
	}
}

func report(w io.Writer, format string, meta semverbump.BumpMeta) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(meta); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "Commit message: %s\n", meta.CommitMessage)
	fmt.Fprintf(w, "Current version: %s\n", meta.OldVersion)
	fmt.Fprintf(w, "Bump type: %s\n", meta.BumpType)
	fmt.Fprintf(w, "New version: %s\n", meta.NewVersion)

	if meta.DryRun {
		fmt.Fprintln(w, "Dry run: no files were modified.")
		fmt.Fprintln(w, "Files that would be updated:")
	} else {
		fmt.Fprintln(w, "Files updated:")
	}
	for _, f := range meta.UpdatedFiles {
		fmt.Fprintf(w, "  %s\n", f)
	}
	return nil
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := newCommand(stdout, stderr).Run(ctx, args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, semverbump.ErrNoCommitMessage):
		fmt.Fprintln(stdout, noCommitMessage)
		return 1
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
}

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}
