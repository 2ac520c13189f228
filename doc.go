// Package main implements the semverbump CLI tool.
//
// semverbump reads the current version from a C header (default
// "src/version.h"), decides how far to bump it from a conventional commit
// message and rewrites the header with the new version. When no message is
// given on the command line the subject of the last git commit is used.
//
// Command Usage:
//
//	semverbump [flags] [commit message...]
//
// Flags:
//
//	--version-file, -f: Path to the version header. Also read from
//	                    SEMVERBUMP_VERSION_FILE. (Defaults to "src/version.h")
//	--repo-dir, -C:     Git repository used to look up the last commit subject.
//	                    Also read from SEMVERBUMP_REPO_DIR. (Defaults to ".")
//	--bump-file:        Additional file whose version declaration (package.json
//	                    "version", version = "x.y.z", VERSION=x.y.z) is set to the
//	                    new version. May be repeated. Failures are warnings.
//	--dry-run:          Report the bump without writing any file.
//	--output, -o:       Report format: text (default), json or yaml.
//	--log-level:        Diagnostic log level on stderr. Also read from LOG_LEVEL.
//	--version:          Displays the version of the semverbump CLI and exits.
//
// Bump rules, first match wins, case-insensitive:
//
//	"breaking change:" anywhere, "feat!:" or "fix!:" prefix    major  (2.3.4 -> 3.0.0)
//	"feat:" prefix                                              minor  (1.4.9 -> 1.5.0)
//	"fix:", "docs:", "style:", "refactor:", "test:", "chore:"    patch  (0.9.9 -> 0.9.10)
//	anything else                                               patch
//
// Examples:
//
//	# Bump from the last commit subject
//	semverbump
//
//	# Bump from an explicit message
//	semverbump "feat: add retry support"
//
//	# Keep library.json in step with the header
//	semverbump --version-file include/version.h --bump-file library.json
//
//	# Preview as JSON
//	semverbump --dry-run --output json "fix: null pointer"
//
// Exit status is 0 on success and 1 when no commit message could be
// determined or the bump failed.
//
// For the library API see the "pkg" package.
package main
