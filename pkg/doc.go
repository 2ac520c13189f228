// Package semverbump derives a semantic version bump from a commit message
// and applies it to a C version header.
//
// It provides functionalities for:
//   - Reading VERSION_MAJOR, VERSION_MINOR and VERSION_PATCH from a header,
//     falling back to 1.0.0 when the header does not exist.
//   - Classifying a commit message by its conventional commit prefix into a
//     major, minor or patch bump.
//   - Computing the bumped version and rewriting the header from a fixed template.
//   - Reading the last commit subject from git when no message is supplied.
//   - Updating the version declaration in companion files such as package.json.
//
// Usage Example:
//
//	meta, err := semverbump.Run(ctx, semverbump.Options{
//	    VersionFile:   "src/version.h",
//	    CommitMessage: "feat: add retry support",
//	})
//	if err != nil {
//	    log.Fatalf("version bump failed: %v", err)
//	}
//	log.Printf("bumped %s -> %s", meta.OldVersion, meta.NewVersion)
package semverbump
