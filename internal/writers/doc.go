// Package writers persists rendered artifacts.
//
// Design:
//   - Files are replaced atomically: written to a sibling temp file, synced,
//     then renamed over the target. A failed run leaves no partial output.
//   - Stage/Commit split the two steps so a run producing several artifacts
//     writes all temp files before any of them becomes visible.
//   - "-" sends the artifact to stdout; a closed downstream pipe is not an error
//     for the caller to report (see IsBrokenPipe).
package writers
