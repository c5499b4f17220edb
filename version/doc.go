// Package version reports the build version of the seqtrace commands.
//
// Version and commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/seqtrace/version.Version=1.0.0" ./cmd/seqtrace
//
// When the commit is not set it falls back to the VCS stamp in the binary's
// build info.
package version
