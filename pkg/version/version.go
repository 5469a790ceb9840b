// Package version exposes the dttb release version.
package version

// Version is overridable at build time:
//
//	go build -ldflags "-X github.com/murzabaevb/dttb/pkg/version.Version=..."
var Version = "0.1.0"
