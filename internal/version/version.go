// internal/version/version.go
package version

// Version is overridden at build time:
//
//	go build -ldflags "-X flowcheck/internal/version.Version=v1.2.3"
var Version = "dev"
