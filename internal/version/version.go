// Package version holds the subdispatch release version.
package version

// Version is overridden at build time with -ldflags "-X ...version.Version=v1.2.3".
var Version = "v0.3.0"
