//go:build !logcore_release

package logcore

// verboseEnabled keeps trace and debug output in regular builds
const verboseEnabled = true
