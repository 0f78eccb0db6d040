//go:build logcore_release

package logcore

// verboseEnabled strips trace and debug output; the compiler removes the guarded calls
const verboseEnabled = false
