package minikanren

// Version is the current version of this package.
const Version = "0.1.0"

// VersionInfo provides detailed version information, including which
// search scheduler this build uses: callers embedding this engine in a
// larger system want to know that at a glance without reading stream.go.
type VersionInfo struct {
	Version     string `json:"version"`
	GoVersion   string `json:"go_version"`
	StreamModel string `json:"stream_model"`
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetVersionInfo returns detailed version information.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:     Version,
		GoVersion:   "1.23+",
		StreamModel: "suspension-interleaved (single-threaded, fair)",
	}
}
