package handler

import (
	"net/http"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Build-time variables, injected with -ldflags "-X ..."
var (
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion reports which build is deployed. version comes from config
// so that the VERSION env var and the log attributes agree.
func HandleVersion(service, version string) http.HandlerFunc {
	info := VersionInfo{
		Service:   service,
		Version:   version,
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}
