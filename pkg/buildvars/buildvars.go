package buildvars

import (
	"strconv"
	"strings"
	"time"
)

// These are set through -ldflags "-X ..." at build time.
var (
	GitCommit       string
	Version         string
	BuildDateString string
	BuildDate       *time.Time
)

func init() {
	unixTS, err := strconv.ParseInt(BuildDateString, 10, 64)
	if err == nil {
		BuildDate = ptr(time.Unix(unixTS, 0))
	}
}

func ptr[T any](in T) *T {
	return &in
}

// VersionString is the one-line version shown by "--version".
func VersionString() string {
	version := Version
	if version == "" {
		version = "devel"
	}
	var details []string
	if GitCommit != "" {
		details = append(details, "commit "+GitCommit)
	}
	if BuildDate != nil {
		details = append(details, "built "+BuildDate.UTC().Format(time.RFC3339))
	}
	if len(details) == 0 {
		return version
	}
	return version + " (" + strings.Join(details, ", ") + ")"
}
