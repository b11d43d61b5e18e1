package buildvars

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version, GitCommit, BuildDate = "", "", nil
	assert.Equal(t, "devel", VersionString())

	Version, GitCommit, BuildDate = "0.3", "abc123", ptr(time.Unix(0, 0))
	assert.Equal(t, "0.3 (commit abc123, built 1970-01-01T00:00:00Z)", VersionString())
}
