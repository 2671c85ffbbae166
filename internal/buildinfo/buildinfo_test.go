package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "dev", "unknown"
	assert.Equal(t, "dev", Short())

	Commit = "abc1234"
	assert.Equal(t, "abc1234", Short())

	Version = "v0.2.0"
	assert.Equal(t, "v0.2.0", Short())
	assert.Equal(t, "velplot v0.2.0 (commit abc1234, built unknown)", String())
}
