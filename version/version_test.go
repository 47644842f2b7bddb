package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestString(t *testing.T) {
	info := Info{CommitHash: "abc1234", BuildTime: "now", Version: "dev"}
	assert.True(t, strings.HasPrefix(info.String(), "wellgraded dev"))

	info.Version = "1.0.0"
	assert.Contains(t, info.String(), "wellgraded 1.0.0")
}

func TestShort(t *testing.T) {
	assert.Equal(t, "abc1234", Info{CommitHash: "abc1234def"}.Short())
	assert.Equal(t, "ab", Info{CommitHash: "ab"}.Short())
}
