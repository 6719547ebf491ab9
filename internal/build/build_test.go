package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cmini/internal/build"
)

func TestDescribe(t *testing.T) {
	assert.Equal(t, "dev", build.Describe())

	build.Commit = "0123456789abcdef"
	t.Cleanup(func() { build.Commit = "" })
	assert.Equal(t, "dev (0123456)", build.Describe())
}
