package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"gotest.tools/assert"
)

func TestFlagValue(t *testing.T) {
	var v value
	assert.NilError(t, v.Set("true"))
	assert.Equal(t, v, boolTrue)
	assert.Equal(t, v.String(), "true")

	assert.NilError(t, v.Set("all"))
	assert.Equal(t, v, allInfo)
	assert.Equal(t, v.String(), "all")

	assert.NilError(t, v.Set("false"))
	assert.Equal(t, v, boolFalse)

	assert.Assert(t, v.Set("maybe") != nil)
	assert.Equal(t, v.Type(), "version")
}

func TestAddFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	assert.NilError(t, fs.Parse([]string{"--version"}))
	assert.Equal(t, versionFlag, boolTrue)
	versionFlag = boolFalse
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, info.GoVersion, runtime.Version())
	assert.Equal(t, info.String(), GitVersion)
	assert.Assert(t, strings.Contains(info.Text(), "platform:"))
}
