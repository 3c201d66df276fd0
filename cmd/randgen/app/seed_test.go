package app

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"randgen/cmd/randgen/app/config"

	"gotest.tools/assert"
)

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, resolveSeed(0), uint32(0))
	assert.Equal(t, resolveSeed(5489), uint32(5489))
	assert.Equal(t, resolveSeed(4294967295), uint32(4294967295))

	defer func(r io.Reader) { entropy = r }(entropy)

	entropy = bytes.NewReader([]byte{0x71, 0x15, 0, 0})
	assert.Equal(t, resolveSeed(config.NoSeed), uint32(5489))

	// falls back to the clock
	entropy = iotest.ErrReader(errors.New("no entropy"))
	resolveSeed(config.NoSeed)
}
