package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"randgen/cmd/randgen/app/options"

	"github.com/spf13/viper"
	"gotest.tools/assert"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()

	var out bytes.Buffer
	cmd := newApp("randgen", &out).Command()
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateList(t *testing.T) {
	out, err := execute(t, "--seed", "5489", "--min", "1", "--max", "100", "--count", "5")
	assert.NilError(t, err)
	assert.Equal(t, out, "82, 14, 91, 84, 13\n")
}

func TestGenerateDefaults(t *testing.T) {
	out, err := execute(t, "--seed", "5489")
	assert.NilError(t, err)
	assert.Equal(t, out, "82, 14, 91, 84, 13\n")
}

func TestGenerateLines(t *testing.T) {
	out, err := execute(t, "--seed", "5489", "--count", "3", "--format", "lines")
	assert.NilError(t, err)
	assert.Equal(t, out, "82\n14\n91\n")
}

func TestGenerateTable(t *testing.T) {
	out, err := execute(t, "--seed", "5489", "--count", "2", "--format", "table")
	assert.NilError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, len(lines), 3)
	assert.Assert(t, strings.Contains(lines[0], "VALUE"))
	assert.Assert(t, strings.HasSuffix(lines[1], "82"))
	assert.Assert(t, strings.HasSuffix(lines[2], "14"))
}

func TestGenerateUnseeded(t *testing.T) {
	out, err := execute(t, "--count", "10", "--min", "-3", "--max", "3")
	assert.NilError(t, err)
	assert.Equal(t, len(strings.Split(strings.TrimSpace(out), ", ")), 10)
}

func TestValidationErrors(t *testing.T) {
	_, err := execute(t, "--min", "10", "--max", "1")
	assert.Assert(t, errors.Is(err, options.ErrRange))

	_, err = execute(t, "--count", "1001")
	assert.Error(t, err, "count must be a positive number not greater than 1000")

	_, err = execute(t, "--count", "0")
	assert.Error(t, err, "count must be a positive number not greater than 1000")

	_, err = execute(t, "--format", "xml")
	assert.Assert(t, errors.Is(err, options.ErrFormat))
}

func TestConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "randgen.yaml")
	assert.NilError(t, os.WriteFile(file, []byte("seed: 5489\ncount: 3\nformat: lines\n"), 0o644))

	out, err := execute(t, "--config", file)
	assert.NilError(t, err)
	assert.Equal(t, out, "82\n14\n91\n")

	// flags win over the file
	out, err = execute(t, "--config", file, "--format", "list")
	assert.NilError(t, err)
	assert.Equal(t, out, "82, 14, 91\n")
}

func TestMissingConfigFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read configuration file")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("RANDGEN_MAX_COUNT", "2")
	_, err := execute(t, "--count", "3")
	assert.Error(t, err, "count must be a positive number not greater than 2")

	t.Setenv("RANDGEN_SEED", "5489")
	out, err := execute(t, "--count", "2")
	assert.NilError(t, err)
	assert.Equal(t, out, "82, 14\n")
}

func TestRawCommand(t *testing.T) {
	out, err := execute(t, "raw", "--seed", "5489", "--count", "5")
	assert.NilError(t, err)
	assert.Equal(t, out, "3499211612\n581869302\n3890346734\n3586334585\n545404204\n")

	_, err = execute(t, "raw", "--count", "0")
	assert.Error(t, err, "count must be a positive number not greater than 1000")
}
