package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*Options, bool, error) {
	t.Helper()
	var out bytes.Buffer
	return Parse(args, "London", &out)
}

func TestParse_Defaults(t *testing.T) {
	opts, shouldExit, err := parse(t)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "London", opts.City)
	assert.False(t, opts.Forecast)
	assert.Equal(t, 5, opts.Days)
	assert.False(t, opts.Banner)
	assert.False(t, opts.Version)
}

func TestParse_PositionalCity(t *testing.T) {
	opts, _, err := parse(t, "Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", opts.City)
}

func TestParse_ForecastFlags(t *testing.T) {
	opts, _, err := parse(t, "--forecast", "Tokyo")
	require.NoError(t, err)
	assert.True(t, opts.Forecast)
	assert.Equal(t, "Tokyo", opts.City)

	opts, _, err = parse(t, "-f", "Tokyo")
	require.NoError(t, err)
	assert.True(t, opts.Forecast)
}

func TestParse_Days(t *testing.T) {
	opts, _, err := parse(t, "--forecast", "--days", "3", "Paris")
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Days)

	opts, _, err = parse(t, "-f", "-d", "7", "Paris")
	require.NoError(t, err)
	assert.Equal(t, 7, opts.Days)
}

func TestParse_DaysOutOfRange(t *testing.T) {
	for _, args := range [][]string{
		{"--days", "0"},
		{"--days", "8"},
		{"-d", "-3"},
	} {
		_, _, err := parse(t, args...)
		require.Error(t, err, "args=%v", args)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	}
}

func TestParse_DaysNotANumber(t *testing.T) {
	_, _, err := parse(t, "--days", "many")
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_BannerAndVersion(t *testing.T) {
	opts, _, err := parse(t, "--banner")
	require.NoError(t, err)
	assert.True(t, opts.Banner)

	opts, _, err = parse(t, "-b")
	require.NoError(t, err)
	assert.True(t, opts.Banner)

	opts, _, err = parse(t, "--version")
	require.NoError(t, err)
	assert.True(t, opts.Version)

	opts, _, err = parse(t, "-v")
	require.NoError(t, err)
	assert.True(t, opts.Version)
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	opts, shouldExit, err := Parse([]string{"--help"}, "London", &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, opts)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "Examples:")
}

func TestParse_UnknownFlag(t *testing.T) {
	_, _, err := parse(t, "--bogus")
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
