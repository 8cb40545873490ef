package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgsAcceptsAMinimalValidInvocation(t *testing.T) {
	cfg, err := ParseArgs("covarray-s", []string{"-s", "3", "-c", "input.cocoa"})
	require.NoError(t, err)
	require.Equal(t, "input.cocoa", cfg.InputPath)
	require.Equal(t, "result.txt", cfg.OutputPath)
	require.Equal(t, 3, cfg.Strength)
	require.True(t, cfg.Constraints)
	require.False(t, cfg.ShowVersion)
}

func TestParseArgsHonoursOutputFlag(t *testing.T) {
	cfg, err := ParseArgs("covarray-s", []string{"-s", "2", "-n", "-o", "out.txt", "input.cocoa"})
	require.NoError(t, err)
	require.Equal(t, "out.txt", cfg.OutputPath)
	require.False(t, cfg.Constraints)
}

func TestParseArgsRequiresExactlyOneInputFile(t *testing.T) {
	_, err := ParseArgs("covarray-s", []string{"-s", "2", "-c"})
	require.ErrorIs(t, err, ErrMissingInput)

	_, err = ParseArgs("covarray-s", []string{"-s", "2", "-c", "a.cocoa", "b.cocoa"})
	require.ErrorIs(t, err, ErrMissingInput)
}

func TestParseArgsRequiresStrength(t *testing.T) {
	_, err := ParseArgs("covarray-s", []string{"-c", "input.cocoa"})
	require.ErrorIs(t, err, ErrMissingStrength)
}

func TestParseArgsRejectsStrengthOutOfRange(t *testing.T) {
	_, err := ParseArgs("covarray-s", []string{"-s", "1", "-c", "input.cocoa"})
	require.ErrorIs(t, err, ErrStrengthOutOfRange)

	_, err = ParseArgs("covarray-s", []string{"-s", "13", "-c", "input.cocoa"})
	require.ErrorIs(t, err, ErrStrengthOutOfRange)
}

func TestParseArgsRequiresExactlyOneConstraintFlag(t *testing.T) {
	_, err := ParseArgs("covarray-s", []string{"-s", "2", "input.cocoa"})
	require.ErrorIs(t, err, ErrConstraintFlagsRequired)

	_, err = ParseArgs("covarray-s", []string{"-s", "2", "-c", "-n", "input.cocoa"})
	require.ErrorIs(t, err, ErrConstraintFlagsRequired)
}

func TestParseArgsRejectsSameInputAndOutputPath(t *testing.T) {
	_, err := ParseArgs("covarray-s", []string{"-s", "2", "-c", "-o", "same.txt", "same.txt"})
	require.ErrorIs(t, err, ErrSameInputOutput)
}

func TestParseArgsVersionFlagSkipsTheRestOfValidation(t *testing.T) {
	cfg, err := ParseArgs("covarray-s", []string{"--version"})
	require.NoError(t, err)
	require.True(t, cfg.ShowVersion)
}
