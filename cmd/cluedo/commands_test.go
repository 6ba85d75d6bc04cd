package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntArgs(t *testing.T) {
	nums, err := intArgs([]string{"1", "3"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, nums)

	_, err = intArgs([]string{"two"})
	assert.EqualError(t, err, "'two' is not a number")
}

func TestCommandTree(t *testing.T) {
	for _, name := range []string{"detective", "start", "bench"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	for _, flag := range []string{"loglevel", "config", "seed"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestStartNeedsTwoArguments(t *testing.T) {
	assert.Error(t, startCmd.Args(startCmd, []string{"1"}))
	assert.NoError(t, startCmd.Args(startCmd, []string{"1", "2"}))
}
