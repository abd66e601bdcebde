package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWalkthroughOutput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out))

	text := out.String()
	require.Contains(t, text, "--- reverse iterator\n4. yet another long string that will be moved\n")
	require.Contains(t, text, "--- erase two in the middle\n4. yet another long string that will be moved\n")
	require.Contains(t, text, "Here be three copies of the same string inserted\nAnd one inserted second\n")
	require.True(t, strings.HasSuffix(text, "len 4 cap 4\n"))

	lines := strings.Split(strings.TrimSpace(text), "\n")
	var afterBegin []string
	for i, l := range lines {
		if l == "--- with one added at begin" {
			afterBegin = lines[i+1 : i+5]
			break
		}
	}
	require.Equal(t, []string{
		"0. a long string added at begin is fine",
		"1. Hello, this is a pretty long string that will not fit in SSO",
		"4. yet another long string that will be moved",
		"5. a long string added at end will be nice",
	}, afterBegin)
}

func TestRoundsPrintOnce(t *testing.T) {
	var once, many bytes.Buffer
	require.NoError(t, run(nil, &once))
	require.NoError(t, run([]string{"--rounds", "5"}, &many))
	require.Equal(t, once.String(), many.String())
}

func TestMemProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mem.prof")
	var out bytes.Buffer
	require.NoError(t, run([]string{"--memprofile", path}, &out))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NotZero(t, info.Size())
}

func TestBadFlags(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, run([]string{"--rounds", "0"}, &out))
	require.Error(t, run([]string{"--nope"}, &out))
}
