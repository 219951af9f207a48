package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilenameOfStripsDirectoryComponents(t *testing.T) {
	require.Equal(t, "report.txt", filenameOf("report.txt"))
	require.Equal(t, "report.txt", filenameOf("/var/tmp/report.txt"))
	require.Equal(t, "report.txt", filenameOf("./a/b/c/report.txt"))
	require.Equal(t, "", filenameOf("a/b/"))
}
