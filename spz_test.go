package spz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path.spz", RUB)
	require.Error(t, err)
}

func TestFromBytes_RejectsGarbage(t *testing.T) {
	_, err := FromBytes([]byte("not a gzip stream"), RUB)
	require.Error(t, err)
}

func TestHeaderFromFile_MissingFile(t *testing.T) {
	_, err := HeaderFromFile("/nonexistent/path.spz")
	require.Error(t, err)
}
