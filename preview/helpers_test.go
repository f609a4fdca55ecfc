package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/scottkirkwood/galaxy"
)

func testViewer(t *testing.T, configPath string) *viewer {
	t.Helper()
	seed, err := galaxy.Init("7")
	if err != nil {
		t.Fatal(err)
	}
	return &viewer{
		configPath: configPath,
		seed:       seed,
		crcs:       newChecksums(),
		logger:     log.New(io.Discard),
	}
}
