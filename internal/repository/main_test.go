//go:build integration
// +build integration

package repository

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"ems-backend/internal/testutils"
)

// TestMain ensures the shared Docker container is purged when the repository
// integration tests finish or are interrupted.
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("repository tests interrupted, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	testutils.CleanupSharedContainer()
	os.Exit(code)
}
