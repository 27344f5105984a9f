package webd

import (
	"io"
	"os"

	"github.com/rotblauer/pintour/params"
	pintesting "github.com/rotblauer/pintour/testing"
)

func init() {
	accessLogWriter = io.Discard
}

// newTestWebDaemon creates a new WebDaemon for testing purposes.
// If datadir is empty, one will be provided for you.
func newTestWebDaemon(datadir string) (daemon *WebDaemon, teardown func() error) {
	config := params.DefaultTestWebDaemonConfig()
	if datadir != "" {
		config.DataDir = datadir
	} else {
		config.DataDir = pintesting.MustTempDir("webd")
	}
	daemon, err := NewWebDaemon(config)
	if err != nil {
		panic(err)
	}
	teardown = func() error {
		if err := daemon.Close(); err != nil {
			return err
		}
		return os.RemoveAll(config.DataDir)
	}
	return daemon, teardown
}
