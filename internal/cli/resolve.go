package cli

import (
	"os"
	"path/filepath"

	"github.com/deadlyhood/carbonlog/internal/logstore"
)

// ResolveStore locates the footprint log. The CARBONLOG_HOME environment
// variable overrides the default ~/.carbonlog data directory.
func ResolveStore() (*logstore.Store, error) {
	if dir := os.Getenv("CARBONLOG_HOME"); dir != "" {
		return logstore.New(filepath.Join(dir, logstore.Filename)), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return logstore.New(filepath.Join(logstore.DefaultDir(homeDir), logstore.Filename)), nil
}
