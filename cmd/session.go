package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sadopc/worklog/internal/config"
	"github.com/sadopc/worklog/internal/logging"
	"github.com/sadopc/worklog/internal/storage"
	"github.com/sadopc/worklog/internal/timesheet"
)

// session wires config, logging, the persistence backend and the entry store
// together for one command invocation.
type session struct {
	cfg   config.Config
	store *timesheet.Store
}

func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if debugFlag {
		cfg.Debug = true
	}

	if cfgPath, err := config.Path(); err == nil {
		if err := logging.Init(filepath.Dir(cfgPath), cfg.Debug); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
		}
	}

	dataPath, err := cfg.DataPath()
	if err != nil {
		return nil, err
	}

	var backend timesheet.Backend
	switch cfg.Storage {
	case config.StorageJSON:
		backend = storage.NewJSONFile(dataPath)
	default:
		backend, err = storage.NewSQLite(dataPath)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
	}

	store, warn := timesheet.NewStore(backend)
	if warn != nil {
		// A failed load never blocks the session; it just starts empty.
		logging.L.Warn("starting with empty entry set", "error", warn)
		fmt.Fprintf(os.Stderr, "Warning: %v (starting with an empty entry set)\n", warn)
	}

	logging.L.Debug("session opened", "storage", cfg.Storage, "path", dataPath)
	return &session{cfg: cfg, store: store}, nil
}

func (s *session) close() {
	if err := s.store.Close(); err != nil {
		logging.L.Warn("closing backend", "error", err)
	}
}

// reportFlush downgrades a persistence failure to a stderr warning: the
// in-memory mutation already happened and stays authoritative. Any other
// error passes through.
func reportFlush(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, timesheet.ErrPersistence) {
		logging.L.Warn("flush failed", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: %v (change kept in memory for this session)\n", err)
		return nil
	}
	return err
}
