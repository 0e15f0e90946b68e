package root

import (
	"context"
	"os"

	"studyquest/internal/config"
	"studyquest/internal/events"
	"studyquest/internal/logging"
	"studyquest/internal/notify"
	"studyquest/internal/planner"
	"studyquest/internal/progress"
	"studyquest/internal/storage"
)

// app bundles the wired services a command needs. Commands open it, use it,
// and call the cleanup.
type app struct {
	cfg     config.Config
	store   *progress.Store
	planner *planner.Service
	history *storage.HistoryRepo
	log     *logging.Logger
}

func openApp(ctx context.Context, quiet bool) (*app, func(), error) {
	cfg, appDir, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(appDir)
	if err != nil {
		return nil, nil, err
	}

	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		_ = logger.Close()
		return nil, nil, err
	}

	kv := storage.NewKV(db)
	history := storage.NewHistoryRepo(db)

	var notifier progress.Notifier = notify.ToastWriter{W: os.Stdout}
	if quiet {
		notifier = notify.Nop{}
	}

	store := progress.NewStore(kv, history, notifier, logger)
	if err := store.Load(ctx); err != nil {
		_ = db.Close()
		_ = logger.Close()
		return nil, nil, err
	}

	bus := events.NewBus()
	bus.On(planner.EventGoalAdded, func(any) {
		store.HandleGoalAdded(ctx)
	})

	a := &app{
		cfg:     cfg,
		store:   store,
		planner: planner.NewService(kv, bus),
		history: history,
		log:     logger,
	}
	cleanup := func() {
		_ = db.Close()
		_ = logger.Close()
	}
	return a, cleanup, nil
}
