package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexjbarnes/drive-sync/internal/config"
	"github.com/alexjbarnes/drive-sync/internal/drive"
	"github.com/alexjbarnes/drive-sync/internal/filesync"
	"github.com/alexjbarnes/drive-sync/internal/folders"
	"github.com/alexjbarnes/drive-sync/internal/ipc"
	"github.com/alexjbarnes/drive-sync/internal/keylock"
	"github.com/alexjbarnes/drive-sync/internal/logging"
	"github.com/alexjbarnes/drive-sync/internal/remote"
	"github.com/alexjbarnes/drive-sync/internal/server"
	"github.com/alexjbarnes/drive-sync/internal/state"
	"github.com/alexjbarnes/drive-sync/internal/syncengine"
	"github.com/alexjbarnes/drive-sync/internal/telemetry"
	"golang.org/x/sync/errgroup"
)

var Version = "dev"

// queueSize bounds driver callbacks waiting for a dispatcher worker.
const queueSize = 256

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.NewLogger(cfg.Environment, cfg.LogLevel)
	logger.Info("drive-sync starting",
		slog.String("version", Version),
		slog.String("sync_dir", cfg.SyncDir),
		slog.String("device", cfg.DeviceName),
	)

	appState, err := state.LoadAt(cfg.StatePath)
	if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}
	defer appState.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := remote.NewClient(cfg.APIURL, cfg.Token, cfg.RemoteTimeout)
	broker := ipc.NewBroker(cfg.IPCQueueSize, logger.With(slog.String("service", "ipc")))

	// Folder use cases share one lock table so moves, renames and
	// offline replays serialize on the same paths.
	locks := keylock.New()
	repo := appState.Folders()
	offline := appState.OfflineFolders()
	events := appState.Events()

	finder := folders.NewFinder(repo)
	mover := folders.NewMover(repo, client, finder, locks, logger)
	renamer := folders.NewRenamer(repo, client, broker, locks, logger)
	synchronizer := folders.NewSynchronizeOfflineModifications(offline, repo, renamer, events, locks, logger)
	offlineSync := folders.NewOfflineSync(offline, synchronizer, cfg.ReconcileWorkers, logger)
	offlineRenamer := folders.NewOfflineRenamer(offline, repo, events, locks, logger)

	// Replay anything recorded while the previous run was offline before
	// accepting new work.
	if err := offlineSync.RunAll(ctx); err != nil {
		logger.Warn("offline reconciliation incomplete", slog.String("error", err.Error()))
	}

	reporter := telemetry.NewCollector(appState, cfg.DeviceName, logger)

	root := drive.NewRoot(cfg.SyncDir)

	ignore, err := drive.LoadIgnoreList(cfg.IgnorePath())
	if err != nil {
		return fmt.Errorf("loading ignore list: %w", err)
	}
	logger.Info("ignore list loaded", slog.String("path", cfg.IgnorePath()), slog.Int("rules", ignore.Rules()))

	hydrator := drive.NewHydrator(root, client, appState, logger)
	orchestrator := filesync.NewOrchestrator(root, client, appState, logger)

	dispatcher := syncengine.NewDispatcher(
		syncengine.NewHandleChangeSize(orchestrator, reporter, logger),
		syncengine.NewHandleHydrate(hydrator, reporter, logger),
		cfg.DispatchWorkers,
		logger.With(slog.String("service", "dispatcher")),
	)

	queue := make(chan syncengine.QueueItem, queueSize)
	watcher := drive.NewWatcher(root, ignore, queue, logger)

	mux := server.NewMux(server.MuxConfig{
		Events: broker,
		Commands: &server.Commands{
			Finder:         finder,
			Mover:          mover,
			Renamer:        renamer,
			OfflineRenamer: offlineRenamer,
			OfflineSync:    offlineSync,
			Queue:          queue,
			Logger:         logger,
		},
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return broker.Run(gctx)
	})

	g.Go(func() error {
		return server.Serve(gctx, cfg.IPCListenAddr, server.RequireToken(cfg.IPCToken, logger)(mux), logger)
	})

	g.Go(func() error {
		return watcher.Watch(gctx)
	})

	g.Go(func() error {
		return dispatcher.Run(gctx, queue)
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		logger.Info("drive-sync stopped")
		return nil
	}

	return err
}
