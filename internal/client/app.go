// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/identity"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/vault"
	"github.com/MKhiriev/go-vault-sync/internal/workers"
	"github.com/MKhiriev/go-vault-sync/models"
	"github.com/go-git/go-billy/v5/osfs"
)

// App is the wired client application.
type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	storages *store.ClientStorages
	index    *vault.Index
	rules    *vault.IgnoreRuleSet
	scanner  *vault.Scanner
	watcher  *vault.Watcher
	job      *workers.RefreshJob
	logger   *logger.Logger
}

// NewApp wires the full client from configuration: transport, local store,
// machine identity, vault filesystem and the engine services.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Vault.DBPath, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	// The vault filesystem is chroot'd at the vault root; everything below
	// speaks vault-relative paths.
	fs := osfs.New(cfg.Vault.RootPath)
	index := vault.NewIndex()

	idResolver := identity.NewResolver(cfg.Vault.IdentityPath, cfg.App.MachineName, log)

	services := service.NewClientServices(
		*cfg, storages, serverAdapter, idResolver,
		index, vault.NewHasher(fs, "/"), fs, "/", log,
	)

	return &App{
		cfg:      cfg,
		services: services,
		storages: storages,
		index:    index,
		scanner:  vault.NewScanner(fs, "/", log),
		watcher:  vault.NewWatcher(cfg.Vault.RootPath, index, log),
		job:      workers.NewRefreshJob(services.Refresh, cfg.App.UserID, cfg.Workers.RefreshInterval, log),
		logger:   log,
	}, nil
}

// Run executes one client command: args[0] is the command name, the rest are
// vault-relative paths plus the --force / --keep-local modifiers.
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command given\n\n%s", usage)
	}

	ctx := context.Background()

	if err := a.prepare(ctx); err != nil {
		return err
	}

	command, paths, force, keepLocal := splitArgs(args)

	switch command {
	case "status":
		return a.printStatus()
	case "watch":
		return a.watch(ctx)
	case "ignore-list":
		for _, p := range a.rules.Patterns() {
			fmt.Println(p)
		}
		return nil
	case "ignore-add":
		return a.editIgnoreRules(ctx, paths, a.rules.Add)
	case "ignore-remove":
		return a.editIgnoreRules(ctx, paths, a.rules.Remove)
	}

	result, err := a.services.Executor.Execute(ctx, service.Request{
		Operation: models.Operation(command),
		Paths:     paths,
		Force:     force,
		KeepLocal: keepLocal,
	})
	if err != nil {
		return err
	}

	printResult(result)
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", result.Failed, len(result.Files))
	}
	return nil
}

// prepare populates the index from disk, loads the ignore rules and pulls a
// fresh listing. A refresh failure is a warning: the session continues on
// the cached records.
func (a *App) prepare(ctx context.Context) error {
	count, err := a.scanner.Populate(ctx, a.index)
	if err != nil {
		return fmt.Errorf("scan vault: %w", err)
	}
	a.logger.Info().Int("items", count).Str("root", a.cfg.Vault.RootPath).Msg("vault scanned")

	patterns, err := a.storages.Rules.LoadPatterns(ctx)
	if err != nil {
		return fmt.Errorf("load ignore rules: %w", err)
	}
	a.rules = vault.NewIgnoreRuleSet(patterns)

	if err := a.services.Refresh.FullRefresh(ctx, a.cfg.App.UserID); err != nil {
		a.logger.Warn().Err(err).Msg("listing refresh failed, continuing on cached records")
		fmt.Fprintf(os.Stderr, "warning: %v (using cached records)\n", err)
		if cacheErr := a.services.Refresh.RestoreFromCache(ctx); cacheErr != nil {
			return fmt.Errorf("restore cached records: %w", cacheErr)
		}
	}

	return nil
}

// watch keeps the session alive: the filesystem watcher maintains the index
// and the refresh job re-pulls the listing until interrupted.
func (a *App) watch(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.watcher.Start(ctx); err != nil {
		return fmt.Errorf("start vault watcher: %w", err)
	}
	defer a.watcher.Stop()

	a.job.Start(ctx)
	defer a.job.Stop()

	fmt.Println("watching vault, Ctrl-C to stop")
	<-ctx.Done()
	return nil
}

func (a *App) editIgnoreRules(ctx context.Context, patterns []string, apply func(string) bool) error {
	if len(patterns) == 0 {
		return fmt.Errorf("no pattern given")
	}
	for _, p := range patterns {
		apply(p)
	}
	return a.storages.Rules.SavePatterns(ctx, a.rules.Patterns())
}

// printStatus classifies every indexed file and prints counts per status.
func (a *App) printStatus() error {
	counts := map[models.DiffStatus]int{}
	needsSync := 0

	for _, item := range a.index.All() {
		if item.IsDirectory {
			continue
		}
		status, err := a.services.Classifier.Classify(item, a.rules)
		if err != nil {
			continue
		}
		counts[status]++
		if status.NeedsSync() {
			needsSync++
		}
	}

	order := []models.DiffStatus{
		models.StatusSynced,
		models.StatusLocal,
		models.StatusCloudOnly,
		models.StatusCloudNew,
		models.StatusOrphanedRemote,
		models.StatusIgnored,
	}
	for _, status := range order {
		if counts[status] > 0 {
			fmt.Printf("%-16s %d\n", status, counts[status])
		}
	}
	fmt.Printf("%-16s %d\n", "needs sync", needsSync)
	return nil
}

func printResult(result models.BatchResult) {
	if result.Denied {
		fmt.Printf("denied: %s\n", result.DeniedReason)
		return
	}

	if result.IdentityDegraded {
		fmt.Println("warning: " + service.MsgIdentityDegraded)
	}

	if result.Conflict != nil {
		fmt.Printf("checkout conflict: held on %s\n", strings.Join(result.Conflict.MachineNames, ", "))
		if result.Conflict.Blocking() {
			fmt.Println("the holding machine is offline; check-in is blocked (admin force-release required)")
		} else {
			fmt.Println("re-run with --force to override")
		}
		return
	}

	for _, f := range result.Files {
		switch {
		case f.Success && f.NewVersion > 0:
			fmt.Printf("ok       %s (v%d)\n", f.RelativePath, f.NewVersion)
		case f.Success:
			fmt.Printf("ok       %s\n", f.RelativePath)
		case f.Kind.Informational():
			fmt.Printf("skipped  %s: %s\n", f.RelativePath, f.Reason)
		default:
			fmt.Printf("failed   %s: %s\n", f.RelativePath, f.Reason)
		}
	}
	fmt.Printf("%d succeeded, %d failed\n", result.Succeeded, result.Failed)
}

// splitArgs separates the command, its paths and the boolean modifiers.
func splitArgs(args []string) (command string, paths []string, force, keepLocal bool) {
	command = args[0]
	for _, arg := range args[1:] {
		switch arg {
		case "--force", "-force":
			force = true
		case "--keep-local", "-keep-local":
			keepLocal = true
		default:
			paths = append(paths, arg)
		}
	}
	return command, paths, force, keepLocal
}

const usage = `usage: vault-sync <command> [paths...] [--force] [--keep-local]

commands:
  status              per-file synchronization summary
  checkout            acquire the edit lock on files
  checkin             publish a new version and release the lock (--force to override an online conflict)
  sync                first check-in of never-synchronized files
  sync-metadata       publish pending metadata edits only
  download            fetch cloud-only files into the vault
  discard             release the lock without publishing
  discard-orphaned    delete the local copy of orphaned files (no remote call)
  delete-local        remove the local copy (record stays)
  delete-server       remove the server record (--keep-local keeps the file)
  extract-references  list the files associated with a selection
  force-release       admin: clear another user's checkout
  ignore-add          add ignore patterns
  ignore-remove       remove ignore patterns
  ignore-list         print ignore patterns
  watch               keep the index and cache fresh until interrupted`
