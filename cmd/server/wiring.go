package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/external"
	"github.com/KirkDiggler/rpg-sheet/internal/clients/wiki"
	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/derive"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/editor"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// setupLogging installs a JSON slog handler writing to w
func setupLogging(w io.Writer, cfg *config.Config) {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}

// buildEditor wires the editor orchestrator and everything it depends on.
// The returned cleanup closes the stores.
func buildEditor(ctx context.Context, cfg *config.Config) (*editor.Orchestrator, func(), error) {
	var closers []io.Closer
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i].Close(); err != nil {
				slog.WarnContext(ctx, "failed to close resource", "error", err.Error())
			}
		}
	}
	fail := func(err error) (*editor.Orchestrator, func(), error) {
		cleanup()
		return nil, nil, err
	}

	redisClient, err := redisclient.NewClientFromURL(cfg.RedisURL)
	if err != nil {
		return fail(errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client"))
	}
	closers = append(closers, redisClient)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fail(errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable"))
	}

	clk := clock.New()

	var characterRepo characterrepo.Repository
	switch cfg.Store {
	case config.StoreSQLite:
		repo, err := characterrepo.NewSQLite(&characterrepo.SQLiteConfig{Path: cfg.SQLitePath, Clock: clk})
		if err != nil {
			return fail(errors.Wrap(err, "failed to open sqlite store"))
		}
		closers = append(closers, repo)
		characterRepo = repo
	default:
		repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redisClient, Clock: clk})
		if err != nil {
			return fail(errors.Wrap(err, "failed to create redis store"))
		}
		characterRepo = repo
	}

	var table rules.Table = rules.Default()
	if cfg.RulesPath != "" {
		loaded, err := rules.LoadFile(cfg.RulesPath)
		if err != nil {
			return fail(errors.Wrapf(err, "failed to load rules from %s", cfg.RulesPath))
		}
		table = loaded
	}

	engine, err := derive.New(&derive.Config{Rules: table})
	if err != nil {
		return fail(err)
	}

	rollLogRepo, err := rolllog.NewRedisRepository(&rolllog.Config{
		Client:     redisClient,
		Clock:      clk,
		TTL:        cfg.RollLogTTL,
		MaxEntries: cfg.RollLogMaxEntries,
	})
	if err != nil {
		return fail(err)
	}

	diceService, err := dice.NewOrchestrator(&dice.Config{
		RollLogRepo: rollLogRepo,
		IDGenerator: idgen.NewUUID("roll"),
	})
	if err != nil {
		return fail(err)
	}

	prober, err := wiki.NewHTTPChecker(&wiki.Config{Timeout: cfg.WikiTimeout})
	if err != nil {
		return fail(err)
	}
	wikiChecker, err := wiki.NewCachedChecker(&wiki.CacheConfig{
		Prober: prober,
		Client: redisClient,
		TTL:    cfg.WikiCacheTTL,
	})
	if err != nil {
		return fail(err)
	}

	externalClient, err := external.New(&external.Config{
		BaseURL:  cfg.SRDBaseURL,
		CacheTTL: cfg.SRDCacheTTL,
	})
	if err != nil {
		return fail(err)
	}

	orchestrator, err := editor.New(&editor.Config{
		CharacterRepo:  characterRepo,
		Engine:         engine,
		Rules:          table,
		DiceService:    diceService,
		WikiChecker:    wikiChecker,
		ExternalClient: externalClient,
		CharacterIDs:   idgen.NewUUID("char"),
		ItemIDs:        idgen.NewUUID("item"),
		WikiBaseURL:    cfg.WikiBaseURL,
	})
	if err != nil {
		return fail(err)
	}

	slog.InfoContext(ctx, "editor ready",
		"store", cfg.Store,
		"skills", len(table.Skills()),
	)

	return orchestrator, cleanup, nil
}
