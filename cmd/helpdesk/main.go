// Package main is the entry point for the helpdesk terminal application.
package main

import (
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk/internal/api/http"
	"github.com/spec-kit/helpdesk/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk/internal/config"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/observability"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/store"
	"github.com/spec-kit/helpdesk/internal/tui"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	var noDashboard bool
	var noSeed bool

	rootCmd := &cobra.Command{
		Use:     "helpdesk",
		Short:   "Terminal helpdesk: claim, reassign, and resolve tickets and tasks",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(noDashboard, noSeed)
		},
	}
	rootCmd.Flags().BoolVar(&noDashboard, "no-dashboard", false, "disable the read-only HTTP dashboard")
	rootCmd.Flags().BoolVar(&noSeed, "no-seed", false, "start with an empty roster and queues")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(noDashboard, noSeed bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if noDashboard {
		cfg.Dashboard.Enabled = false
	}
	if noSeed {
		cfg.Seed.Demo = false
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	dispatcher := events.NewSyncDispatcher()
	metrics := observability.NewMetrics()
	dispatcher.SubscribeAll(observability.NewAuditLogger(logger))
	dispatcher.SubscribeAll(metrics.EventRecorder())

	registry := store.NewRegistry()
	tickets := store.New[*domain.Ticket]()
	tasks := store.New[*domain.Task]()
	articles := store.NewArticleStore()

	var ticketOps, taskOps sync.Mutex

	ticketClaims := service.NewClaimService(service.ClaimDependencies[*domain.Ticket]{
		Kind:       domain.KindTicket,
		Items:      tickets,
		Registry:   registry,
		Dispatcher: dispatcher,
		Logger:     logger,
		OpLock:     &ticketOps,
	})
	taskClaims := service.NewClaimService(service.ClaimDependencies[*domain.Task]{
		Kind:       domain.KindTask,
		Items:      tasks,
		Registry:   registry,
		Dispatcher: dispatcher,
		Logger:     logger,
		OpLock:     &taskOps,
	})
	ticketLifecycle := service.NewLifecycleService(service.LifecycleDependencies[*domain.Ticket]{
		Kind:       domain.KindTicket,
		Items:      tickets,
		Registry:   registry,
		Dispatcher: dispatcher,
		Logger:     logger,
		OpLock:     &ticketOps,
	})
	taskLifecycle := service.NewLifecycleService(service.LifecycleDependencies[*domain.Task]{
		Kind:       domain.KindTask,
		Items:      tasks,
		Registry:   registry,
		Dispatcher: dispatcher,
		Logger:     logger,
		OpLock:     &taskOps,
	})
	statsService := service.NewStatsService(tickets, tasks)
	articleService := service.NewArticleService(articles, tickets, dispatcher, logger)

	if cfg.Seed.Demo {
		store.SeedUsers(registry)
		store.SeedTickets(tickets)
		store.SeedTasks(tasks)
		logger.Info("seeded demo data",
			zap.Int("users", len(registry.ListUsers())),
			zap.Int("tickets", tickets.Len()),
			zap.Int("tasks", tasks.Len()))
	}

	if cfg.Dashboard.Enabled {
		app := fiber.New(fiber.Config{DisableStartupMessage: true})
		httptransport.RegisterMiddlewares(app, logger, metrics)
		httptransport.RegisterRoutes(app, httptransport.RouteConfig{
			Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version),
			Dashboard: handlers.NewDashboardHandler(statsService, tickets, tasks, registry, metrics),
		})
		go func() {
			if err := app.Listen(cfg.Dashboard.Addr()); err != nil {
				logger.Error("dashboard listen", zap.Error(err))
			}
		}()
		defer func() {
			_ = app.Shutdown()
		}()
		logger.Info("dashboard listening", zap.String("addr", cfg.Dashboard.Addr()))
	}

	return tui.Run(tui.Deps{
		AppName:         cfg.App.Name,
		Registry:        registry,
		Tickets:         tickets,
		Tasks:           tasks,
		TicketClaims:    ticketClaims,
		TaskClaims:      taskClaims,
		TicketLifecycle: ticketLifecycle,
		TaskLifecycle:   taskLifecycle,
		Articles:        articleService,
		Stats:           statsService,
		Logger:          logger,
	})
}
