package main

import (
	"errors"
	"fmt"
	"log/slog"

	tgbot "github.com/go-telegram/bot"
	"github.com/spf13/cobra"

	"github.com/edgard/studybot/internal/bot"
	"github.com/edgard/studybot/internal/bot/handlers"
	"github.com/edgard/studybot/internal/bot/tasks"
	"github.com/edgard/studybot/internal/config"
	"github.com/edgard/studybot/internal/logger"
	"github.com/edgard/studybot/internal/notion"
	"github.com/edgard/studybot/internal/study"
	"github.com/edgard/studybot/internal/telegram"
)

// flagKeys maps configuration keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"logger.level": "log-level",
	"logger.json":  "log-json",
	"timezone":     "timezone",
}

type rootOptions struct {
	configPath string
	envFiles   []string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "studybot",
		Short: "Daily KPSS study plan and progress notifier",
		Long: `studybot reads today's study plan and progress checklist from Notion
and reports them to a Telegram chat.

Without a subcommand it sends today's plan, like "studybot digest".`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTask(cmd, opts, config.TaskDailyPlan)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML configuration file (default ./config.yaml if present)")
	flags.StringSliceVar(&opts.envFiles, "env-file", []string{".env"}, "Dotenv files to load before reading the environment")
	flags.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")
	flags.Bool("log-json", false, "Write logs as JSON")
	flags.String("timezone", "", "IANA time zone used to decide what today is (default local)")

	root.AddCommand(
		&cobra.Command{
			Use:   "digest",
			Short: "Send today's study plan",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runTask(cmd, opts, config.TaskDailyPlan)
			},
		},
		&cobra.Command{
			Use:   "progress",
			Short: "Alert about today's unfinished checklist items",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runTask(cmd, opts, config.TaskProgressCheck)
			},
		},
		&cobra.Command{
			Use:   "serve",
			Short: "Run both flows on their schedules and answer chat commands",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runServe(cmd, opts)
			},
		},
	)

	return root
}

// app holds the components shared by every command.
type app struct {
	log      *slog.Logger
	cfg      *config.Config
	study    *study.Service
	tg       *tgbot.Bot
	notifier *telegram.Notifier
}

// setup loads configuration and builds the shared components. Only local
// problems are reported as errors. A Telegram client that cannot be built is
// logged and left nil so the run still reaches Notion.
func setup(cmd *cobra.Command, opts *rootOptions, listen bool) (*app, error) {
	cfg, err := config.Load(config.Options{
		ConfigPath: opts.configPath,
		EnvFiles:   opts.envFiles,
		Flags:      cmd.Flags(),
		FlagKeys:   flagKeys,
	})
	if err != nil {
		slog.Error("Failed to load configuration", "path", opts.configPath, "error", err)
		return nil, err
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	slog.SetDefault(log)
	log.Debug("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	notionClient := notion.NewClient(cfg.Notion, log)

	var botOpts []tgbot.Option
	if listen && cfg.Telegram.Listen {
		botOpts = append(botOpts, tgbot.WithMiddlewares(logger.Middleware(log)))
	}
	tg, err := telegram.NewTelegramBot(cfg.Telegram, log, botOpts...)
	if err != nil {
		log.Error("Continuing without Telegram client", "error", err)
		tg = nil
	}

	return &app{
		log:      log,
		cfg:      cfg,
		study:    study.NewService(notionClient, cfg, log),
		tg:       tg,
		notifier: telegram.NewNotifier(tg, cfg.Telegram.ChatID, log),
	}, nil
}

func (a *app) tasks() map[string]tasks.ScheduledTaskFunc {
	return tasks.RegisterAllTasks(tasks.TaskDeps{
		Logger:   a.log,
		Config:   a.cfg,
		Study:    a.study,
		Notifier: a.notifier,
	})
}

func runTask(cmd *cobra.Command, opts *rootOptions, name string) error {
	a, err := setup(cmd, opts, false)
	if err != nil {
		return err
	}

	task, ok := a.tasks()[name]
	if !ok {
		return fmt.Errorf("unknown task %q", name)
	}

	if err := task(cmd.Context()); err != nil {
		// Tasks swallow upstream failures, so this is informational only.
		a.log.Error("Task finished with error", "task", name, "error", err)
	}
	return nil
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	a, err := setup(cmd, opts, true)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	sched, err := bot.NewScheduler(a.log, &a.cfg.Scheduler, a.cfg.Location(), a.tasks())
	if err != nil {
		a.log.Error("Failed to create scheduler", "error", err)
		return err
	}

	var listener *tgbot.Bot
	if a.cfg.Telegram.Listen {
		if a.tg == nil {
			err := errors.New("telegram listener enabled but the Telegram client is unavailable")
			a.log.Error("Cannot start listener", "error", err)
			return err
		}

		cmdHandlers := handlers.RegisterAllCommands(handlers.HandlerDeps{
			Logger: a.log,
			Config: a.cfg,
			Study:  a.study,
		})
		if err := telegram.RegisterHandlers(a.tg, a.log, cmdHandlers); err != nil {
			a.log.Error("Failed to register Telegram handlers", "error", err)
			return err
		}
		listener = a.tg
	}

	a.log.Info("Starting studybot", "listen", listener != nil, "timezone", a.cfg.Location().String())
	if err := bot.NewBot(a.log, listener, sched).Run(ctx); err != nil {
		a.log.Error("studybot stopped due to error", "error", err)
		return err
	}

	a.log.Info("studybot stopped gracefully.")
	return nil
}
