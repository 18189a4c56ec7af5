// Package cli provides the command-line interface for the LockedIn dashboard.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"lockedin-cli/internal/api"
	"lockedin-cli/internal/cache"
	"lockedin-cli/internal/chat"
	"lockedin-cli/internal/config"
	"lockedin-cli/internal/logging"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2025-06-01"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	API       *api.Client
	Cache     cache.Cache
	Prefs     *cache.SQLiteCache
	Assistant *chat.Assembler
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	app.API = api.NewClient(api.Config{BaseURL: cfg.Backend.BaseURL}, logger)

	// Session cache backed by SQLite; fall back to in-memory when the
	// database cannot be opened.
	sqlCache, err := cache.NewSQLiteCache(cfg.Cache.Path, cfg.TTL(), logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to open session cache, using in-memory cache")
		app.Cache = cache.NewMemoryCache(cfg.TTL())
	} else {
		app.Cache = sqlCache
		app.Prefs = sqlCache
	}

	if cfg.HasChatKey() {
		client := chat.NewGroqClient(cfg.Credentials.Groq.APIKey, cfg.Chat.BaseURL)
		app.Assistant = chat.NewAssembler(client, chat.NewBackendContext(app.API), logger, cfg.Chat.Model)
		logger.Debug().Str("model", cfg.Chat.Model).Msg("Chat assistant initialized")
	}

	rootCmd := &cobra.Command{
		Use:   "lockedin",
		Short: "LockedIn - simulated portfolio dashboard CLI",
		Long: `LockedIn is a command-line dashboard for a simulated stock portfolio.

It talks to the LockedIn backend for market data, holdings, orders,
watchlists and mutual funds, and includes an AI assistant that answers
questions with your portfolio as context.

Use 'lockedin help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/lockedin)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addCoreCommands(rootCmd, app)
	addExploreCommands(rootCmd, app)
	addStockCommands(rootCmd, app)
	addPortfolioCommands(rootCmd, app)
	addOrderCommands(rootCmd, app)
	addWatchlistCommands(rootCmd, app)
	addFundCommands(rootCmd, app)
	addChatCommands(rootCmd, app)

	return rootCmd
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("LockedIn v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app.Config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	cmd.AddCommand(newThemeCmd(app))

	return cmd
}

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [dark|light]",
		Short: "Show or set the UI theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Prefs == nil {
				output.Warning("Preferences unavailable: session cache could not be opened")
				return nil
			}
			if len(args) == 0 {
				theme := app.Prefs.Theme()
				if output.IsJSON() {
					return output.JSON(map[string]string{"theme": theme})
				}
				output.Println(theme)
				return nil
			}
			theme := args[0]
			if theme != "dark" && theme != "light" {
				output.Error("Unknown theme %q (expected dark or light)", theme)
				return nil
			}
			if err := app.Prefs.SetTheme(theme); err != nil {
				return err
			}
			output.Success("Theme set to %s", theme)
			return nil
		},
	}
}

func showConfig(output *Output, cfg *config.Config) {
	output.Bold("Backend")
	output.Printf("  Base URL:  %s\n", cfg.Backend.BaseURL)
	output.Println()
	output.Bold("Chat")
	output.Printf("  Model:     %s\n", cfg.Chat.Model)
	output.Printf("  Base URL:  %s\n", cfg.Chat.BaseURL)
	if cfg.HasChatKey() {
		output.Printf("  API Key:   %s\n", "configured")
	} else {
		output.Printf("  API Key:   %s\n", "not set")
	}
	output.Println()
	output.Bold("Cache")
	output.Printf("  TTL:       %d minutes\n", cfg.Cache.TTLMinutes)
	output.Printf("  Path:      %s\n", cfg.Cache.Path)
}
