package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/studiowebux/cloudide/internal/catalog"
	"github.com/studiowebux/cloudide/internal/cli"
	"github.com/studiowebux/cloudide/internal/config"
	"github.com/studiowebux/cloudide/internal/keybinds"
	"github.com/studiowebux/cloudide/internal/logging"
	"github.com/studiowebux/cloudide/internal/terminal"
	"github.com/studiowebux/cloudide/internal/tui"
	"github.com/studiowebux/cloudide/internal/version"
	"github.com/studiowebux/cloudide/internal/workspace"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cloudide",
	Short: "cloudide - a code editor shell in the terminal",
	Long: `cloudide is a code editor shell: a document explorer, editor tabs with
in-memory edit buffers and a simulated terminal.

Nothing is written back: edits live in memory until the program exits.

Examples:
  cloudide                             # Open the built-in sample project
  cloudide --catalog project.yaml      # Open documents from a catalog file
  cloudide --no-terminal               # Start with the terminal hidden
  cloudide tree                        # Print the catalog
  cloudide term ls                     # Run one simulated command`,
	Version:       version.Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		return runTUI(settings)
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the document catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		c, err := loadCatalog(settings.Catalog)
		if err != nil {
			return err
		}
		return cli.PrintTree(cmd.OutOrStdout(), c, flagFormat)
	},
}

var catCmd = &cobra.Command{
	Use:   "cat [document-id]",
	Short: "Print a document's original content",
	Long: `Print a document's original content.

Without an id an interactive picker lists every document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		c, err := loadCatalog(settings.Catalog)
		if err != nil {
			return err
		}
		t, err := c.Tree()
		if err != nil {
			return err
		}

		var id string
		if len(args) > 0 {
			id = args[0]
		} else if id, err = cli.SelectDocument(t.Documents()); err != nil {
			return err
		}
		return cli.Cat(cmd.OutOrStdout(), t, id)
	},
}

var termCmd = &cobra.Command{
	Use:   "term [command...]",
	Short: "Run the command simulator",
	Long: `Run the command simulator used by the terminal pane.

With arguments they are run as one command line. Otherwise one command
is read per line from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		session := terminal.NewSession(settings.TerminalBanner, settings.Prompt)
		return cli.RunTerm(cmd.InOrStdin(), cmd.OutOrStdout(), session, args)
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Manage keybindings",
}

var keybindsExportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the default keybindings as JSON",
	Long: `Write the default keybindings as JSON, to stdout with "-" or to a file.

The default path is ~/.cloudide/keybinds.json. An existing file is kept
unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		path := config.KeybindsFile
		if len(args) > 0 {
			path = args[0]
		}

		if path == "-" {
			return writeJSON(cmd, keybinds.ExportDefaults())
		}

		if _, err := os.Stat(path); err == nil && !flagForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := os.MkdirAll(filepath.Dir(path), config.DirPermissions); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
		if err := keybinds.SaveConfig(keybinds.ExportDefaults(), path); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var keybindsValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a keybindings file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		path := settings.Keybinds
		if len(args) > 0 {
			path = args[0]
		}

		cfg, err := keybinds.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}

		result := keybinds.NewValidator().ValidateConfig(cfg)
		fmt.Fprintln(cmd.OutOrStdout(), result.String())
		if result.HasErrors() {
			return errors.New("keybindings have errors")
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
	},
}

// Flags for the root command
var (
	flagConfig           string
	flagCatalog          string
	flagLogLevel         string
	flagNoTerminal       bool
	flagCollapsedSidebar bool
)

// Flags for subcommands
var (
	flagFormat string
	flagForce  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.cloudide/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flagCatalog, "catalog", "c", "", "Catalog file (.yaml, .yml or .json); built-in sample when empty")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&flagNoTerminal, "no-terminal", false, "Start with the terminal hidden")
	rootCmd.Flags().BoolVar(&flagCollapsedSidebar, "collapsed-sidebar", false, "Start with the sidebar collapsed")

	treeCmd.Flags().StringVarP(&flagFormat, "format", "f", "text", "Output format (text/json/yaml)")
	keybindsExportCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")

	keybindsCmd.AddCommand(keybindsExportCmd)
	keybindsCmd.AddCommand(keybindsValidateCmd)

	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(keybindsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSettings resolves config file, environment and flags, in increasing precedence
func loadSettings() (*config.Settings, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	settings, err := config.Load(config.New(flagConfig))
	if err != nil {
		return nil, err
	}

	if flagCatalog != "" {
		settings.Catalog = flagCatalog
	}
	if flagLogLevel != "" {
		settings.LogLevel = flagLogLevel
	}
	if flagNoTerminal {
		settings.TerminalVisible = false
	}
	if flagCollapsedSidebar {
		settings.SidebarExpanded = false
	}
	if _, err := logrus.ParseLevel(settings.LogLevel); err != nil {
		logging.Stderr().WithField("component", "config").
			Warnf("unknown log level %q, using info", settings.LogLevel)
	}
	return settings, nil
}

// loadCatalog reads path, or returns the sample project when it is empty
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Sample(), nil
	}
	return catalog.Load(path)
}

// runTUI builds the workspace and starts the interactive TUI
func runTUI(settings *config.Settings) error {
	logger, closeLog, err := logging.OpenFile(settings.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logrus.NewEntry(logger)

	c, err := loadCatalog(settings.Catalog)
	if err != nil {
		return err
	}
	t, err := c.Tree()
	if err != nil {
		return err
	}

	registry, err := keybinds.LoadOrDefault(settings.Keybinds)
	if err != nil {
		return err
	}
	if result := keybinds.NewValidator().ValidateRegistry(registry); result.HasWarnings() {
		for _, w := range result.Warnings {
			log.WithField("component", "keybinds").Warn(w.Error())
		}
	}

	state := workspace.NewState(t, workspace.Options{
		SidebarCollapsed: !settings.SidebarExpanded,
		TerminalHidden:   !settings.TerminalVisible,
	})

	log.WithFields(logrus.Fields{
		"catalog":   settings.Catalog,
		"documents": len(t.Documents()),
		"version":   version.Version,
	}).Info("workspace loaded")

	return tui.Run(workspace.NewController(state, log), tui.Options{
		Keybinds: registry,
		Session:  terminal.NewSession(settings.TerminalBanner, settings.Prompt),
		Logger:   log,
	})
}

// writeJSON prints the keybinding config to stdout
func writeJSON(cmd *cobra.Command, cfg *keybinds.Config) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}
