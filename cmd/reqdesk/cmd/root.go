// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/green/reqdesk/internal/config"
	"github.com/green/reqdesk/internal/logger"
	"github.com/green/reqdesk/internal/tui"
)

var (
	cfgDir    string
	debugMode bool
	themeName string
	pageSize  int
	startPath string
	configMgr *config.Manager
	version   string
)

// SetVersion sets the application version (called from main)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:     "reqdesk",
	Short:   "Terminal back office for insurance requests",
	Version: "dev", // Will be overridden by SetVersion
	Long: `A terminal dashboard for browsing and filtering insurance requests.
Requests open in floating windows that can be dragged, hidden and maximized.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Close()
		return tui.Run(tui.Options{
			Version: version,
			Config:  configMgr,
			Route:   startPath,
		})
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultCfgDir, err := config.DefaultConfigDir()
	if err != nil {
		defaultCfgDir = "~/.config/reqdesk"
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", defaultCfgDir, "config directory")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	// TUI-specific flags (on root command, not persistent)
	rootCmd.Flags().StringVar(&themeName, "theme", "", "theme: dark, light or auto")
	rootCmd.Flags().IntVar(&pageSize, "page-size", 0, "rows per page (25, 50 or 100)")
	rootCmd.Flags().StringVar(&startPath, "route", "/", "page to start on, e.g. /stats")
}

func initApp(cmd *cobra.Command) error {
	var err error

	if cfgDir == "" {
		cfgDir, err = config.DefaultConfigDir()
		if err != nil {
			return fmt.Errorf("failed to get config directory: %w", err)
		}
	}

	configMgr = config.NewManager(cfgDir)
	if err := configMgr.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// flags override the file
	cfg := *configMgr.Get()
	if cmd.Flags().Changed("theme") {
		cfg.UI.Theme = themeName
	}
	if cmd.Flags().Changed("page-size") {
		cfg.UI.PageSize = pageSize
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	configMgr.Set(&cfg)

	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = logger.DefaultLogPath
	}
	if err := logger.Init(logPath); err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	logger.SetLevel(logger.ParseLevel(cfg.Log.Level))
	if debugMode {
		logger.SetDebug(true)
	}
	logger.Debug("config loaded from %s", configMgr.Path())
	return nil
}
