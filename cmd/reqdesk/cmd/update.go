// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"

	"github.com/green/reqdesk/internal/logger"
)

const repoSlug = "atgreen/reqdesk"

var checkOnly bool

var errDevBuild = errors.New("cannot update development build; install a release version")

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update reqdesk to the latest version",
	Long:  `Check for and install updates from GitHub releases.`,
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only check for updates, don't install")
}

// parseVersion reads a build version such as "v1.2.3" or "1.2.3+dirty"
func parseVersion(s string) (semver.Version, error) {
	if s == "" || s == "dev" {
		return semver.Version{}, errDevBuild
	}
	s = strings.TrimPrefix(s, "v")
	s, _, _ = strings.Cut(s, "+")
	v, err := semver.Parse(s)
	if err != nil {
		return semver.Version{}, fmt.Errorf("invalid version format %q: %w", s, err)
	}
	return v, nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	v, err := parseVersion(version)
	if err != nil {
		return err
	}

	fmt.Printf("Current version: %s\n", version)
	fmt.Println("Checking for updates...")

	updater, err := selfupdate.NewUpdater(selfupdate.Config{})
	if err != nil {
		return fmt.Errorf("failed to create updater: %w", err)
	}
	latest, found, err := updater.DetectLatest(repoSlug)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		fmt.Println("No releases found.")
		return nil
	}
	logger.Debug("latest release v%s, running v%s", latest.Version, v)

	if latest.Version.LTE(v) {
		fmt.Printf("Already up to date (latest: v%s)\n", latest.Version)
		return nil
	}
	fmt.Printf("New version available: v%s\n", latest.Version)
	if checkOnly {
		fmt.Println("\nRun 'reqdesk update' to install.")
		return nil
	}

	fmt.Println("Downloading and installing...")
	release, err := updater.UpdateSelf(v, repoSlug)
	if err != nil {
		return fmt.Errorf("failed to update: %w", err)
	}
	fmt.Printf("Successfully updated to v%s\n", release.Version)
	if latest.ReleaseNotes != "" {
		fmt.Println("\nRelease notes:")
		fmt.Println(latest.ReleaseNotes)
	}
	return nil
}
