package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yourusername/pagescope/internal/adapter/browser"
	"github.com/yourusername/pagescope/internal/adapter/config"
	"github.com/yourusername/pagescope/internal/adapter/github"
	"github.com/yourusername/pagescope/internal/domain"
	"github.com/yourusername/pagescope/internal/ui"
	"github.com/yourusername/pagescope/internal/usecase"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "pagescope",
		Short: "Browse a GitHub user's Pages sites from the terminal",
		Long: `pagescope lists the repositories of a GitHub user that have GitHub Pages
enabled, lets you filter them live, and opens the site or the source
repository in your browser.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse("")
		},
	}

	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [username]",
		Short: "Open the interactive Pages browser",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := ""
			if len(args) > 0 {
				username = args[0]
			}
			return runBrowse(username)
		},
	}
}

func listCmd() *cobra.Command {
	var filter string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list <username>",
		Short: "Print a user's Pages sites without the TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args[0], filter, asJSON)
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Case-insensitive name/description filter")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of formatted text")

	return cmd
}

func configCmd() *cobra.Command {
	var username string
	var token string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Store the default username and API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, username, token)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Default GitHub username")
	cmd.Flags().StringVarP(&token, "token", "t", "", "GitHub API token (raises rate limits)")

	return cmd
}

func runBrowse(username string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if username == "" {
		username = cfg.Username
	}

	client := github.NewClient(context.Background(), cfg.Token)
	uc := usecase.NewListPagesUseCase(client)

	model := ui.NewBrowseModel(uc, browser.Open, username)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("UI error: %w", err)
	}
	return nil
}

func runList(username, filter string, asJSON bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client := github.NewClient(context.Background(), cfg.Token)
	uc := usecase.NewListPagesUseCase(client)

	resp, err := uc.Execute(context.Background(), usecase.ListPagesRequest{Username: username})
	if err != nil {
		ui.PrintError(err.Error())
		return err
	}

	repos := resp.Repos
	if filter != "" {
		repos = domain.Filter(repos, filter)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(repos)
	}

	if len(repos) == 0 {
		ui.PrintInfo(fmt.Sprintf("No repositories with GitHub Pages found for %s.", username))
		return nil
	}

	for _, r := range repos {
		fmt.Println(ui.FormatRepoLine(r, username))
		fmt.Println()
	}
	return nil
}

func runConfig(cmd *cobra.Command, username, token string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	changed := false
	if cmd.Flags().Changed("username") {
		cfg.Username = username
		changed = true
	}
	if cmd.Flags().Changed("token") {
		cfg.Token = token
		changed = true
	}

	if !changed {
		path, err := config.File()
		if err != nil {
			return err
		}
		ui.PrintInfo("Config file: " + path)
		ui.PrintInfo("Set values with --username and --token.")
		return nil
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	ui.PrintInfo("Configuration saved.")
	return nil
}
