package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/HardenedIot/console/internal/api"
	"github.com/HardenedIot/console/internal/config"
	"github.com/HardenedIot/console/internal/format"
	"github.com/HardenedIot/console/internal/session"
	"github.com/HardenedIot/console/internal/tui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type App struct {
	BackendURL string
	DataDir    string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	// Flag defaults come from .env/environment, flags override.
	_ = godotenv.Load()

	app := &App{}

	cmd := &cobra.Command{
		Use:          "hiot",
		Short:        "HardenedIoT management console (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive console
  hiot

  # Scriptable commands
  hiot login --email a@b.com --password secret
  hiot projects list
  hiot tasks list --project smart-lock --status pending --risk 3
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.BackendURL, "backend", envOr("HIOT_BACKEND_URL", config.DefaultBackendURL), "Backend base URL")
	cmd.PersistentFlags().StringVar(&app.DataDir, "data-dir", envOr("HIOT_DATA_DIR", ""), "Session data dir (default ~/.hiot)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newUsersCmd(app))
	cmd.AddCommand(newTeamsCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// connect opens the session vault and wires it to the API client.
// The returned cleanup closes the vault.
func (app *App) connect(ctx context.Context) (*session.Store, *api.Client, func(), error) {
	dir := app.DataDir
	if dir == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, nil, nil, err
		}
		dir = cfg.DataDir
	}

	vault, err := session.OpenVault(ctx, dir)
	if err != nil {
		return nil, nil, nil, err
	}
	client := api.NewClient(strings.TrimRight(app.BackendURL, "/"), vault)
	sess := session.New(vault, client)
	return sess, client, func() { _ = vault.Close() }, nil
}

func runTUI(app *App) error {
	ctx := context.Background()
	sess, client, cleanup, err := app.connect(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	return tui.Run(sess, client)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
