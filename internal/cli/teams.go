package cli

import (
	"github.com/HardenedIot/console/internal/forms"

	"github.com/spf13/cobra"
)

func newTeamsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Team commands",
	}
	cmd.AddCommand(newTeamsListCmd(app))
	cmd.AddCommand(newTeamsShowCmd(app))
	cmd.AddCommand(newTeamsProjectsCmd(app))
	cmd.AddCommand(newTeamsCreateCmd(app))
	cmd.AddCommand(newTeamsUpdateCmd(app))
	cmd.AddCommand(newTeamsDeleteCmd(app))
	return cmd
}

func newTeamsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			teams, err := client.Teams(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": teams})
		},
	}
}

func newTeamsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <team-id>",
		Short: "Show one team with its roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			team, err := client.Team(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": team})
		},
	}
}

func newTeamsProjectsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "projects <team-id>",
		Short: "List one team's projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			projects, err := client.TeamProjects(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": projects})
		},
	}
}

func newTeamsCreateCmd(app *App) *cobra.Command {
	var form forms.Team

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a team",
		RunE: func(cmd *cobra.Command, args []string) error {
			if errs := form.Validate(); !errs.Ok() {
				return writeErr(cmd, errValidation(errs))
			}

			_, client, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			team, err := client.CreateTeam(cmd.Context(), form.Model())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": team})
		},
	}

	cmd.Flags().StringVar(&form.TeamID, "id", "", "Stable team key (team_id)")
	cmd.Flags().StringVar(&form.TeamName, "name", "", "Team name (3-50 characters)")
	cmd.Flags().StringVar(&form.Description, "description", "", "Description (up to 200 characters)")
	cmd.Flags().BoolVar(&form.Private, "private", false, "Hide the team from the public listing")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newTeamsUpdateCmd(app *App) *cobra.Command {
	var form forms.Team

	cmd := &cobra.Command{
		Use:   "update <team-id>",
		Short: "Update a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form.TeamID = args[0]
			if errs := form.Validate(); !errs.Ok() {
				return writeErr(cmd, errValidation(errs))
			}

			_, client, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			team, err := client.UpdateTeam(cmd.Context(), args[0], form.Model())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": team})
		},
	}

	cmd.Flags().StringVar(&form.TeamName, "name", "", "Team name (3-50 characters)")
	cmd.Flags().StringVar(&form.Description, "description", "", "Description (up to 200 characters)")
	cmd.Flags().BoolVar(&form.Private, "private", false, "Hide the team from the public listing")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newTeamsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <team-id>",
		Short: "Delete a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			if err := client.DeleteTeam(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "deleted"})
		},
	}
}
