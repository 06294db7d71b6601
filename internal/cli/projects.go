package cli

import (
	"github.com/HardenedIot/console/internal/forms"

	"github.com/spf13/cobra"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project commands",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsShowCmd(app))
	cmd.AddCommand(newProjectsCreateCmd(app))
	cmd.AddCommand(newProjectsUpdateCmd(app))
	cmd.AddCommand(newProjectsDeleteCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			projects, err := client.Projects(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": projects})
		},
	}
}

func newProjectsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			project, err := client.Project(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": project})
		},
	}
}

func projectFormFlags(cmd *cobra.Command, form *forms.Project) {
	cmd.Flags().StringVar(&form.ProjectName, "name", "", "Project name (3-50 characters)")
	cmd.Flags().StringVar(&form.TeamID, "team", "", "Owning team (team_id)")
	cmd.Flags().StringVar(&form.Description, "description", "", "Description (up to 500 characters)")
	cmd.Flags().StringVar(&form.URL, "url", "", "Project URL")
	cmd.Flags().BoolVar(&form.Private, "private", false, "Hide the project from the public listing")
}

func newProjectsCreateCmd(app *App) *cobra.Command {
	var form forms.Project

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if errs := form.Validate(); !errs.Ok() {
				return writeErr(cmd, errValidation(errs))
			}

			_, client, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			project, err := client.CreateProject(cmd.Context(), form.Model())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": project})
		},
	}

	cmd.Flags().StringVar(&form.ProjectID, "id", "", "Stable project key (project_id)")
	projectFormFlags(cmd, &form)
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("team")
	return cmd
}

func newProjectsUpdateCmd(app *App) *cobra.Command {
	var form forms.Project

	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form.ProjectID = args[0]
			if errs := form.Validate(); !errs.Ok() {
				return writeErr(cmd, errValidation(errs))
			}

			_, client, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			project, err := client.UpdateProject(cmd.Context(), args[0], form.Model())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": project})
		},
	}

	projectFormFlags(cmd, &form)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("team")
	return cmd
}

func newProjectsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			if err := client.DeleteProject(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "deleted"})
		},
	}
}
