package cli

import (
	"context"

	"github.com/HardenedIot/console/internal/api"
	"github.com/HardenedIot/console/internal/forms"
	"github.com/HardenedIot/console/internal/model"
	"github.com/HardenedIot/console/internal/taskset"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands (all scoped to a project)",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksCreateCmd(app))
	cmd.AddCommand(newTasksUpdateCmd(app))
	cmd.AddCommand(newTasksCompleteCmd(app))
	cmd.AddCommand(newTasksIgnoreCmd(app))
	cmd.AddCommand(newTasksDeleteCmd(app))
	return cmd
}

func projectFlag(cmd *cobra.Command, project *string) {
	cmd.Flags().StringVar(project, "project", "", "Project key (project_id)")
	_ = cmd.MarkFlagRequired("project")
}

func newTasksListCmd(app *App) *cobra.Command {
	var project string
	var filter taskset.Filter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's tasks, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			tasks, err := client.Tasks(cmd.Context(), project)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": taskset.Apply(tasks, filter)})
		},
	}

	projectFlag(cmd, &project)
	cmd.Flags().StringVar(&filter.Technology, "technology", taskset.FilterAll, "Filter by technology (or 'all')")
	cmd.Flags().StringVar(&filter.Status, "status", taskset.FilterAll, "Filter by status: all|pending|completed|ignored")
	cmd.Flags().StringVar(&filter.Risk, "risk", taskset.FilterAll, "Filter by risk level: all|1|2|3")
	return cmd
}

func newTasksCreateCmd(app *App) *cobra.Command {
	var project string
	var form forms.Task

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if form.TaskID == "" {
				form.TaskID = uuid.NewString()
			}
			if errs := form.Validate(); !errs.Ok() {
				return writeErr(cmd, errValidation(errs))
			}

			_, client, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			task, err := client.CreateTask(cmd.Context(), project, form.Model())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": task})
		},
	}

	projectFlag(cmd, &project)
	cmd.Flags().StringVar(&form.TaskID, "id", "", "Task id (generated when omitted)")
	cmd.Flags().StringVar(&form.Name, "name", "", "Task name (3-100 characters)")
	cmd.Flags().StringVar(&form.Description, "description", "", "Description (up to 500 characters)")
	cmd.Flags().StringVar(&form.Technology, "technology", "", "Assessed technology (e.g. wifi, mqtt, zigbee)")
	cmd.Flags().StringVar(&form.RiskLevel, "risk", "", "Risk level: 1 (low), 2 (medium) or 3 (high)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("technology")
	_ = cmd.MarkFlagRequired("risk")
	return cmd
}

func newTasksUpdateCmd(app *App) *cobra.Command {
	var project string
	var form forms.Task

	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update a task's fields (status flags are preserved)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form.TaskID = args[0]
			if errs := form.Validate(); !errs.Ok() {
				return writeErr(cmd, errValidation(errs))
			}

			_, client, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			ctx := cmd.Context()
			existing, err := findTask(ctx, client, project, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			next := form.Model()
			next.Completed = existing.Completed
			next.Ignored = existing.Ignored

			task, err := client.UpdateTask(ctx, project, next)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": task})
		},
	}

	projectFlag(cmd, &project)
	cmd.Flags().StringVar(&form.Name, "name", "", "Task name (3-100 characters)")
	cmd.Flags().StringVar(&form.Description, "description", "", "Description (up to 500 characters)")
	cmd.Flags().StringVar(&form.Technology, "technology", "", "Assessed technology")
	cmd.Flags().StringVar(&form.RiskLevel, "risk", "", "Risk level: 1|2|3")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("technology")
	_ = cmd.MarkFlagRequired("risk")
	return cmd
}

func newTasksCompleteCmd(app *App) *cobra.Command {
	var project string
	var undo bool

	cmd := &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Mark a task completed (clears ignored)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatusChange(cmd, app, project, args[0], taskset.FieldCompleted, !undo)
		},
	}

	projectFlag(cmd, &project)
	cmd.Flags().BoolVar(&undo, "undo", false, "Clear the completed flag instead")
	return cmd
}

func newTasksIgnoreCmd(app *App) *cobra.Command {
	var project string
	var undo bool

	cmd := &cobra.Command{
		Use:   "ignore <task-id>",
		Short: "Mark a task ignored (clears completed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatusChange(cmd, app, project, args[0], taskset.FieldIgnored, !undo)
		},
	}

	projectFlag(cmd, &project)
	cmd.Flags().BoolVar(&undo, "undo", false, "Clear the ignored flag instead")
	return cmd
}

// runStatusChange fetches the current record, merges the flag change, and
// sends the complete record as one update call.
func runStatusChange(cmd *cobra.Command, app *App, project, taskID string, field taskset.StatusField, value bool) error {
	_, client, cleanup, err := app.connect(cmd.Context())
	if err != nil {
		return writeErr(cmd, err)
	}
	defer cleanup()

	ctx := cmd.Context()
	existing, err := findTask(ctx, client, project, taskID)
	if err != nil {
		return writeErr(cmd, err)
	}

	next := taskset.ApplyStatusChange(existing, field, value)
	task, err := client.UpdateTask(ctx, project, next)
	if err != nil {
		return writeErr(cmd, err)
	}
	return writeOut(cmd, app, map[string]any{"data": task})
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			if err := client.DeleteTask(cmd.Context(), project, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "deleted"})
		},
	}

	projectFlag(cmd, &project)
	return cmd
}

func findTask(ctx context.Context, client *api.Client, project, taskID string) (model.Task, error) {
	tasks, err := client.Tasks(ctx, project)
	if err != nil {
		return model.Task{}, err
	}
	for _, t := range tasks {
		if t.TaskID == taskID {
			return t, nil
		}
	}
	return model.Task{}, errNotFound("task", taskID)
}
