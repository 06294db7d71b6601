package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/HardenedIot/console/internal/model"
)

// Task endpoints hang off the project: /project/{projectId}/tasks.
// The backend uses PUT for create, PATCH with the complete record for
// update, and a body-addressed DELETE ({"task_id": ...}).

func taskPath(projectID string) string {
	return "/project/" + url.PathEscape(projectID) + "/tasks"
}

func (c *Client) Tasks(ctx context.Context, projectID string) ([]model.Task, error) {
	var out []model.Task
	err := c.do(ctx, http.MethodGet, taskPath(projectID), nil, &out, "tasks", "list")
	return out, err
}

func (c *Client) CreateTask(ctx context.Context, projectID string, task model.Task) (model.Task, error) {
	var out model.Task
	err := c.do(ctx, http.MethodPut, taskPath(projectID), task, &out, "task", "create")
	return out, err
}

// UpdateTask sends the complete merged record as one update call.
func (c *Client) UpdateTask(ctx context.Context, projectID string, task model.Task) (model.Task, error) {
	var out model.Task
	err := c.do(ctx, http.MethodPatch, taskPath(projectID), task, &out, "task", "update")
	return out, err
}

type taskDeleteRequest struct {
	TaskID string `json:"task_id"`
}

func (c *Client) DeleteTask(ctx context.Context, projectID, taskID string) error {
	return c.do(ctx, http.MethodDelete, taskPath(projectID), taskDeleteRequest{TaskID: taskID}, nil, "task", "delete")
}
