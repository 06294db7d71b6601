package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/HardenedIot/console/internal/model"
)

func (c *Client) Projects(ctx context.Context) ([]model.Project, error) {
	var out []model.Project
	err := c.do(ctx, http.MethodGet, "/projects", nil, &out, "projects", "list")
	return out, err
}

func (c *Client) Project(ctx context.Context, projectID string) (model.Project, error) {
	var out model.Project
	err := c.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID), nil, &out, "project", "fetch")
	return out, err
}

func (c *Client) CreateProject(ctx context.Context, project model.Project) (model.Project, error) {
	var out model.Project
	err := c.do(ctx, http.MethodPost, "/projects", project, &out, "project", "create")
	return out, err
}

func (c *Client) UpdateProject(ctx context.Context, projectID string, project model.Project) (model.Project, error) {
	var out model.Project
	err := c.do(ctx, http.MethodPatch, "/projects/"+url.PathEscape(projectID), project, &out, "project", "update")
	return out, err
}

func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+url.PathEscape(projectID), nil, nil, "project", "delete")
}

// TeamProjects lists projects owned by one team. The backend has no
// dedicated endpoint for this, so it is derived from the full listing.
func (c *Client) TeamProjects(ctx context.Context, teamID string) ([]model.Project, error) {
	all, err := c.Projects(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Project, 0, len(all))
	for _, p := range all {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}
