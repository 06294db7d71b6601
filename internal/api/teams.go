package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/HardenedIot/console/internal/model"
)

// Teams are addressed by their stable human key (team_id), never by the
// numeric surrogate.

func (c *Client) Teams(ctx context.Context) ([]model.Team, error) {
	var out []model.Team
	err := c.do(ctx, http.MethodGet, "/teams", nil, &out, "teams", "list")
	return out, err
}

func (c *Client) Team(ctx context.Context, teamID string) (model.Team, error) {
	var out model.Team
	err := c.do(ctx, http.MethodGet, "/teams/"+url.PathEscape(teamID), nil, &out, "team", "fetch")
	return out, err
}

func (c *Client) CreateTeam(ctx context.Context, team model.Team) (model.Team, error) {
	var out model.Team
	err := c.do(ctx, http.MethodPost, "/teams", team, &out, "team", "create")
	return out, err
}

func (c *Client) UpdateTeam(ctx context.Context, teamID string, team model.Team) (model.Team, error) {
	var out model.Team
	err := c.do(ctx, http.MethodPatch, "/teams/"+url.PathEscape(teamID), team, &out, "team", "update")
	return out, err
}

func (c *Client) DeleteTeam(ctx context.Context, teamID string) error {
	return c.do(ctx, http.MethodDelete, "/teams/"+url.PathEscape(teamID), nil, nil, "team", "delete")
}
