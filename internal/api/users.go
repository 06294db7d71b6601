package api

import (
	"context"
	"net/http"

	"github.com/HardenedIot/console/internal/model"
)

func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var out []model.User
	err := c.do(ctx, http.MethodGet, "/users", nil, &out, "users", "list")
	return out, err
}
