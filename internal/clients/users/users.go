// users: HTTP-шлюз users-сервиса.
package users

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pribylovaa/go-music-profiles/internal/clients"
	"github.com/pribylovaa/go-music-profiles/internal/clients/upstream"
	"github.com/pribylovaa/go-music-profiles/internal/models"
)

// Client реализует clients.Users поверх upstream.Client.
type Client struct {
	up *upstream.Client
}

var _ clients.Users = (*Client)(nil)

func New(up *upstream.Client) *Client {
	return &Client{up: up}
}

// CreateUser: POST /users.
func (c *Client) CreateUser(ctx context.Context, req models.UserCreate) (*models.User, error) {
	const op = "clients/users/CreateUser"

	var out models.User
	if _, err := c.up.Do(ctx, http.MethodPost, "/users", nil, req, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// User: GET /users/{id}.
func (c *Client) User(ctx context.Context, id string) (*models.User, error) {
	const op = "clients/users/User"

	var out models.User
	if _, err := c.up.Do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// Users: GET /users?user_ids=a,b. Без id параметр не передаётся.
func (c *Client) Users(ctx context.Context, ids []string) ([]models.User, error) {
	const op = "clients/users/Users"

	var q url.Values
	if len(ids) > 0 {
		q = url.Values{"user_ids": {strings.Join(ids, ",")}}
	}

	var out []models.User
	if _, err := c.up.Do(ctx, http.MethodGet, "/users", q, nil, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// UpdateUser: PUT /users/{id}; в теле только заданные поля.
func (c *Client) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	const op = "clients/users/UpdateUser"

	var out models.User
	if _, err := c.up.Do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), nil, upd, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}
