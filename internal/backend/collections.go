package backend

import (
	"context"
	"net/http"

	"github.com/servidz/console/internal/domain/collection"
)

// Users lists every marketplace customer.
func (c *Client) Users(ctx context.Context) ([]collection.Record, error) {
	return c.listAll(ctx, "list users", "/users/all")
}

// Taskers lists every service provider.
func (c *Client) Taskers(ctx context.Context) ([]collection.Record, error) {
	return c.listAll(ctx, "list taskers", "/taskers/all")
}

// Bookings lists every booking.
func (c *Client) Bookings(ctx context.Context) ([]collection.Record, error) {
	return c.listAll(ctx, "list bookings", "/bookings/all")
}

// SetUserStatus changes a user's account status.
func (c *Client) SetUserStatus(ctx context.Context, id string, status collection.Status) error {
	return c.setStatus(ctx, "set user status", "/users/"+escape(id)+"/status", status)
}

// SetTaskerStatus changes a tasker's account status.
func (c *Client) SetTaskerStatus(ctx context.Context, id string, status collection.Status) error {
	return c.setStatus(ctx, "set tasker status", "/taskers/"+escape(id)+"/status", status)
}

func (c *Client) listAll(ctx context.Context, op, path string) ([]collection.Record, error) {
	cl, err := c.jsonCall(op, http.MethodGet, path, nil, true, false)
	if err != nil {
		return nil, err
	}
	var records []collection.Record
	if err := c.do(ctx, cl, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) setStatus(ctx context.Context, op, path string, status collection.Status) error {
	cl, err := c.jsonCall(op, http.MethodPatch, path, map[string]string{"status": string(status)}, true, true)
	if err != nil {
		return err
	}
	return c.do(ctx, cl, nil)
}
