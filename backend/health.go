package backend

import "context"

// HealthCheck probes the backend's health endpoint.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.get(ctx, "/utils/health-check", nil, nil)
}
