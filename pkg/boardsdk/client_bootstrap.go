package boardsdk

import (
	"context"
	"net/http"
)

// BootstrapTokenHeader carries the server's BOOTSTRAP_TOKEN.
const BootstrapTokenHeader = "X-Bootstrap-Token"

// Bootstrap creates the first admin account. It only succeeds once, on a
// server with no accounts.
func (c *SDKClient) Bootstrap(ctx context.Context, token string, req BootstrapRequest) (*BootstrapResponse, error) {
	var out BootstrapResponse
	headers := map[string]string{BootstrapTokenHeader: token}
	if err := c.doJSON(ctx, http.MethodPost, "/bootstrap", req, &out, http.StatusCreated, headers); err != nil {
		return nil, err
	}
	return &out, nil
}
