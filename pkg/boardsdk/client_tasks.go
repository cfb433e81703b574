package boardsdk

import (
	"context"
	"net/http"
)

func (c *SDKClient) ListTasks(ctx context.Context) (*TaskListResponse, error) {
	var out TaskListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/tasks", nil, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTask requires a signed-in session.
func (c *SDKClient) CreateTask(ctx context.Context, req CreateTaskRequest) (*TaskResponse, error) {
	var out TaskResponse
	if err := c.doJSON(ctx, http.MethodPost, "/tasks", req, &out, http.StatusCreated, nil); err != nil {
		return nil, err
	}
	return &out, nil
}
