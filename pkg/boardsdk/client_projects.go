package boardsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListProjects returns one page of the projects the caller is a member of.
// Zero values leave the choice to the server (page 1, 10 per page).
func (c *SDKClient) ListProjects(ctx context.Context, page, limit int) (*ProjectListResponse, error) {
	q := url.Values{}
	if page != 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit != 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/projects"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out ProjectListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProject requires an admin session.
func (c *SDKClient) CreateProject(ctx context.Context, req CreateProjectRequest) (*ProjectResponse, error) {
	var out ProjectResponse
	if err := c.doJSON(ctx, http.MethodPost, "/projects", req, &out, http.StatusCreated, nil); err != nil {
		return nil, err
	}
	return &out, nil
}
