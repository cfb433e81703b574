package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
)

type ProjectsHandler struct {
	ProjectService *service.ProjectService
}

// HandleList pages through the caller's projects.
//
//	@Summary		List my projects
//	@Description	Projects the caller is a member of, newest first. page below 1 becomes 1; limit defaults to 10 and is capped at 100.
//	@Tags			Projects
//	@Security		CookieAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number"		default(1)
//	@Param			limit	query		int	false	"Items per page"	default(10)
//	@Success		200		{object}	boardsdk.ProjectListResponse
//	@Failure		400		{object}	boardsdk.APIError	"page or limit is not an integer"
//	@Failure		401		{object}	boardsdk.APIError
//	@Failure		429		{object}	boardsdk.APIError
//	@Failure		500		{object}	boardsdk.APIError
//	@Router			/projects [get].
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	p, ok := PrincipalFromContext(r.Context())
	if !ok {
		boardsdk.ErrAuthenticationRequired.WriteError(w)
		return
	}

	page, errPage := queryInt(r, "page")
	limit, errLimit := queryInt(r, "limit")
	if errPage != nil || errLimit != nil {
		boardsdk.ErrInvalidQuery.WriteError(w)
		return
	}

	res, err := h.ProjectService.List(r.Context(), p.UserID, page, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := boardsdk.ProjectListResponse{
		Projects: make([]boardsdk.ProjectResponse, 0, len(res.Projects)),
		Pagination: boardsdk.Pagination{
			Page:       res.Page,
			Limit:      res.Limit,
			Total:      res.Total,
			TotalPages: res.TotalPages,
		},
	}
	for _, pr := range res.Projects {
		out.Projects = append(out.Projects, boardsdk.ProjectResponse{ID: pr.ID, Name: pr.Name, CreatedBy: pr.CreatedBy})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate creates a project owned by the caller.
//
//	@Summary	Create a project
//	@Tags		Projects
//	@Security	CookieAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		boardsdk.CreateProjectRequest	true	"Project"
//	@Success	201		{object}	boardsdk.ProjectResponse
//	@Failure	400		{object}	boardsdk.APIError	"Missing or overlong name"
//	@Failure	401		{object}	boardsdk.APIError
//	@Failure	403		{object}	boardsdk.APIError	"Admin access required"
//	@Failure	429		{object}	boardsdk.APIError
//	@Failure	500		{object}	boardsdk.APIError
//	@Router		/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := PrincipalFromContext(r.Context())
	if !ok {
		boardsdk.ErrAuthenticationRequired.WriteError(w)
		return
	}

	var req boardsdk.CreateProjectRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		boardsdk.ErrInvalidRequestBody.WriteError(w)
		return
	}
	if errs := req.Validate(); errs != nil {
		writeValidation(w, errs)
		return
	}

	pr, err := h.ProjectService.Create(r.Context(), req.Name, p.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, boardsdk.ProjectResponse{ID: pr.ID, Name: pr.Name, CreatedBy: pr.CreatedBy})
}

// queryInt reads an optional integer query parameter; absent means 0.
func queryInt(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
