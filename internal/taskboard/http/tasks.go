package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
)

type TasksHandler struct {
	TaskService *service.TaskService
}

// HandleList lists every task.
//
//	@Summary		List tasks
//	@Description	Every task, newest first. No session needed.
//	@Tags			Tasks
//	@Produce		json
//	@Success		200	{object}	boardsdk.TaskListResponse
//	@Failure		429	{object}	boardsdk.APIError
//	@Failure		500	{object}	boardsdk.APIError
//	@Router			/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.TaskService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := boardsdk.TaskListResponse{Items: make([]boardsdk.TaskResponse, 0, len(tasks))}
	for _, t := range tasks {
		out.Items = append(out.Items, boardsdk.TaskResponse{ID: t.ID, Name: t.Name})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate adds a task written by the caller.
//
//	@Summary	Create a task
//	@Tags		Tasks
//	@Security	CookieAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		boardsdk.CreateTaskRequest	true	"Task"
//	@Success	201		{object}	boardsdk.TaskResponse
//	@Failure	400		{object}	boardsdk.APIError	"Missing or overlong name"
//	@Failure	401		{object}	boardsdk.APIError
//	@Failure	429		{object}	boardsdk.APIError
//	@Failure	500		{object}	boardsdk.APIError
//	@Router		/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := PrincipalFromContext(r.Context())
	if !ok {
		boardsdk.ErrAuthenticationRequired.WriteError(w)
		return
	}

	var req boardsdk.CreateTaskRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		boardsdk.ErrInvalidRequestBody.WriteError(w)
		return
	}
	if errs := req.Validate(); errs != nil {
		writeValidation(w, errs)
		return
	}

	t, err := h.TaskService.Create(r.Context(), req.Name, p.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, boardsdk.TaskResponse{ID: t.ID, Name: t.Name})
}
