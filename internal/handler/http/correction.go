package http

import (
	"encoding/json"
	"net/http"

	"github.com/attendhub/attendhub-backend-go/internal/domain/correction"
	"github.com/attendhub/attendhub-backend-go/internal/handler/http/middleware"
	"github.com/attendhub/attendhub-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CorrectionHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type correctionHandlerImpl struct {
	correctionService correction.Service
}

func NewCorrectionHandler(correctionService correction.Service) CorrectionHandler {
	return &correctionHandlerImpl{
		correctionService: correctionService,
	}
}

// Submit implements CorrectionHandler.
func (h *correctionHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req correction.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.correctionService.Submit(r.Context(), actor.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Correction request submitted", result)
}

// List implements CorrectionHandler.
func (h *correctionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.correctionService.List(r.Context(), actor.UserID, actor.CanApprove())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements CorrectionHandler.
func (h *correctionHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	correctionID := chi.URLParam(r, "id")

	var req correction.ResolveRequest
	if r.Body != nil {
		// Remarks are optional; an empty body is fine.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	result, err := h.correctionService.Approve(r.Context(), correctionID, actor.UserID, req.Remarks)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Correction request approved", result)
}

// Reject implements CorrectionHandler.
func (h *correctionHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	correctionID := chi.URLParam(r, "id")

	var req correction.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.correctionService.Reject(r.Context(), correctionID, actor.UserID, req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Correction request rejected", result)
}
