package v1

import (
	"fmt"
	"net/http"
	"strings"

	"outreach-backend/internal/delivery/http/response"
	"outreach-backend/internal/domain"
	"outreach-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC   domain.CandidateUsecase
	publicBaseURL string
}

// CreateCandidateRequest is the admin candidate-creation body. The offer
// token and initial status are assigned server side.
type CreateCandidateRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Position   string `json:"position" binding:"required,max=100"`
	Track      string `json:"track" binding:"required,max=100"`
	Experience string `json:"experience" binding:"required,max=100"`
}

type UpdateCandidateRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Position   string `json:"position" binding:"required,max=100"`
	Track      string `json:"track" binding:"required,max=100"`
	Experience string `json:"experience" binding:"required,max=100"`
}

type AddNoteRequest struct {
	Note string `json:"note" binding:"required,max=2000"`
}

// CandidateWithLink decorates a candidate with its shareable offer URL.
type CandidateWithLink struct {
	domain.Candidate
	OfferURL string `json:"offer_url"`
}

func NewCandidateHandler(admin *gin.RouterGroup, candidateUC domain.CandidateUsecase, publicBaseURL string) {
	handler := &CandidateHandler{candidateUC: candidateUC, publicBaseURL: publicBaseURL}

	candidates := admin.Group("/candidates")
	{
		candidates.POST("", handler.Create)
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.GetDetail)
		candidates.PUT("/:id", handler.Update)
		candidates.POST("/:id/sent", handler.MarkSent)
		candidates.DELETE("/:id", handler.Delete)
		candidates.POST("/:id/notes", handler.AddNote)
		candidates.DELETE("/:id/notes/:noteId", handler.DeleteNote)
	}
}

// Create godoc
// @Summary      Create a candidate
// @Description  Creates a candidate with a fresh offer token and returns the shareable offer URL.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        candidate  body      CreateCandidateRequest  true  "Candidate data"
// @Success      201  {object}  response.Response{data=CandidateWithLink}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /admin/candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var req CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Name, position, track and experience are required."))
		return
	}

	candidate := &domain.Candidate{
		Name:       req.Name,
		Position:   req.Position,
		Track:      req.Track,
		Experience: req.Experience,
	}
	created, err := h.candidateUC.Create(c.Request.Context(), candidate)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created successfully", h.withLink(*created))
}

// List godoc
// @Summary      List candidates
// @Description  Lists candidates, optionally filtered by status (comma separated) and a name/position search term.
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Comma-separated statuses"
// @Param        search  query     string  false  "Name or position search"
// @Success      200  {object}  response.Response{data=[]CandidateWithLink}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /admin/candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	filter := domain.CandidateFilter{
		Search: c.Query("search"),
	}
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			filter.Statuses = append(filter.Statuses, domain.Status(strings.TrimSpace(s)))
		}
	}

	candidates, err := h.candidateUC.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	result := make([]CandidateWithLink, 0, len(candidates))
	for _, candidate := range candidates {
		result = append(result, h.withLink(candidate))
	}
	response.Success(c, http.StatusOK, "Candidates retrieved successfully", result)
}

// GetDetail godoc
// @Summary      Get candidate detail
// @Description  Returns the candidate together with their page view, responses and notes.
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.CandidateDetail}
// @Failure      404  {object}  response.Response
// @Router       /admin/candidates/{id} [get]
func (h *CandidateHandler) GetDetail(c *gin.Context) {
	detail, err := h.candidateUC.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate retrieved successfully", detail)
}

// Update godoc
// @Summary      Update a candidate
// @Description  Updates the editable candidate fields. The offer token and status are never changed here.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string                  true  "Candidate ID"
// @Param        candidate  body      UpdateCandidateRequest  true  "Candidate data"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/candidates/{id} [put]
func (h *CandidateHandler) Update(c *gin.Context) {
	var req UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Name, position, track and experience are required."))
		return
	}

	candidate := &domain.Candidate{
		ID:         c.Param("id"),
		Name:       req.Name,
		Position:   req.Position,
		Track:      req.Track,
		Experience: req.Experience,
	}
	if err := h.candidateUC.Update(c.Request.Context(), candidate); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate updated successfully", nil)
}

// MarkSent godoc
// @Summary      Mark an offer as sent
// @Description  Records that the offer link was delivered to the candidate. Safe to repeat.
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/candidates/{id}/sent [post]
func (h *CandidateHandler) MarkSent(c *gin.Context) {
	if err := h.candidateUC.MarkSent(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate marked as sent", nil)
}

// Delete godoc
// @Summary      Delete a candidate
// @Description  Removes the candidate and everything recorded about them.
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.candidateUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate deleted successfully", nil)
}

// AddNote godoc
// @Summary      Add a note to a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Candidate ID"
// @Param        note  body      AddNoteRequest  true  "Note data"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/candidates/{id}/notes [post]
func (h *CandidateHandler) AddNote(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Note text is required."))
		return
	}

	note := &domain.CandidateNote{
		CandidateID: c.Param("id"),
		Note:        req.Note,
	}
	if err := h.candidateUC.AddNote(c.Request.Context(), note); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Note added successfully", note)
}

// DeleteNote godoc
// @Summary      Delete a candidate note
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "Candidate ID"
// @Param        noteId  path      string  true  "Note ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/candidates/{id}/notes/{noteId} [delete]
func (h *CandidateHandler) DeleteNote(c *gin.Context) {
	if err := h.candidateUC.DeleteNote(c.Request.Context(), c.Param("noteId")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Note deleted successfully", nil)
}

func (h *CandidateHandler) withLink(candidate domain.Candidate) CandidateWithLink {
	return CandidateWithLink{
		Candidate: candidate,
		OfferURL:  fmt.Sprintf("%s/offer/%s", strings.TrimRight(h.publicBaseURL, "/"), candidate.UniqueToken),
	}
}
