package v1

import (
	"net/http"

	"outreach-backend/internal/delivery/http/response"
	"outreach-backend/internal/domain"
	"outreach-backend/pkg/apperror"
	"outreach-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type RespondHandler struct {
	responseUC domain.ResponseUsecase
}

// AcceptRequest is the public acceptance submission body
type AcceptRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Contact     string `json:"contact"`
	CandidateID string `json:"candidate_id"`
}

// DeclineRequest is the public decline submission body
type DeclineRequest struct {
	Recipient    string `json:"recipient"`
	AllowContact bool   `json:"allow_contact"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone" binding:"omitempty,valid_phone"`
	CandidateID  string `json:"candidate_id"`
}

// InquiryRequest is the public inquiry submission body
type InquiryRequest struct {
	Email       string `json:"email" binding:"required"`
	Message     string `json:"message" binding:"required"`
	CandidateID string `json:"candidate_id"`
}

// NewRespondHandler registers the public response-ingestion routes. Rate
// limiting is applied per route in the router, before these run.
func NewRespondHandler(public *gin.RouterGroup, responseUC domain.ResponseUsecase, limits map[string]gin.HandlerFunc) {
	handler := &RespondHandler{responseUC: responseUC}

	respond := public.Group("/respond")
	{
		respond.POST("/accept", limits["accept"], handler.SubmitAcceptance)
		respond.POST("/decline", limits["decline"], handler.SubmitDecline)
		respond.POST("/inquiry", limits["inquiry"], handler.SubmitInquiry)
	}
}

// SubmitAcceptance godoc
// @Summary      Submit interview acceptance
// @Description  Candidate accepts the offer. Public endpoint, rate limited per IP.
// @Tags         respond
// @Accept       json
// @Produce      json
// @Param        acceptance  body      AcceptRequest  true  "Acceptance data"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /respond/accept [post]
func (h *RespondHandler) SubmitAcceptance(c *gin.Context) {
	var req AcceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logValidationFailure(c, err)
		c.Error(apperror.BadRequest("Name and email are required."))
		return
	}

	sub := domain.AcceptanceSubmission{
		Subject: subjectFor(req.CandidateID, req.Name),
		Name:    req.Name,
		Email:   req.Email,
		Contact: req.Contact,
	}
	if err := h.responseUC.SubmitAcceptance(c.Request.Context(), sub); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Your acceptance has been recorded. We will contact you soon!", nil)
}

// SubmitDecline godoc
// @Summary      Submit offer decline
// @Description  Candidate declines the offer, optionally leaving contact details.
// @Tags         respond
// @Accept       json
// @Produce      json
// @Param        decline  body      DeclineRequest  true  "Decline data"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /respond/decline [post]
func (h *RespondHandler) SubmitDecline(c *gin.Context) {
	var req DeclineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logValidationFailure(c, err)
		c.Error(apperror.BadRequest("Invalid request body."))
		return
	}

	sub := domain.DeclineSubmission{
		Subject:      subjectFor(req.CandidateID, req.Recipient),
		AllowContact: req.AllowContact,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
	}
	if err := h.responseUC.SubmitDecline(c.Request.Context(), sub); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Your response has been recorded. Thank you for letting us know.", nil)
}

// SubmitInquiry godoc
// @Summary      Submit an inquiry
// @Description  Candidate asks a question about the offer; answered by email.
// @Tags         respond
// @Accept       json
// @Produce      json
// @Param        inquiry  body      InquiryRequest  true  "Inquiry data"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /respond/inquiry [post]
func (h *RespondHandler) SubmitInquiry(c *gin.Context) {
	var req InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logValidationFailure(c, err)
		c.Error(apperror.BadRequest("Email and message are required."))
		return
	}

	sub := domain.InquirySubmission{
		Subject: subjectFor(req.CandidateID, req.Email),
		Email:   req.Email,
		Message: req.Message,
	}
	if err := h.responseUC.SubmitInquiry(c.Request.Context(), sub); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Your inquiry has been sent. We will reply by email.", nil)
}

func logValidationFailure(c *gin.Context, err error) {
	security.DefaultLogger().LogValidationFailed(
		c.Request.Context(), c.ClientIP(), c.GetString("RequestID"), c.FullPath(), err.Error())
}

// subjectFor picks the submission mode: candidate-backed when an id was
// passed, label-only otherwise.
func subjectFor(candidateID, label string) domain.ResponseSubject {
	if candidateID != "" {
		return domain.CandidateRef{ID: candidateID}
	}
	return domain.LabelRef{Label: label}
}
