package v1

import (
	"errors"
	"net/http"

	"outreach-backend/internal/delivery/http/response"
	"outreach-backend/internal/domain"
	"outreach-backend/pkg/apperror"
	"outreach-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	offerUC domain.OfferUsecase
}

// OfferView is the public shape of an offer; the admin-only fields and the
// token itself stay out of the payload.
type OfferView struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Track      string `json:"track"`
	Experience string `json:"experience"`
}

func NewOfferHandler(public *gin.RouterGroup, offerUC domain.OfferUsecase) {
	handler := &OfferHandler{offerUC: offerUC}
	public.GET("/offer/:token", handler.GetOffer)
}

// GetOffer godoc
// @Summary      Open an offer page
// @Description  Resolves the offer token and records the first view. Repeat opens are served without re-recording.
// @Tags         offer
// @Produce      json
// @Param        token  path      string  true  "Offer token"
// @Success      200  {object}  response.Response{data=OfferView}
// @Failure      404  {object}  response.Response
// @Router       /offer/{token} [get]
func (h *OfferHandler) GetOffer(c *gin.Context) {
	token := c.Param("token")

	candidate, err := h.offerUC.OpenOffer(c.Request.Context(), token)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusNotFound {
			requestID := c.GetString("RequestID")
			security.DefaultLogger().LogUnknownOfferToken(
				c.Request.Context(), c.ClientIP(), c.GetHeader("User-Agent"), requestID)
		}
		c.Error(err)
		return
	}

	view := OfferView{
		Name:       candidate.Name,
		Position:   candidate.Position,
		Track:      candidate.Track,
		Experience: candidate.Experience,
	}
	response.Success(c, http.StatusOK, "Offer retrieved successfully", view)
}
