package v1

import (
	"net/http"
	"strconv"

	"outreach-backend/internal/delivery/http/response"
	"outreach-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityUC domain.ActivityUsecase
}

func NewActivityHandler(admin *gin.RouterGroup, activityUC domain.ActivityUsecase) {
	handler := &ActivityHandler{activityUC: activityUC}

	admin.GET("/activity", handler.RecentActivity)
	admin.GET("/responses", handler.RecentResponses)
}

// RecentActivity godoc
// @Summary      Recent activity feed
// @Description  Returns the latest audit entries across all candidates, newest first.
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max entries (default 50, max 200)"
// @Success      200  {object}  response.Response{data=[]domain.ActivityLogEntry}
// @Failure      401  {object}  response.Response
// @Router       /admin/activity [get]
func (h *ActivityHandler) RecentActivity(c *gin.Context) {
	entries, err := h.activityUC.RecentActivity(c.Request.Context(), queryLimit(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Activity retrieved successfully", entries)
}

// RecentResponses godoc
// @Summary      Recent candidate responses
// @Description  Returns the latest responses across all candidates, newest first.
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max entries (default 50, max 200)"
// @Success      200  {object}  response.Response{data=[]domain.CandidateResponse}
// @Failure      401  {object}  response.Response
// @Router       /admin/responses [get]
func (h *ActivityHandler) RecentResponses(c *gin.Context) {
	responses, err := h.activityUC.RecentResponses(c.Request.Context(), queryLimit(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Responses retrieved successfully", responses)
}

func queryLimit(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.Query("limit"))
	return limit
}
