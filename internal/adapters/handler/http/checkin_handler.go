package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-habits/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/services"
)

// defaultListDays bounds GET /habits/:id/checkins when no range is given.
const defaultListDays = 30

type CheckInHandler struct {
	svc *services.CheckInService
}

func NewCheckInHandler(svc *services.CheckInService) *CheckInHandler {
	return &CheckInHandler{
		svc: svc,
	}
}

type createCheckInRequest struct {
	Date  string `json:"date"`
	Value *int   `json:"value"`
}

func (h *CheckInHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/habits/:id/checkins", h.Create)
	router.GET("/habits/:id/checkins", h.ListByHabit)
	router.DELETE("/checkins/:id", h.Delete)
}

// Create godoc
// @Summary  Check a habit in for a day
// @Tags     checkins
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "habit id"
// @Success  201 {object} checkInResponse
// @Failure  400,404,409 {object} map[string]string
// @Router   /habits/{id}/checkins [post]
func (h *CheckInHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req createCheckInRequest
	// An empty body is a check-in for today.
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
			return
		}
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		handleError(c, err)
		return
	}

	checkIn, err := h.svc.Create(c.Request.Context(), services.CreateCheckInInput{
		HabitID: c.Param("id"),
		UserID:  userID,
		Date:    date,
		Value:   req.Value,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newCheckInResponse(checkIn))
}

func (h *CheckInHandler) ListByHabit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	to := domain.CivilDate(time.Now().UTC())
	if t := c.Query("to"); t != "" {
		parsed, err := domain.ParseDate(t)
		if err != nil {
			handleError(c, err)
			return
		}
		to = parsed
	}

	from := to.AddDate(0, 0, -(defaultListDays - 1))
	if f := c.Query("from"); f != "" {
		parsed, err := domain.ParseDate(f)
		if err != nil {
			handleError(c, err)
			return
		}
		from = parsed
	}

	if from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from cannot be after to"})
		return
	}

	list, err := h.svc.ListByHabitID(c.Request.Context(), c.Param("id"), userID, from, to)
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]checkInResponse, 0, len(list))
	for _, ci := range list {
		out = append(out, newCheckInResponse(ci))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CheckInHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
