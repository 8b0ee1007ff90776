package links

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/truong-le-ofs/short-link/pkg/shortlink/models"
)

// CreateScheduleRequest represents the request to add a schedule
type CreateScheduleRequest struct {
	TargetURL string    `json:"target_url" binding:"required,url"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

// UpdateScheduleRequest represents the request to update a schedule
type UpdateScheduleRequest struct {
	TargetURL string     `json:"target_url" binding:"omitempty,url"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

// ownedSchedule loads a schedule and verifies ownership through its link.
func (h *Handler) ownedSchedule(c *gin.Context, id string) (*models.Schedule, bool) {
	var schedule models.Schedule
	if err := h.db.First(&schedule, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return nil, false
	}
	if _, ok := h.ownedLink(c, schedule.LinkID); !ok {
		return nil, false
	}
	return &schedule, true
}

// AddSchedule adds a time-boxed target override to a shortlink
// @Summary Add a schedule
// @Description Add a schedule that overrides the link's target URL during a time window
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Shortlink ID"
// @Param request body CreateScheduleRequest true "Schedule details"
// @Success 201 {object} models.Schedule
// @Failure 400 {object} map[string]string "Invalid time window"
// @Failure 404 {object} map[string]string "Shortlink not found"
// @Security BearerAuth
// @Router /shortlinks/{id}/schedules [post]
func (h *Handler) AddSchedule(c *gin.Context) {
	link, ok := h.ownedLink(c, c.Param("id"))
	if !ok {
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.StartTime.Before(req.EndTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Start time must be before end time"})
		return
	}

	schedule := models.Schedule{
		LinkID:    link.ID,
		TargetURL: req.TargetURL,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := h.db.Create(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// ListSchedules returns a shortlink's schedules ordered by start time
// @Summary List schedules
// @Description Get all schedules of a shortlink, earliest start first
// @Tags schedules
// @Produce json
// @Param id path string true "Shortlink ID"
// @Success 200 {array} models.Schedule
// @Failure 404 {object} map[string]string "Shortlink not found"
// @Security BearerAuth
// @Router /shortlinks/{id}/schedules [get]
func (h *Handler) ListSchedules(c *gin.Context) {
	link, ok := h.ownedLink(c, c.Param("id"))
	if !ok {
		return
	}

	var schedules []models.Schedule
	if err := h.db.Where("link_id = ?", link.ID).Order("start_time ASC").Find(&schedules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedules"})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// UpdateSchedule updates a schedule
// @Summary Update a schedule
// @Description Update a schedule's target URL or time window
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body UpdateScheduleRequest true "Updated fields"
// @Success 200 {object} models.Schedule
// @Failure 400 {object} map[string]string "Invalid time window"
// @Failure 404 {object} map[string]string "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id} [put]
func (h *Handler) UpdateSchedule(c *gin.Context) {
	schedule, ok := h.ownedSchedule(c, c.Param("id"))
	if !ok {
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.TargetURL != "" {
		schedule.TargetURL = req.TargetURL
	}
	if req.StartTime != nil {
		schedule.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		schedule.EndTime = *req.EndTime
	}
	if !schedule.StartTime.Before(schedule.EndTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Start time must be before end time"})
		return
	}

	if err := h.db.Save(schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule deletes a schedule
// @Summary Delete a schedule
// @Description Delete a schedule from a shortlink
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} map[string]string "Schedule deleted"
// @Failure 404 {object} map[string]string "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id} [delete]
func (h *Handler) DeleteSchedule(c *gin.Context) {
	schedule, ok := h.ownedSchedule(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.db.Delete(schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}
