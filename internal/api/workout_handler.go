// internal/api/workout_handler.go
package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
	statsService   service.StatsService
}

func NewWorkoutHandler(workoutService service.WorkoutService, statsService service.StatsService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService, statsService: statsService}
}

// --- DTOs ---

type CompleteSetRequest struct {
	SetNumber int      `json:"setNumber" binding:"required"`
	Date      string   `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Reps      *int     `json:"reps,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	Duration  *int     `json:"duration,omitempty"` // Seconds
	Notes     *string  `json:"notes,omitempty"`
}

type CompleteRemainingSetsRequest struct {
	TotalSets int      `json:"totalSets,omitempty"` // Defaults to the prescribed sets
	Date      string   `json:"date,omitempty"`
	Reps      *int     `json:"reps,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	Duration  *int     `json:"duration,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}

type SaveNotesRequest struct {
	Date  string `json:"date,omitempty"`
	Notes string `json:"notes"`
}

// --- Handler Methods for Client ---

// GetWorkoutForDate godoc
// @Summary Get my workout for a day
// @Description Resolves the active plan's exercises due on a calendar day, with the day's completed sets.
// @Tags Client Workouts
// @Produce json
// @Security BearerAuth
// @Param date query string false "Calendar day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.DailyWorkout "Workout for the day"
// @Failure 400 {object} gin.H "Invalid date"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "No active plan"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /client/workout [get]
func (h *WorkoutHandler) GetWorkoutForDate(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		return
	}

	workout, err := h.workoutService.ResolveWorkoutForDate(c.Request.Context(), clientID, c.Query("date"))
	if err != nil {
		respondServiceError(c, err, "Failed to resolve workout.")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// CompleteSet godoc
// @Summary Mark a set as completed
// @Tags Client Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param planExerciseId path string true "Plan exercise ObjectID Hex"
// @Param request body CompleteSetRequest true "Set details"
// @Success 201 {object} domain.WorkoutLog "Recorded set"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 403 {object} gin.H "Plan not assigned to this client"
// @Failure 404 {object} gin.H "Plan exercise not found"
// @Failure 409 {object} gin.H "Set already completed"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /client/plan-exercises/{planExerciseId}/sets [post]
func (h *WorkoutHandler) CompleteSet(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		return
	}
	planExerciseID, ok := pathObjectID(c, "planExerciseId")
	if !ok {
		return
	}

	var req CompleteSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, err := h.workoutService.CompleteSet(c.Request.Context(), clientID, planExerciseID, service.SetInput{
		SetNumber: req.SetNumber,
		Date:      req.Date,
		Reps:      req.Reps,
		Weight:    req.Weight,
		Duration:  req.Duration,
		Notes:     req.Notes,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to complete set.")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UncheckSet godoc
// @Summary Undo a completed set
// @Tags Client Workouts
// @Security BearerAuth
// @Param planExerciseId path string true "Plan exercise ObjectID Hex"
// @Param setNumber path int true "Set number"
// @Param date query string false "Calendar day (YYYY-MM-DD), defaults to today"
// @Success 204 "Set unchecked"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Set is not completed"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /client/plan-exercises/{planExerciseId}/sets/{setNumber} [delete]
func (h *WorkoutHandler) UncheckSet(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		return
	}
	planExerciseID, ok := pathObjectID(c, "planExerciseId")
	if !ok {
		return
	}
	setNumber, err := strconv.Atoi(c.Param("setNumber"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid set number.")
		return
	}

	if err := h.workoutService.UncheckSet(c.Request.Context(), clientID, planExerciseID, setNumber, c.Query("date")); err != nil {
		respondServiceError(c, err, "Failed to uncheck set.")
		return
	}
	c.Status(http.StatusNoContent)
}

// CompleteRemainingSets godoc
// @Summary Complete every remaining set of an exercise
// @Tags Client Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param planExerciseId path string true "Plan exercise ObjectID Hex"
// @Param request body CompleteRemainingSetsRequest false "Optional set count and performance"
// @Success 200 {object} service.RemainingSetsResult "Sets created"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Plan exercise not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /client/plan-exercises/{planExerciseId}/complete-remaining [post]
func (h *WorkoutHandler) CompleteRemainingSets(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		return
	}
	planExerciseID, ok := pathObjectID(c, "planExerciseId")
	if !ok {
		return
	}

	var req CompleteRemainingSetsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.workoutService.CompleteRemainingSets(c.Request.Context(), clientID, planExerciseID, service.RemainingSetsInput{
		TotalSets: req.TotalSets,
		Date:      req.Date,
		Reps:      req.Reps,
		Weight:    req.Weight,
		Duration:  req.Duration,
		Notes:     req.Notes,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to complete sets.")
		return
	}
	c.JSON(http.StatusOK, result)
}

// SaveNotes godoc
// @Summary Save my notes for an exercise
// @Tags Client Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param planExerciseId path string true "Plan exercise ObjectID Hex"
// @Param request body SaveNotesRequest true "Notes"
// @Success 200 {object} domain.WorkoutLog "Entry carrying the notes"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Plan exercise not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /client/plan-exercises/{planExerciseId}/notes [put]
func (h *WorkoutHandler) SaveNotes(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		return
	}
	planExerciseID, ok := pathObjectID(c, "planExerciseId")
	if !ok {
		return
	}

	var req SaveNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, err := h.workoutService.SaveNotes(c.Request.Context(), clientID, planExerciseID, req.Date, req.Notes)
	if err != nil {
		respondServiceError(c, err, "Failed to save notes.")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GetExerciseLogs godoc
// @Summary Get my history for one plan exercise
// @Tags Client Workouts
// @Produce json
// @Security BearerAuth
// @Param planExerciseId path string true "Plan exercise ObjectID Hex"
// @Success 200 {array} domain.WorkoutLog "Entries, newest day first"
// @Failure 404 {object} gin.H "Plan exercise not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /client/plan-exercises/{planExerciseId}/logs [get]
func (h *WorkoutHandler) GetExerciseLogs(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		return
	}
	planExerciseID, ok := pathObjectID(c, "planExerciseId")
	if !ok {
		return
	}

	logs, err := h.workoutService.GetExerciseHistory(c.Request.Context(), clientID, planExerciseID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve exercise history.")
		return
	}
	c.JSON(http.StatusOK, nonNilLogs(logs))
}

// GetLogs godoc
// @Summary Get my ledger entries for a day range
// @Tags Client Workouts
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD), defaults to 30 days before 'to'"
// @Param to query string false "Last day (YYYY-MM-DD), defaults to today"
// @Success 200 {array} domain.WorkoutLog "Entries ordered by day"
// @Failure 400 {object} gin.H "Invalid range"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /client/logs [get]
func (h *WorkoutHandler) GetLogs(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		return
	}

	logs, err := h.workoutService.GetHistory(c.Request.Context(), clientID, c.Query("from"), c.Query("to"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve history.")
		return
	}
	c.JSON(http.StatusOK, nonNilLogs(logs))
}

// GetWeeklyStats godoc
// @Summary Get my training days this week
// @Tags Client Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.WeeklyStats "Completed versus expected days"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /client/stats/weekly [get]
func (h *WorkoutHandler) GetWeeklyStats(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.statsService.GetWeeklyStats(c.Request.Context(), clientID)
	if err != nil {
		respondServiceError(c, err, "Failed to compute weekly stats.")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetStreak godoc
// @Summary Get my current training streak
// @Tags Client Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Streak "Consecutive training days"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /client/stats/streak [get]
func (h *WorkoutHandler) GetStreak(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		return
	}

	streak, err := h.statsService.GetStreak(c.Request.Context(), clientID)
	if err != nil {
		respondServiceError(c, err, "Failed to compute streak.")
		return
	}
	c.JSON(http.StatusOK, streak)
}

func nonNilLogs(logs []domain.WorkoutLog) []domain.WorkoutLog {
	if logs == nil {
		return []domain.WorkoutLog{}
	}
	return logs
}
