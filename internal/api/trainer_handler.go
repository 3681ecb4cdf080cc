// internal/api/trainer_handler.go
package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/schedule"
	"alcyxob/fitness-tracker/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TrainerHandler struct {
	trainerService service.TrainerService
}

func NewTrainerHandler(trainerService service.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService}
}

// --- DTOs for Exercise Library ---

type CreateExerciseRequest struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	MuscleGroup      string `json:"muscleGroup"`
	ExecutionTechnic string `json:"executionTechnic"`
	Difficulty       string `json:"difficulty"`
	VideoURL         string `json:"videoUrl"`
}

// --- DTOs for Training Plans ---

type CreateTrainingPlanRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	WeekCycle     int    `json:"weekCycle"`     // Defaults to 1
	DurationWeeks int    `json:"durationWeeks"` // 0 means "until goal met"
}

type TrainingPlanResponse struct {
	ID            string    `json:"id"`
	TrainerID     string    `json:"trainerId"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	WeekCycle     int       `json:"weekCycle"`
	DurationWeeks int       `json:"durationWeeks"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// MapTrainingPlanToResponse converts domain.TrainingPlan to DTO
func MapTrainingPlanToResponse(p *domain.TrainingPlan) TrainingPlanResponse {
	if p == nil {
		return TrainingPlanResponse{}
	}
	return TrainingPlanResponse{
		ID:            p.ID.Hex(),
		TrainerID:     p.TrainerID.Hex(),
		Name:          p.Name,
		Description:   p.Description,
		WeekCycle:     p.WeekCycle,
		DurationWeeks: p.DurationWeeks,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// --- DTOs for Plan Exercises ---

type AddPlanExerciseRequest struct {
	ExerciseID string `json:"exerciseId,omitempty"` // Library exercise, optional
	Name       string `json:"name,omitempty"`       // Required without exerciseId
	DayOfWeek  int    `json:"dayOfWeek" binding:"required"`
	Week       int    `json:"week" binding:"required"`
	Sets       int    `json:"sets"`
	Reps       string `json:"reps,omitempty"`
	Weight     string `json:"weight,omitempty"`
	Duration   string `json:"duration,omitempty"`
	RestTime   string `json:"restTime,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type PlanExerciseResponse struct {
	ID         string `json:"id"`
	PlanID     string `json:"planId"`
	ExerciseID string `json:"exerciseId,omitempty"`
	Name       string `json:"name"`
	DayOfWeek  int    `json:"dayOfWeek"`
	Week       int    `json:"week"`
	Sequence   int    `json:"sequence"`
	Sets       int    `json:"sets"`
	Reps       string `json:"reps,omitempty"`
	Weight     string `json:"weight,omitempty"`
	Duration   string `json:"duration,omitempty"`
	RestTime   string `json:"restTime,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

func MapPlanExerciseToResponse(pe *domain.PlanExercise) PlanExerciseResponse {
	if pe == nil {
		return PlanExerciseResponse{}
	}
	resp := PlanExerciseResponse{
		ID:        pe.ID.Hex(),
		PlanID:    pe.PlanID.Hex(),
		Name:      pe.Name,
		DayOfWeek: pe.DayOfWeek,
		Week:      pe.Week,
		Sequence:  pe.Sequence,
		Sets:      pe.Sets,
		Reps:      pe.Reps,
		Weight:    pe.Weight,
		Duration:  pe.Duration,
		RestTime:  pe.RestTime,
		Notes:     pe.Notes,
	}
	if pe.ExerciseID != primitive.NilObjectID {
		resp.ExerciseID = pe.ExerciseID.Hex()
	}
	return resp
}

func MapPlanExercisesToResponse(exercises []domain.PlanExercise) []PlanExerciseResponse {
	responses := make([]PlanExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapPlanExerciseToResponse(&exercises[i])
	}
	return responses
}

// --- DTOs for Plan Assignment ---

type AssignPlanRequest struct {
	PlanID    string `json:"planId" binding:"required"`
	StartDate string `json:"startDate,omitempty"` // YYYY-MM-DD, defaults to today
	EndDate   string `json:"endDate,omitempty"`
}

type ClientPlanResponse struct {
	ID        string  `json:"id"`
	ClientID  string  `json:"clientId"`
	PlanID    string  `json:"planId"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate,omitempty"`
	IsActive  bool    `json:"isActive"`
}

func MapClientPlanToResponse(cp *domain.ClientPlan) ClientPlanResponse {
	if cp == nil {
		return ClientPlanResponse{}
	}
	resp := ClientPlanResponse{
		ID:        cp.ID.Hex(),
		ClientID:  cp.ClientID.Hex(),
		PlanID:    cp.PlanID.Hex(),
		StartDate: schedule.DayKey(cp.StartDate),
		IsActive:  cp.IsActive,
	}
	if cp.EndDate != nil {
		end := schedule.DayKey(*cp.EndDate)
		resp.EndDate = &end
	}
	return resp
}

// --- Handler Methods ---

// CreateExercise godoc
// @Summary Create a library exercise
// @Tags Trainer Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exerciseRequest body CreateExerciseRequest true "Exercise details"
// @Success 201 {object} domain.Exercise "Exercise created"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden (not a trainer)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainer/exercises [post]
func (h *TrainerHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, ok := currentUserID(c)
	if !ok {
		return
	}

	exercise, err := h.trainerService.CreateExercise(c.Request.Context(), trainerID, service.ExerciseInput{
		Name:             req.Name,
		Description:      req.Description,
		MuscleGroup:      req.MuscleGroup,
		ExecutionTechnic: req.ExecutionTechnic,
		Difficulty:       req.Difficulty,
		VideoURL:         req.VideoURL,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create exercise.")
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// CreateTrainingPlan godoc
// @Summary Create a training plan
// @Description Creates a plan whose weekly pattern repeats every weekCycle weeks.
// @Tags Trainer Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param planRequest body CreateTrainingPlanRequest true "Training Plan details"
// @Success 201 {object} TrainingPlanResponse "Training plan created successfully"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden (not a trainer)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainer/plans [post]
func (h *TrainerHandler) CreateTrainingPlan(c *gin.Context) {
	var req CreateTrainingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, ok := currentUserID(c)
	if !ok {
		return
	}

	plan, err := h.trainerService.CreatePlan(c.Request.Context(), trainerID, service.PlanInput{
		Name:          req.Name,
		Description:   req.Description,
		WeekCycle:     req.WeekCycle,
		DurationWeeks: req.DurationWeeks,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create training plan.")
		return
	}
	c.JSON(http.StatusCreated, MapTrainingPlanToResponse(plan))
}

// AddPlanExercise godoc
// @Summary Schedule an exercise in a plan
// @Description Adds an exercise prescription to a day of week and week of the plan's cycle.
// @Tags Trainer Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param planId path string true "Training Plan's ObjectID Hex"
// @Param exerciseRequest body AddPlanExerciseRequest true "Prescription"
// @Success 201 {object} PlanExerciseResponse "Exercise scheduled"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 403 {object} gin.H "Forbidden (does not own the plan)"
// @Failure 404 {object} gin.H "Plan or exercise not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainer/plans/{planId}/exercises [post]
func (h *TrainerHandler) AddPlanExercise(c *gin.Context) {
	planID, ok := pathObjectID(c, "planId")
	if !ok {
		return
	}
	var req AddPlanExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, ok := currentUserID(c)
	if !ok {
		return
	}

	input := service.PlanExerciseInput{
		Name:      req.Name,
		DayOfWeek: req.DayOfWeek,
		Week:      req.Week,
		Sets:      req.Sets,
		Reps:      req.Reps,
		Weight:    req.Weight,
		Duration:  req.Duration,
		RestTime:  req.RestTime,
		Notes:     req.Notes,
	}
	if req.ExerciseID != "" {
		exerciseID, err := primitive.ObjectIDFromHex(req.ExerciseID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
			return
		}
		input.ExerciseID = exerciseID
	}

	pe, err := h.trainerService.AddPlanExercise(c.Request.Context(), trainerID, planID, input)
	if err != nil {
		respondServiceError(c, err, "Failed to add exercise to plan.")
		return
	}
	c.JSON(http.StatusCreated, MapPlanExerciseToResponse(pe))
}

// ListPlanExercises godoc
// @Summary List the exercises of a plan
// @Tags Trainer Plans
// @Produce json
// @Security BearerAuth
// @Param planId path string true "Training Plan's ObjectID Hex"
// @Success 200 {array} PlanExerciseResponse "Exercises in insertion order"
// @Failure 400 {object} gin.H "Invalid plan ID format"
// @Failure 403 {object} gin.H "Forbidden (does not own the plan)"
// @Failure 404 {object} gin.H "Plan not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainer/plans/{planId}/exercises [get]
func (h *TrainerHandler) ListPlanExercises(c *gin.Context) {
	planID, ok := pathObjectID(c, "planId")
	if !ok {
		return
	}
	trainerID, ok := currentUserID(c)
	if !ok {
		return
	}

	exercises, err := h.trainerService.ListPlanExercises(c.Request.Context(), trainerID, planID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve plan exercises.")
		return
	}
	c.JSON(http.StatusOK, MapPlanExercisesToResponse(exercises))
}

// AssignPlan godoc
// @Summary Assign a plan to a client
// @Description Makes the plan the client's active plan from startDate; other active plans are closed.
// @Tags Trainer Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client's ObjectID Hex"
// @Param assignRequest body AssignPlanRequest true "Plan and start date"
// @Success 201 {object} ClientPlanResponse "Plan assigned"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 403 {object} gin.H "Forbidden (does not own the plan)"
// @Failure 404 {object} gin.H "Plan not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainer/clients/{clientId}/plans [post]
func (h *TrainerHandler) AssignPlan(c *gin.Context) {
	clientID, ok := pathObjectID(c, "clientId")
	if !ok {
		return
	}
	var req AssignPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	planID, err := primitive.ObjectIDFromHex(req.PlanID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}
	trainerID, ok := currentUserID(c)
	if !ok {
		return
	}

	assignment, err := h.trainerService.AssignPlan(c.Request.Context(), trainerID, clientID, planID, service.AssignPlanInput{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to assign plan.")
		return
	}
	c.JSON(http.StatusCreated, MapClientPlanToResponse(assignment))
}
