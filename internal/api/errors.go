package api

import (
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service errors onto HTTP statuses. Unknown errors
// become a 500 carrying fallback instead of the error text.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPlanAccessDenied),
		errors.Is(err, service.ErrPlanNotAssignedToClient):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrPlanExerciseNotFound),
		errors.Is(err, service.ErrTrainingPlanNotFound),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrNoActivePlan),
		errors.Is(err, service.ErrSetNotCompleted):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSetAlreadyCompleted):
		abortWithError(c, http.StatusConflict, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}
