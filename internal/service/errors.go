package service

import (
	"errors"
	"fmt"
)

// --- Error Definitions ---
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidSetNumber = fmt.Errorf("%w: set number out of range", ErrInvalidInput)
	ErrInvalidDate      = fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	ErrInvalidWeekCycle = fmt.Errorf("%w: week cycle must be at least 1", ErrInvalidInput)
	ErrInvalidDayOfWeek = fmt.Errorf("%w: day of week must be 1-7", ErrInvalidInput)
	ErrInvalidWeek      = fmt.Errorf("%w: week is outside the plan's cycle", ErrInvalidInput)
	ErrInvalidDateRange = fmt.Errorf("%w: invalid date range", ErrInvalidInput)

	ErrPlanExerciseNotFound    = errors.New("plan exercise not found")
	ErrTrainingPlanNotFound    = errors.New("training plan not found")
	ErrExerciseNotFound        = errors.New("exercise not found")
	ErrNoActivePlan            = errors.New("client has no active training plan")
	ErrPlanNotAssignedToClient = errors.New("plan is not assigned to this client")
	ErrPlanAccessDenied        = errors.New("access denied to this training plan")

	ErrSetAlreadyCompleted = errors.New("set already completed for this day")
	ErrSetNotCompleted     = errors.New("set is not completed for this day")

	// ErrStorage hides storage failures from callers; details are logged.
	ErrStorage = errors.New("storage failure")
)

// MaxSetNumber bounds set numbers accepted by the ledger.
const MaxSetNumber = 50

// MaxHistoryDays bounds the span of a history query.
const MaxHistoryDays = 366
