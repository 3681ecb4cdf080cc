package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/schedule"
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// WorkoutStatus tells how a calendar day relates to the client's plan.
type WorkoutStatus string

const (
	StatusNotStarted WorkoutStatus = "NOT_STARTED"
	StatusScheduled  WorkoutStatus = "SCHEDULED"
)

// DailyWorkout is the resolved workout of one client on one calendar day.
// A scheduled day without exercises is a rest day.
type DailyWorkout struct {
	Date        string               `json:"date"`
	Status      WorkoutStatus        `json:"status"`
	DayOfWeek   int                  `json:"dayOfWeek"`
	WeekInCycle int                  `json:"weekInCycle,omitempty"` // 0 when not started
	RestDay     bool                 `json:"restDay"`
	Plan        *domain.TrainingPlan `json:"plan"`
	Assignment  *domain.ClientPlan   `json:"assignment"`
	Exercises   []DailyExercise      `json:"exercises"`
}

// DailyExercise combines a due prescription with the day's ledger entries.
type DailyExercise struct {
	domain.PlanExercise
	Exercise      *domain.Exercise    `json:"exercise,omitempty"` // Library entry, when linked
	Logs          []domain.WorkoutLog `json:"logs"`
	CompletedSets int                 `json:"completedSets"`
	ClientNotes   string              `json:"clientNotes,omitempty"`
}

// SetInput is a completed set as reported by the client.
type SetInput struct {
	SetNumber int
	Date      string // YYYY-MM-DD, empty for today
	Reps      *int
	Weight    *float64
	Duration  *int // Seconds
	Notes     *string
}

// RemainingSetsInput completes every set of an exercise not yet done.
type RemainingSetsInput struct {
	TotalSets int // <= 0 uses the prescription
	Date      string
	Reps      *int
	Weight    *float64
	Duration  *int
	Notes     *string
}

type RemainingSetsResult struct {
	CreatedCount int                 `json:"createdCount"`
	TotalSets    int                 `json:"totalSets"`
	Entries      []domain.WorkoutLog `json:"entries"`
}

type WorkoutService interface {
	ResolveWorkoutForDate(ctx context.Context, clientID primitive.ObjectID, date string) (*DailyWorkout, error)

	// Ledger writes
	CompleteSet(ctx context.Context, clientID, planExerciseID primitive.ObjectID, input SetInput) (*domain.WorkoutLog, error)
	UncheckSet(ctx context.Context, clientID, planExerciseID primitive.ObjectID, setNumber int, date string) error
	CompleteRemainingSets(ctx context.Context, clientID, planExerciseID primitive.ObjectID, input RemainingSetsInput) (*RemainingSetsResult, error)
	SaveNotes(ctx context.Context, clientID, planExerciseID primitive.ObjectID, date, notes string) (*domain.WorkoutLog, error)

	// Ledger reads
	GetHistory(ctx context.Context, clientID primitive.ObjectID, from, to string) ([]domain.WorkoutLog, error)
	GetExerciseHistory(ctx context.Context, clientID, planExerciseID primitive.ObjectID) ([]domain.WorkoutLog, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	base
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(deps Deps) WorkoutService {
	return &workoutService{base: newBase(deps)}
}

// === Daily workout ===

// ResolveWorkoutForDate returns what the client's active plan prescribes on date.
func (s *workoutService) ResolveWorkoutForDate(ctx context.Context, clientID primitive.ObjectID, date string) (*DailyWorkout, error) {
	if clientID == primitive.NilObjectID {
		return nil, fmt.Errorf("%w: client ID is required", ErrInvalidInput)
	}
	day, err := s.day(date)
	if err != nil {
		return nil, err
	}

	assignment, plan, err := s.activePlan(ctx, clientID)
	if err != nil {
		return nil, err
	}

	workout := &DailyWorkout{
		Date:       schedule.DayKey(day),
		DayOfWeek:  schedule.Weekday(day),
		Plan:       plan,
		Assignment: assignment,
		Exercises:  []DailyExercise{},
	}

	slot, err := schedule.Resolve(assignment.StartDate, plan.Cycle(), day)
	if errors.Is(err, schedule.ErrNotStarted) {
		workout.Status = StatusNotStarted
		return workout, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWeekCycle, err)
	}
	workout.Status = StatusScheduled
	workout.WeekInCycle = slot.WeekInCycle

	planExercises, err := s.PlanExercises.GetByPlanID(ctx, plan.ID)
	if err != nil {
		return nil, s.storageFailure("get_plan_exercises", err, zap.String("planId", plan.ID.Hex()))
	}
	due := schedule.ExercisesForSlot(planExercises, slot)
	if len(due) == 0 {
		workout.RestDay = true
		return workout, nil
	}

	logs, err := s.WorkoutLogs.ListByDayRange(ctx, clientID, workout.Date, workout.Date)
	if err != nil {
		return nil, s.storageFailure("list_workout_logs", err, zap.String("clientId", clientID.Hex()))
	}
	byExercise := make(map[primitive.ObjectID][]domain.WorkoutLog)
	for _, entry := range logs {
		byExercise[entry.PlanExerciseID] = append(byExercise[entry.PlanExerciseID], entry)
	}

	library, err := s.libraryExercises(ctx, due)
	if err != nil {
		return nil, err
	}

	for _, pe := range due {
		item := DailyExercise{
			PlanExercise: pe,
			Logs:         byExercise[pe.ID],
		}
		if item.Logs == nil {
			item.Logs = []domain.WorkoutLog{}
		}
		if ex, ok := library[pe.ExerciseID]; ok {
			item.Exercise = &ex
		}
		for _, entry := range item.Logs {
			if entry.Completed {
				item.CompletedSets++
			}
			if entry.SetNumber == domain.NoteSetNumber {
				item.ClientNotes = entry.Notes
			}
		}
		workout.Exercises = append(workout.Exercises, item)
	}
	return workout, nil
}

func (s *workoutService) libraryExercises(ctx context.Context, due []domain.PlanExercise) (map[primitive.ObjectID]domain.Exercise, error) {
	ids := make([]primitive.ObjectID, 0, len(due))
	for _, pe := range due {
		if pe.ExerciseID != primitive.NilObjectID {
			ids = append(ids, pe.ExerciseID)
		}
	}
	library := make(map[primitive.ObjectID]domain.Exercise, len(ids))
	if len(ids) == 0 {
		return library, nil
	}
	exercises, err := s.Exercises.GetByIDs(ctx, ids)
	if err != nil {
		return nil, s.storageFailure("get_exercises", err)
	}
	for _, ex := range exercises {
		library[ex.ID] = ex
	}
	return library, nil
}

// === Ledger writes ===

// CompleteSet records one completed set. A second completion of the same set
// on the same day fails with ErrSetAlreadyCompleted.
func (s *workoutService) CompleteSet(ctx context.Context, clientID, planExerciseID primitive.ObjectID, input SetInput) (*domain.WorkoutLog, error) {
	entry, err := s.completeSet(ctx, clientID, planExerciseID, input)
	s.observe(metrics.OpCompleteSet, err)
	if err == nil {
		s.Metrics.AddSets(1)
	}
	return entry, err
}

func (s *workoutService) completeSet(ctx context.Context, clientID, planExerciseID primitive.ObjectID, input SetInput) (*domain.WorkoutLog, error) {
	if err := validateSetNumber(input.SetNumber); err != nil {
		return nil, err
	}
	perf := repository.SetPerformance{Reps: input.Reps, Weight: input.Weight, Duration: input.Duration, Notes: input.Notes}
	if err := validatePerformance(perf); err != nil {
		return nil, err
	}
	day, err := s.day(input.Date)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizedPlanExercise(ctx, clientID, planExerciseID); err != nil {
		return nil, err
	}

	key := repository.SetKey{
		ClientID:       clientID,
		PlanExerciseID: planExerciseID,
		SetNumber:      input.SetNumber,
		Day:            schedule.DayKey(day),
	}
	entry, err := s.WorkoutLogs.CompleteSet(ctx, key, perf, s.Clock().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			s.Logger.Info("set already completed",
				zap.String("clientId", clientID.Hex()),
				zap.String("planExerciseId", planExerciseID.Hex()),
				zap.Int("setNumber", input.SetNumber),
				zap.String("day", key.Day))
			return nil, ErrSetAlreadyCompleted
		}
		return nil, s.storageFailure("complete_set", err, zap.String("planExerciseId", planExerciseID.Hex()))
	}
	return entry, nil
}

// UncheckSet removes a completed set of the given day.
func (s *workoutService) UncheckSet(ctx context.Context, clientID, planExerciseID primitive.ObjectID, setNumber int, date string) error {
	err := s.uncheckSet(ctx, clientID, planExerciseID, setNumber, date)
	s.observe(metrics.OpUncheckSet, err)
	return err
}

func (s *workoutService) uncheckSet(ctx context.Context, clientID, planExerciseID primitive.ObjectID, setNumber int, date string) error {
	if err := validateSetNumber(setNumber); err != nil {
		return err
	}
	day, err := s.day(date)
	if err != nil {
		return err
	}
	if _, err := s.authorizedPlanExercise(ctx, clientID, planExerciseID); err != nil {
		return err
	}

	key := repository.SetKey{
		ClientID:       clientID,
		PlanExerciseID: planExerciseID,
		SetNumber:      setNumber,
		Day:            schedule.DayKey(day),
	}
	if err := s.WorkoutLogs.DeleteCompletedSet(ctx, key); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSetNotCompleted
		}
		return s.storageFailure("uncheck_set", err, zap.String("planExerciseId", planExerciseID.Hex()))
	}
	return nil
}

// CompleteRemainingSets completes every set 1..TotalSets still open on the
// day. Sets completed earlier, or concurrently, are left untouched.
func (s *workoutService) CompleteRemainingSets(ctx context.Context, clientID, planExerciseID primitive.ObjectID, input RemainingSetsInput) (*RemainingSetsResult, error) {
	result, err := s.completeRemainingSets(ctx, clientID, planExerciseID, input)
	s.observe(metrics.OpCompleteRemaining, err)
	if err == nil {
		s.Metrics.AddSets(result.CreatedCount)
	}
	return result, err
}

func (s *workoutService) completeRemainingSets(ctx context.Context, clientID, planExerciseID primitive.ObjectID, input RemainingSetsInput) (*RemainingSetsResult, error) {
	perf := repository.SetPerformance{Reps: input.Reps, Weight: input.Weight, Duration: input.Duration, Notes: input.Notes}
	if err := validatePerformance(perf); err != nil {
		return nil, err
	}
	day, err := s.day(input.Date)
	if err != nil {
		return nil, err
	}
	pe, err := s.authorizedPlanExercise(ctx, clientID, planExerciseID)
	if err != nil {
		return nil, err
	}

	totalSets := input.TotalSets
	if totalSets <= 0 {
		totalSets = pe.Sets
	}
	if totalSets < 1 || totalSets > MaxSetNumber {
		return nil, fmt.Errorf("%w: total sets %d", ErrInvalidSetNumber, totalSets)
	}

	key := repository.SetKey{
		ClientID:       clientID,
		PlanExerciseID: planExerciseID,
		Day:            schedule.DayKey(day),
	}
	created, err := s.WorkoutLogs.CompleteMissingSets(ctx, key, totalSets, perf, s.Clock().UTC())
	if err != nil {
		return nil, s.storageFailure("complete_remaining_sets", err, zap.String("planExerciseId", planExerciseID.Hex()))
	}
	return &RemainingSetsResult{
		CreatedCount: len(created),
		TotalSets:    totalSets,
		Entries:      created,
	}, nil
}

// SaveNotes stores the client's notes for an exercise on a day. Completion
// data already recorded on set 1 is preserved.
func (s *workoutService) SaveNotes(ctx context.Context, clientID, planExerciseID primitive.ObjectID, date, notes string) (*domain.WorkoutLog, error) {
	entry, err := s.saveNotes(ctx, clientID, planExerciseID, date, notes)
	s.observe(metrics.OpSaveNotes, err)
	return entry, err
}

func (s *workoutService) saveNotes(ctx context.Context, clientID, planExerciseID primitive.ObjectID, date, notes string) (*domain.WorkoutLog, error) {
	day, err := s.day(date)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizedPlanExercise(ctx, clientID, planExerciseID); err != nil {
		return nil, err
	}

	key := repository.SetKey{
		ClientID:       clientID,
		PlanExerciseID: planExerciseID,
		SetNumber:      domain.NoteSetNumber,
		Day:            schedule.DayKey(day),
	}
	entry, err := s.WorkoutLogs.UpsertNote(ctx, key, notes, s.Clock().UTC())
	if err != nil {
		return nil, s.storageFailure("save_notes", err, zap.String("planExerciseId", planExerciseID.Hex()))
	}
	return entry, nil
}

// === Ledger reads ===

// GetHistory returns the client's ledger entries between two days, inclusive.
// An empty `to` means today; an empty `from` means 30 days before `to`.
func (s *workoutService) GetHistory(ctx context.Context, clientID primitive.ObjectID, from, to string) ([]domain.WorkoutLog, error) {
	if clientID == primitive.NilObjectID {
		return nil, fmt.Errorf("%w: client ID is required", ErrInvalidInput)
	}
	end, err := s.day(to)
	if err != nil {
		return nil, err
	}
	start := schedule.AddDays(end, -29)
	if from != "" {
		if start, err = s.day(from); err != nil {
			return nil, err
		}
	}

	span := schedule.DaysBetween(start, end)
	if span < 0 || span >= MaxHistoryDays {
		return nil, fmt.Errorf("%w: %s..%s", ErrInvalidDateRange, schedule.DayKey(start), schedule.DayKey(end))
	}

	logs, err := s.WorkoutLogs.ListByDayRange(ctx, clientID, schedule.DayKey(start), schedule.DayKey(end))
	if err != nil {
		return nil, s.storageFailure("list_workout_logs", err, zap.String("clientId", clientID.Hex()))
	}
	return logs, nil
}

// GetExerciseHistory returns every ledger entry of one plan exercise, newest day first.
func (s *workoutService) GetExerciseHistory(ctx context.Context, clientID, planExerciseID primitive.ObjectID) ([]domain.WorkoutLog, error) {
	if _, err := s.authorizedPlanExercise(ctx, clientID, planExerciseID); err != nil {
		return nil, err
	}
	logs, err := s.WorkoutLogs.ListByPlanExercise(ctx, clientID, planExerciseID)
	if err != nil {
		return nil, s.storageFailure("list_exercise_logs", err, zap.String("planExerciseId", planExerciseID.Hex()))
	}
	return logs, nil
}

// --- helpers ---

// authorizedPlanExercise loads a plan exercise and checks that its plan has
// been assigned to the client.
func (s *workoutService) authorizedPlanExercise(ctx context.Context, clientID, planExerciseID primitive.ObjectID) (*domain.PlanExercise, error) {
	if clientID == primitive.NilObjectID || planExerciseID == primitive.NilObjectID {
		return nil, fmt.Errorf("%w: client ID and plan exercise ID are required", ErrInvalidInput)
	}
	pe, err := s.PlanExercises.GetByID(ctx, planExerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanExerciseNotFound
		}
		return nil, s.storageFailure("get_plan_exercise", err, zap.String("planExerciseId", planExerciseID.Hex()))
	}

	assignments, err := s.ClientPlans.GetByClientAndPlan(ctx, clientID, pe.PlanID)
	if err != nil {
		return nil, s.storageFailure("get_client_plan", err, zap.String("clientId", clientID.Hex()))
	}
	if len(assignments) == 0 {
		return nil, ErrPlanNotAssignedToClient
	}
	return pe, nil
}

func (s *workoutService) observe(operation string, err error) {
	s.Metrics.Observe(operation, outcomeOf(err))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrSetAlreadyCompleted):
		return metrics.OutcomeConflict
	case errors.Is(err, ErrSetNotCompleted),
		errors.Is(err, ErrPlanExerciseNotFound),
		errors.Is(err, ErrPlanNotAssignedToClient):
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrInvalidInput):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}

func validateSetNumber(setNumber int) error {
	if setNumber < 1 || setNumber > MaxSetNumber {
		return fmt.Errorf("%w: %d", ErrInvalidSetNumber, setNumber)
	}
	return nil
}

func validatePerformance(perf repository.SetPerformance) error {
	if perf.Reps != nil && *perf.Reps < 0 {
		return fmt.Errorf("%w: reps must not be negative", ErrInvalidInput)
	}
	if perf.Weight != nil && *perf.Weight < 0 {
		return fmt.Errorf("%w: weight must not be negative", ErrInvalidInput)
	}
	if perf.Duration != nil && *perf.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}
	return nil
}
