package schedule

import (
	"sort"

	"alcyxob/fitness-tracker/internal/domain"
)

// ExercisesForSlot returns the plan exercises scheduled on slot, keeping the
// order of the input. An empty, non-nil slice means a rest day.
func ExercisesForSlot(exercises []domain.PlanExercise, slot Slot) []domain.PlanExercise {
	due := make([]domain.PlanExercise, 0)
	for _, ex := range exercises {
		if ex.DayOfWeek == slot.DayOfWeek && ex.Week == slot.WeekInCycle {
			due = append(due, ex)
		}
	}
	return due
}

// WorkoutDays returns the distinct days of week (ascending) that carry at
// least one exercise in the given week of the cycle.
func WorkoutDays(exercises []domain.PlanExercise, week int) []int {
	seen := make(map[int]struct{})
	for _, ex := range exercises {
		if ex.Week == week {
			seen[ex.DayOfWeek] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// CycleWorkoutDays is WorkoutDays taken over every week of the cycle.
func CycleWorkoutDays(exercises []domain.PlanExercise) []int {
	seen := make(map[int]struct{})
	for _, ex := range exercises {
		seen[ex.DayOfWeek] = struct{}{}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[int]struct{}) []int {
	days := make([]int, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
