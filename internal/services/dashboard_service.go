// internal/services/dashboard_service.go
package services

import (
	"context"
	"errors"
	"time"

	"dayplanner/internal/models"
	"dayplanner/internal/repositories"
)

// DashboardService assembles the read-only snapshot of one user's day. It
// has no side effects: fetch raw entities scoped to the user, derive the
// read-only attributes, count.
type DashboardService interface {
	BuildDashboard(ctx context.Context, userID int64, today models.Date, now time.Time) (*models.Dashboard, error)
}

type dashboardService struct {
	tasks      repositories.TaskRepository
	schedules  repositories.ScheduleRepository
	habits     repositories.HabitRepository
	notes      repositories.NoteRepository
	categories repositories.CategoryRepository
}

func NewDashboardService(
	tasks repositories.TaskRepository,
	schedules repositories.ScheduleRepository,
	habits repositories.HabitRepository,
	notes repositories.NoteRepository,
	categories repositories.CategoryRepository,
) DashboardService {
	return &dashboardService{
		tasks:      tasks,
		schedules:  schedules,
		habits:     habits,
		notes:      notes,
		categories: categories,
	}
}

func (s *dashboardService) BuildDashboard(ctx context.Context, userID int64, today models.Date, now time.Time) (*models.Dashboard, error) {
	categories, err := s.categories.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*models.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}
	categoryOf := func(id *int64) *models.Category {
		if id == nil {
			return nil
		}
		return byID[*id]
	}

	todayTasks, err := s.tasks.FindDueOn(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	taskViews := make([]models.TaskView, 0, len(todayTasks))
	for _, t := range todayTasks {
		taskViews = append(taskViews, models.NewTaskView(t, categoryOf(t.CategoryID), now))
	}

	todaySchedules, err := s.schedules.FindStartingOn(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	scheduleViews := make([]models.ScheduleView, 0, len(todaySchedules))
	for _, sc := range todaySchedules {
		scheduleViews = append(scheduleViews, models.NewScheduleView(sc, categoryOf(sc.CategoryID)))
	}

	habits, err := s.habits.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	habitViews := make([]models.HabitView, 0, len(habits))
	completedToday := 0
	for _, h := range habits {
		view := models.NewHabitView(h, categoryOf(h.CategoryID), today)
		if view.IsCompletedToday {
			completedToday++
		}
		habitViews = append(habitViews, view)
	}

	var noteView *models.NoteView
	note, err := s.notes.FindByDate(ctx, userID, today)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if note != nil {
		noteView = &models.NoteView{DailyNote: *note, Category: categoryOf(note.CategoryID)}
	}

	pending, err := s.tasks.CountPending(ctx, userID)
	if err != nil {
		return nil, err
	}

	if categories == nil {
		categories = []models.Category{}
	}

	return &models.Dashboard{
		Date:                 today,
		TodayTasks:           taskViews,
		TodaySchedules:       scheduleViews,
		Habits:               habitViews,
		TodayNote:            noteView,
		Categories:           categories,
		PendingTasksCount:    pending,
		CompletedHabitsToday: completedToday,
		TotalHabits:          len(habitViews),
	}, nil
}
