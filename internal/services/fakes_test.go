package services

import (
	"context"
	"time"

	"dayplanner/internal/models"
)

// In-memory repositories for service tests. Ownership is enforced the same
// way the SQL layer does it: a row that belongs to another user is
// indistinguishable from a missing one.

type fakeTaskRepo struct {
	tasks  []models.Task
	nextID int64
}

func (r *fakeTaskRepo) Store(ctx context.Context, task *models.Task) error {
	r.nextID++
	task.ID = r.nextID
	r.tasks = append(r.tasks, *task)
	return nil
}

func (r *fakeTaskRepo) FindByID(ctx context.Context, id, userID int64) (*models.Task, error) {
	for i := range r.tasks {
		if r.tasks[i].ID == id && r.tasks[i].UserID == userID {
			cp := r.tasks[i]
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeTaskRepo) FindAll(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error) {
	var out []models.Task
	for _, t := range r.tasks {
		if t.UserID != userID {
			continue
		}
		if filter.CategoryID != nil && (t.CategoryID == nil || *t.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.Completed != nil && t.IsCompleted() != *filter.Completed {
			continue
		}
		if filter.DueOn != nil && (t.DueDate == nil || !models.DateOf(*t.DueDate).Equal(*filter.DueOn)) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTaskRepo) FindDueOn(ctx context.Context, userID int64, day models.Date) ([]models.Task, error) {
	return r.FindAll(ctx, userID, models.TaskFilter{DueOn: &day})
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *models.Task) error {
	for i := range r.tasks {
		if r.tasks[i].ID == task.ID && r.tasks[i].UserID == task.UserID {
			r.tasks[i] = *task
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakeTaskRepo) UpdateCompletedAt(ctx context.Context, id, userID int64, completedAt *time.Time) error {
	for i := range r.tasks {
		if r.tasks[i].ID == id && r.tasks[i].UserID == userID {
			r.tasks[i].CompletedAt = completedAt
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id, userID int64) error {
	for i := range r.tasks {
		if r.tasks[i].ID == id && r.tasks[i].UserID == userID {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakeTaskRepo) CountPending(ctx context.Context, userID int64) (int, error) {
	n := 0
	for _, t := range r.tasks {
		if t.UserID == userID && !t.IsCompleted() {
			n++
		}
	}
	return n, nil
}

type fakeScheduleRepo struct {
	schedules []models.Schedule
	nextID    int64
}

func (r *fakeScheduleRepo) Store(ctx context.Context, schedule *models.Schedule) error {
	r.nextID++
	schedule.ID = r.nextID
	r.schedules = append(r.schedules, *schedule)
	return nil
}

func (r *fakeScheduleRepo) FindByID(ctx context.Context, id, userID int64) (*models.Schedule, error) {
	for i := range r.schedules {
		if r.schedules[i].ID == id && r.schedules[i].UserID == userID {
			cp := r.schedules[i]
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeScheduleRepo) FindAll(ctx context.Context, userID int64) ([]models.Schedule, error) {
	var out []models.Schedule
	for _, s := range r.schedules {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) FindStartingOn(ctx context.Context, userID int64, day models.Date) ([]models.Schedule, error) {
	var out []models.Schedule
	for _, s := range r.schedules {
		if s.UserID == userID && models.DateOf(s.StartTime).Equal(day) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) Update(ctx context.Context, schedule *models.Schedule) error {
	for i := range r.schedules {
		if r.schedules[i].ID == schedule.ID && r.schedules[i].UserID == schedule.UserID {
			r.schedules[i] = *schedule
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakeScheduleRepo) Delete(ctx context.Context, id, userID int64) error {
	for i := range r.schedules {
		if r.schedules[i].ID == id && r.schedules[i].UserID == userID {
			r.schedules = append(r.schedules[:i], r.schedules[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeHabitRepo struct {
	habits []models.Habit
	nextID int64
}

func (r *fakeHabitRepo) Store(ctx context.Context, habit *models.Habit) error {
	r.nextID++
	habit.ID = r.nextID
	r.habits = append(r.habits, *habit)
	return nil
}

func (r *fakeHabitRepo) FindByID(ctx context.Context, id, userID int64) (*models.Habit, error) {
	for i := range r.habits {
		if r.habits[i].ID == id && r.habits[i].UserID == userID {
			cp := r.habits[i]
			cp.CompletionDates = append(models.DateSet{}, r.habits[i].CompletionDates...)
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeHabitRepo) FindAll(ctx context.Context, userID int64) ([]models.Habit, error) {
	var out []models.Habit
	for _, h := range r.habits {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHabitRepo) Update(ctx context.Context, habit *models.Habit) error {
	for i := range r.habits {
		if r.habits[i].ID == habit.ID && r.habits[i].UserID == habit.UserID {
			r.habits[i] = *habit
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakeHabitRepo) UpdateCompletionDates(ctx context.Context, id, userID int64, dates models.DateSet) error {
	for i := range r.habits {
		if r.habits[i].ID == id && r.habits[i].UserID == userID {
			r.habits[i].CompletionDates = append(models.DateSet{}, dates...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakeHabitRepo) Delete(ctx context.Context, id, userID int64) error {
	for i := range r.habits {
		if r.habits[i].ID == id && r.habits[i].UserID == userID {
			r.habits = append(r.habits[:i], r.habits[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeNoteRepo struct {
	notes  []models.DailyNote
	nextID int64
}

func (r *fakeNoteRepo) Store(ctx context.Context, note *models.DailyNote) error {
	r.nextID++
	note.ID = r.nextID
	r.notes = append(r.notes, *note)
	return nil
}

func (r *fakeNoteRepo) FindByID(ctx context.Context, id, userID int64) (*models.DailyNote, error) {
	for i := range r.notes {
		if r.notes[i].ID == id && r.notes[i].UserID == userID {
			cp := r.notes[i]
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeNoteRepo) FindAll(ctx context.Context, userID int64) ([]models.DailyNote, error) {
	var out []models.DailyNote
	for _, n := range r.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNoteRepo) FindByDate(ctx context.Context, userID int64, day models.Date) (*models.DailyNote, error) {
	for i := range r.notes {
		if r.notes[i].UserID == userID && r.notes[i].NoteDate.Equal(day) {
			cp := r.notes[i]
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeNoteRepo) ExistsForDate(ctx context.Context, userID int64, day models.Date) (bool, error) {
	for _, n := range r.notes {
		if n.UserID == userID && n.NoteDate.Equal(day) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeNoteRepo) Update(ctx context.Context, note *models.DailyNote) error {
	for i := range r.notes {
		if r.notes[i].ID == note.ID && r.notes[i].UserID == note.UserID {
			r.notes[i] = *note
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakeNoteRepo) Delete(ctx context.Context, id, userID int64) error {
	for i := range r.notes {
		if r.notes[i].ID == id && r.notes[i].UserID == userID {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeCategoryRepo struct {
	categories []models.Category
	nextID     int64
}

func (r *fakeCategoryRepo) Store(ctx context.Context, category *models.Category) error {
	r.nextID++
	category.ID = r.nextID
	r.categories = append(r.categories, *category)
	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id, userID int64) (*models.Category, error) {
	for i := range r.categories {
		if r.categories[i].ID == id && r.categories[i].UserID == userID {
			cp := r.categories[i]
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeCategoryRepo) FindAll(ctx context.Context, userID int64) ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	for i := range r.categories {
		if r.categories[i].ID == category.ID && r.categories[i].UserID == category.UserID {
			r.categories[i] = *category
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id, userID int64) error {
	for i := range r.categories {
		if r.categories[i].ID == id && r.categories[i].UserID == userID {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}
