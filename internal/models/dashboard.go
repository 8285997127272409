package models

// Dashboard is the read-only snapshot of one user's day: tasks due today,
// schedules starting today, every habit with its streak, and today's note.
type Dashboard struct {
	Date                 Date           `json:"date"`
	TodayTasks           []TaskView     `json:"today_tasks"`
	TodaySchedules       []ScheduleView `json:"today_schedules"`
	Habits               []HabitView    `json:"habits"`
	TodayNote            *NoteView      `json:"today_note,omitempty"`
	Categories           []Category     `json:"categories"`
	PendingTasksCount    int            `json:"pending_tasks_count"`
	CompletedHabitsToday int            `json:"completed_habits_today"`
	TotalHabits          int            `json:"total_habits"`
}
