package sqlite

import (
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// taskRecord is the GORM model for the tasks table.
type taskRecord struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"not null"`
	Description string     `gorm:"not null"`
	DueDate     *time.Time `gorm:"type:date;index"`
	Status      int16      `gorm:"not null;index;check:chk_tasks_status,status IN (0, 1)"`
}

// TableName overrides GORM's pluralized default.
func (taskRecord) TableName() string {
	return "tasks"
}

func newTaskRecord(task *domain.Task) taskRecord {
	return taskRecord{
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueTime(),
		Status:      int16(task.Status),
	}
}

func (r *taskRecord) toDomain() *domain.Task {
	return &domain.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     domain.DateFromNullable(r.DueDate),
		Status:      domain.Status(r.Status),
	}
}

func toDomainList(records []taskRecord) []*domain.Task {
	tasks := make([]*domain.Task, 0, len(records))
	for i := range records {
		tasks = append(tasks, records[i].toDomain())
	}
	return tasks
}
