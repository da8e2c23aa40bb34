package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/business-launch/modules-api/models"
)

// Pure list transforms over a module's in-memory task list. Nothing here
// touches the store; tasks only persist as part of a whole-module write.

// AddTask appends a new open task. A blank description is a no-op.
func AddTask(tasks []models.Task, description string) []models.Task {
	if strings.TrimSpace(description) == "" {
		return tasks
	}
	out := make([]models.Task, len(tasks), len(tasks)+1)
	copy(out, tasks)
	return append(out, models.Task{
		ID:          uuid.NewString(),
		Description: description,
		Completed:   false,
	})
}

// ToggleTask flips completion on the matching task. Unknown ids are a no-op.
func ToggleTask(tasks []models.Task, taskID string) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID == taskID {
			out[i].Completed = !out[i].Completed
		}
	}
	return out
}

// RemoveTask drops the matching task, preserving order. Unknown ids are a
// no-op.
func RemoveTask(tasks []models.Task, taskID string) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != taskID {
			out = append(out, t)
		}
	}
	return out
}
