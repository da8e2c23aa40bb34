package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/business-launch/modules-api/models"
)

func TestAddTask(t *testing.T) {
	tasks := AddTask([]models.Task{}, "Write plan")

	assert.Len(t, tasks, 1)
	assert.NotEmpty(t, tasks[0].ID)
	assert.Equal(t, "Write plan", tasks[0].Description)
	assert.False(t, tasks[0].Completed)
}

func TestAddTask_BlankIsNoop(t *testing.T) {
	assert.Empty(t, AddTask([]models.Task{}, ""))
	assert.Empty(t, AddTask([]models.Task{}, "   "))
}

func TestAddTask_AppendsInOrder(t *testing.T) {
	tasks := AddTask(nil, "first")
	tasks = AddTask(tasks, "second")
	tasks = AddTask(tasks, "third")

	assert.Len(t, tasks, 3)
	assert.Equal(t, "first", tasks[0].Description)
	assert.Equal(t, "second", tasks[1].Description)
	assert.Equal(t, "third", tasks[2].Description)
}

func TestAddTask_UniqueIDs(t *testing.T) {
	var tasks []models.Task
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tasks = AddTask(tasks, "x")
	}
	for _, task := range tasks {
		assert.False(t, seen[task.ID])
		seen[task.ID] = true
	}
}

func TestAddTask_DoesNotMutateInput(t *testing.T) {
	original := AddTask(nil, "only")
	_ = AddTask(original, "another")

	assert.Len(t, original, 1)
}

func TestToggleTask(t *testing.T) {
	tasks := AddTask(nil, "flip me")
	id := tasks[0].ID

	toggled := ToggleTask(tasks, id)
	assert.True(t, toggled[0].Completed)
	assert.False(t, tasks[0].Completed, "input list untouched")

	// Toggling twice restores the original state.
	back := ToggleTask(toggled, id)
	assert.False(t, back[0].Completed)
}

func TestToggleTask_UnknownIDIsNoop(t *testing.T) {
	tasks := AddTask(nil, "keep me")

	out := ToggleTask(tasks, "nope")

	assert.Equal(t, tasks, out)
}

func TestRemoveTask(t *testing.T) {
	tasks := AddTask(nil, "a")
	tasks = AddTask(tasks, "b")
	tasks = AddTask(tasks, "c")

	out := RemoveTask(tasks, tasks[1].ID)

	assert.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Description)
	assert.Equal(t, "c", out[1].Description)
}

func TestRemoveTask_UnknownIDIsNoop(t *testing.T) {
	tasks := AddTask(nil, "survivor")

	out := RemoveTask(tasks, "missing")

	assert.Equal(t, tasks, out)
}
