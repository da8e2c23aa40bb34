package services

import (
	"github.com/business-launch/modules-api/models"
)

// NewDraft builds the empty in-memory module the detail screen starts from
// when routed at the literal "new". The store assigns the id on first save.
func NewDraft(userID string) models.BusinessModule {
	return models.BusinessModule{
		UserID:      userID,
		Name:        "New Module",
		Description: "",
		Type:        models.TypeIdea,
		Income:      models.Income{},
		Tasks:       []models.Task{},
	}
}

// ApplyEdit applies one tagged edit command to a module and returns the
// result. set_income writes the raw figure into a single period; the
// creation-time normalization deliberately does not fire on this path, so an
// edited record can hold mutually inconsistent income figures.
//
// Commands that reference nothing (unknown op, unknown task id, invalid
// module type, unknown period) leave the module unchanged.
func ApplyEdit(m models.BusinessModule, cmd models.EditCommand) models.BusinessModule {
	switch cmd.Op {
	case models.EditName:
		m.Name = cmd.Value
	case models.EditDescription:
		m.Description = cmd.Value
	case models.EditType:
		switch models.ModuleType(cmd.Value) {
		case models.TypeRunning, models.TypeIdea:
			m.Type = models.ModuleType(cmd.Value)
		}
	case models.EditIncome:
		switch cmd.Period {
		case models.PeriodDaily:
			m.Income.Daily = cmd.Amount
		case models.PeriodWeekly:
			m.Income.Weekly = cmd.Amount
		case models.PeriodMonthly:
			m.Income.Monthly = cmd.Amount
		case models.PeriodYearly:
			m.Income.Yearly = cmd.Amount
		}
	case models.EditAddTask:
		m.Tasks = AddTask(m.Tasks, cmd.Value)
	case models.EditToggleTask:
		m.Tasks = ToggleTask(m.Tasks, cmd.TaskID)
	case models.EditRemoveTask:
		m.Tasks = RemoveTask(m.Tasks, cmd.TaskID)
	}
	return m
}

// ApplyEdits runs a batch of commands in order.
func ApplyEdits(m models.BusinessModule, cmds []models.EditCommand) models.BusinessModule {
	for _, cmd := range cmds {
		m = ApplyEdit(m, cmd)
	}
	return m
}
