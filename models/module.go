package models

import "time"

// ============================================================================
// BUSINESS MODULE MODEL
// ============================================================================

type ModuleType string

const (
	TypeRunning ModuleType = "running"
	TypeIdea    ModuleType = "idea"
)

// Period is one of the four income cadences tracked per module.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

type Income struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

type Task struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// BusinessModule is a tracked venture or idea, owned by exactly one user.
// ID is empty for an unsaved draft and assigned by the store on first save.
type BusinessModule struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        ModuleType `json:"type"`
	Income      Income     `json:"income"`
	Tasks       []Task     `json:"tasks"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ============================================================================
// MODULE REQUESTS
// ============================================================================

// CreateModuleRequest carries a draft as produced by the creation form.
// Module fields are deliberately unvalidated here (required-field checks
// live in the UI only).
type CreateModuleRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        ModuleType `json:"type"`
	Income      Income     `json:"income"`
	Tasks       []Task     `json:"tasks"`
}

// NormalizeIncomeRequest is one income-field edit on the creation form.
type NormalizeIncomeRequest struct {
	Period Period  `json:"period" binding:"required"`
	Value  float64 `json:"value"`
}

// ============================================================================
// EDIT COMMANDS
// ============================================================================

// EditOp tags one edit command on the module-detail screen.
type EditOp string

const (
	EditName        EditOp = "set_name"
	EditDescription EditOp = "set_description"
	EditType        EditOp = "set_type"
	EditIncome      EditOp = "set_income"
	EditAddTask     EditOp = "add_task"
	EditToggleTask  EditOp = "toggle_task"
	EditRemoveTask  EditOp = "remove_task"
)

// EditCommand is one tagged edit applied to a module draft. Only the fields
// relevant to the op are read; set_income writes one raw period figure with
// no cross-field recomputation.
type EditCommand struct {
	Op     EditOp  `json:"op"`
	Value  string  `json:"value,omitempty"`
	Period Period  `json:"period,omitempty"`
	Amount float64 `json:"amount,omitempty"`
	TaskID string  `json:"task_id,omitempty"`
}

type EditModuleRequest struct {
	Commands []EditCommand `json:"commands" binding:"required"`
}
