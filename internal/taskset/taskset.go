// Package taskset holds the pure task-list logic shared by the TUI and the
// scriptable commands: three-axis filtering over a fetched snapshot and the
// completed/ignored status reconciliation applied before an update call.
package taskset

import "github.com/HardenedIot/console/internal/model"

// FilterAll is the bypass value for every filter axis.
const FilterAll = "all"

// Status filter values beyond FilterAll.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusIgnored   = "ignored"
)

// Filter selects tasks along three independent axes. An axis set to
// FilterAll (or left empty) matches everything; otherwise all selected
// axes must match.
type Filter struct {
	Technology string
	Status     string
	Risk       string
}

func (f Filter) technologyMatches(t model.Task) bool {
	if f.Technology == "" || f.Technology == FilterAll {
		return true
	}
	return string(t.Technology) == f.Technology
}

func (f Filter) statusMatches(t model.Task) bool {
	switch f.Status {
	case "", FilterAll:
		return true
	case StatusCompleted:
		return t.Completed
	case StatusIgnored:
		return t.Ignored
	case StatusPending:
		return t.Pending()
	default:
		return false
	}
}

func (f Filter) riskMatches(t model.Task) bool {
	if f.Risk == "" || f.Risk == FilterAll {
		return true
	}
	return riskValue(t.RiskLevel) == f.Risk
}

func riskValue(r model.RiskLevel) string {
	switch r {
	case model.RiskLow:
		return "1"
	case model.RiskMedium:
		return "2"
	case model.RiskHigh:
		return "3"
	default:
		return ""
	}
}

// Matches reports whether a single task passes every axis of the filter.
func (f Filter) Matches(t model.Task) bool {
	return f.technologyMatches(t) && f.statusMatches(t) && f.riskMatches(t)
}

// Apply derives the filtered view of tasks. The input snapshot is never
// mutated; the result is always recomputed from the authoritative list.
func Apply(tasks []model.Task, f Filter) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// StatusOf classifies a task into exactly one of the status filter values.
func StatusOf(t model.Task) string {
	switch {
	case t.Completed:
		return StatusCompleted
	case t.Ignored:
		return StatusIgnored
	default:
		return StatusPending
	}
}

// StatusField names a toggleable task status flag.
type StatusField string

const (
	FieldCompleted StatusField = "completed"
	FieldIgnored   StatusField = "ignored"
)

// ApplyStatusChange merges a single flag change into a copy of the task.
// Setting one flag to true forces the other to false; completed and ignored
// can never both hold. Clearing a flag touches nothing else.
func ApplyStatusChange(t model.Task, field StatusField, value bool) model.Task {
	switch field {
	case FieldCompleted:
		t.Completed = value
		if value {
			t.Ignored = false
		}
	case FieldIgnored:
		t.Ignored = value
		if value {
			t.Completed = false
		}
	}
	return t
}

// Replace swaps the task with a matching task_id in a copy of the snapshot.
// Callers invoke it only after the backend accepted the update, so a failed
// call leaves the authoritative list untouched. The snapshot is returned
// unchanged when no task matches.
func Replace(tasks []model.Task, updated model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	for i, t := range out {
		if t.TaskID == updated.TaskID {
			out[i] = updated
		}
	}
	return out
}

// TechnologiesOf returns the distinct technologies present in the snapshot,
// in first-seen order. The project view builds its technology filter options
// from this rather than the full enum.
func TechnologiesOf(tasks []model.Task) []model.Technology {
	seen := map[model.Technology]bool{}
	var out []model.Technology
	for _, t := range tasks {
		if !seen[t.Technology] {
			seen[t.Technology] = true
			out = append(out, t.Technology)
		}
	}
	return out
}
