package taskset

import (
	"reflect"
	"testing"

	"github.com/HardenedIot/console/internal/model"
)

func sampleTasks() []model.Task {
	return []model.Task{
		{TaskID: "1", Name: "Scan ports", Technology: model.TechWiFi, RiskLevel: model.RiskMedium},
		{TaskID: "2", Name: "Dump firmware", Technology: model.TechJTAG, RiskLevel: model.RiskHigh, Completed: true},
		{TaskID: "3", Name: "Sniff pairing", Technology: model.TechBluetooth, RiskLevel: model.RiskLow, Ignored: true},
		{TaskID: "4", Name: "Probe broker", Technology: model.TechMQTT, RiskLevel: model.RiskHigh},
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{
			name:    "no filters returns everything",
			filter:  Filter{},
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "explicit all on every axis returns everything",
			filter:  Filter{Technology: FilterAll, Status: FilterAll, Risk: FilterAll},
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "technology axis",
			filter:  Filter{Technology: "jtag"},
			wantIDs: []string{"2"},
		},
		{
			name:    "pending excludes completed and ignored",
			filter:  Filter{Status: StatusPending},
			wantIDs: []string{"1", "4"},
		},
		{
			name:    "completed axis",
			filter:  Filter{Status: StatusCompleted},
			wantIDs: []string{"2"},
		},
		{
			name:    "ignored axis",
			filter:  Filter{Status: StatusIgnored},
			wantIDs: []string{"3"},
		},
		{
			name:    "risk axis",
			filter:  Filter{Risk: "3"},
			wantIDs: []string{"2", "4"},
		},
		{
			name:    "axes combine with AND",
			filter:  Filter{Status: StatusPending, Risk: "3"},
			wantIDs: []string{"4"},
		},
		{
			name:    "conjunction can be empty",
			filter:  Filter{Technology: "wifi", Status: StatusCompleted},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Apply(sampleTasks(), tt.filter)
			ids := make([]string, 0, len(got))
			for _, task := range got {
				ids = append(ids, task.TaskID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Fatalf("Apply ids = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestApplyIsIdempotentAndSubset(t *testing.T) {
	t.Parallel()

	tasks := sampleTasks()
	filters := []Filter{
		{},
		{Technology: "wifi"},
		{Status: StatusPending},
		{Risk: "2"},
		{Technology: "mqtt", Status: StatusPending, Risk: "3"},
		{Status: "nonsense"},
	}

	inSnapshot := func(task model.Task) bool {
		for _, t := range tasks {
			if reflect.DeepEqual(t, task) {
				return true
			}
		}
		return false
	}

	for _, f := range filters {
		once := Apply(tasks, f)
		twice := Apply(once, f)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("filter %+v not idempotent: %v vs %v", f, once, twice)
		}
		for _, task := range once {
			if !inSnapshot(task) {
				t.Fatalf("filter %+v produced task outside snapshot: %+v", f, task)
			}
		}
	}
}

func TestApplyDoesNotMutateSnapshot(t *testing.T) {
	t.Parallel()

	tasks := sampleTasks()
	before := make([]model.Task, len(tasks))
	copy(before, tasks)

	Apply(tasks, Filter{Status: StatusCompleted})

	if !reflect.DeepEqual(tasks, before) {
		t.Fatalf("Apply mutated the authoritative snapshot")
	}
}

func TestStatusOfIsExhaustiveAndExclusive(t *testing.T) {
	t.Parallel()

	for _, task := range sampleTasks() {
		status := StatusOf(task)
		holds := 0
		if task.Completed {
			holds++
		}
		if task.Ignored {
			holds++
		}
		if task.Pending() {
			holds++
		}
		if holds != 1 {
			t.Fatalf("task %s: expected exactly one of completed/ignored/pending, got %d", task.TaskID, holds)
		}
		switch status {
		case StatusCompleted:
			if !task.Completed {
				t.Fatalf("task %s classified completed but flag is false", task.TaskID)
			}
		case StatusIgnored:
			if !task.Ignored {
				t.Fatalf("task %s classified ignored but flag is false", task.TaskID)
			}
		case StatusPending:
			if !task.Pending() {
				t.Fatalf("task %s classified pending but flags disagree", task.TaskID)
			}
		default:
			t.Fatalf("unknown status %q", status)
		}
	}
}

func TestApplyStatusChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		task          model.Task
		field         StatusField
		value         bool
		wantCompleted bool
		wantIgnored   bool
	}{
		{
			name:          "completing an ignored task clears ignored",
			task:          model.Task{TaskID: "t", Ignored: true},
			field:         FieldCompleted,
			value:         true,
			wantCompleted: true,
			wantIgnored:   false,
		},
		{
			name:          "ignoring a completed task clears completed",
			task:          model.Task{TaskID: "t", Completed: true},
			field:         FieldIgnored,
			value:         true,
			wantCompleted: false,
			wantIgnored:   true,
		},
		{
			name:          "un-ignoring a pending task touches nothing else",
			task:          model.Task{TaskID: "t", Ignored: true},
			field:         FieldIgnored,
			value:         false,
			wantCompleted: false,
			wantIgnored:   false,
		},
		{
			name:          "un-completing leaves ignored alone",
			task:          model.Task{TaskID: "t", Completed: true},
			field:         FieldCompleted,
			value:         false,
			wantCompleted: false,
			wantIgnored:   false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ApplyStatusChange(tt.task, tt.field, tt.value)
			if got.Completed != tt.wantCompleted || got.Ignored != tt.wantIgnored {
				t.Fatalf("got completed=%v ignored=%v, want completed=%v ignored=%v",
					got.Completed, got.Ignored, tt.wantCompleted, tt.wantIgnored)
			}
			if got.Completed && got.Ignored {
				t.Fatalf("completed and ignored must never both hold")
			}
		})
	}
}

func TestApplyStatusChangeKeepsOtherFields(t *testing.T) {
	t.Parallel()

	task := model.Task{
		TaskID:      "5",
		Name:        "Scan ports",
		Description: "nmap the device",
		Technology:  model.TechWiFi,
		RiskLevel:   model.RiskMedium,
	}
	got := ApplyStatusChange(task, FieldCompleted, true)
	if got.TaskID != task.TaskID || got.Name != task.Name ||
		got.Description != task.Description || got.Technology != task.Technology ||
		got.RiskLevel != task.RiskLevel {
		t.Fatalf("status change altered non-status fields: %+v", got)
	}
}

func TestReplace(t *testing.T) {
	t.Parallel()

	tasks := sampleTasks()
	updated := tasks[0]
	updated.Completed = true

	got := Replace(tasks, updated)
	if !got[0].Completed {
		t.Fatalf("expected task 1 to be replaced")
	}
	if tasks[0].Completed {
		t.Fatalf("Replace mutated the original snapshot")
	}

	// Unknown id: snapshot unchanged.
	got = Replace(tasks, model.Task{TaskID: "nope", Completed: true})
	if !reflect.DeepEqual(got, tasks) {
		t.Fatalf("Replace with unknown id changed the snapshot")
	}
}

func TestTechnologiesOf(t *testing.T) {
	t.Parallel()

	tasks := append(sampleTasks(), model.Task{TaskID: "5", Technology: model.TechWiFi})
	got := TechnologiesOf(tasks)
	want := []model.Technology{model.TechWiFi, model.TechJTAG, model.TechBluetooth, model.TechMQTT}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TechnologiesOf = %v, want %v", got, want)
	}
}
