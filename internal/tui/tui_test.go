package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/HardenedIot/console/internal/api"
	"github.com/HardenedIot/console/internal/model"
	"github.com/HardenedIot/console/internal/notify"
	"github.com/HardenedIot/console/internal/session"
	"github.com/HardenedIot/console/internal/taskset"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) consoleModel {
	t.Helper()
	vault, err := session.OpenVault(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("open vault: %v", err)
	}
	t.Cleanup(func() { vault.Close() })
	client := api.NewClient("http://127.0.0.1:1", vault)
	return newConsoleModel(session.New(vault, client), client)
}

func sampleTasks() []model.Task {
	return []model.Task{
		{TaskID: "t1", Name: "Rotate default credentials", Technology: model.TechWiFi, RiskLevel: model.RiskHigh},
		{TaskID: "t2", Name: "Disable UART console", Technology: model.TechUART, RiskLevel: model.RiskHigh, Completed: true},
		{TaskID: "t3", Name: "Harden MQTT broker", Technology: model.TechMQTT, RiskLevel: model.RiskMedium, Ignored: true},
		{TaskID: "t4", Name: "Pin TLS certificates", Technology: model.TechWiFi, RiskLevel: model.RiskLow},
	}
}

func openProject(t *testing.T, m consoleModel) consoleModel {
	t.Helper()
	m.view = viewProjectDetail
	m.taskFilter = taskset.Filter{Technology: taskset.FilterAll, Status: taskset.FilterAll, Risk: taskset.FilterAll}
	m.width, m.height = 100, 40
	m.resizeLists()
	next, _ := m.Update(projectDetailLoadedMsg{
		seq:     m.loadSeq,
		project: model.Project{ProjectID: "smart-lock", ProjectName: "Smart Lock", Description: "Door lock firmware"},
		tasks:   sampleTasks(),
	})
	return next.(consoleModel)
}

func press(t *testing.T, m consoleModel, key string) consoleModel {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(consoleModel)
}

func TestProjectDetailShowsAllTasks(t *testing.T) {
	m := openProject(t, newTestModel(t))

	if got := len(m.taskList.Items()); got != 4 {
		t.Fatalf("want 4 tasks listed, got %d", got)
	}
	out := m.View()
	for _, want := range []string{"Smart Lock", "Rotate default credentials", "Disable UART console"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStatusFilterCycles(t *testing.T) {
	m := openProject(t, newTestModel(t))

	m = press(t, m, "s") // all -> pending
	if m.taskFilter.Status != taskset.StatusPending {
		t.Fatalf("status filter = %q, want pending", m.taskFilter.Status)
	}
	if got := len(m.taskList.Items()); got != 2 {
		t.Fatalf("pending filter: want 2 tasks, got %d", got)
	}

	m = press(t, m, "s") // pending -> completed
	if got := len(m.taskList.Items()); got != 1 {
		t.Fatalf("completed filter: want 1 task, got %d", got)
	}

	m = press(t, m, "s") // completed -> ignored
	m = press(t, m, "s") // ignored -> all
	if m.taskFilter.Status != taskset.FilterAll {
		t.Fatalf("status filter = %q, want all after full cycle", m.taskFilter.Status)
	}
	if got := len(m.taskList.Items()); got != 4 {
		t.Fatalf("cleared filter: want 4 tasks, got %d", got)
	}
}

func TestFiltersCombineAcrossAxes(t *testing.T) {
	m := openProject(t, newTestModel(t))

	m = press(t, m, "t") // all -> wifi (first technology seen)
	if m.taskFilter.Technology != string(model.TechWiFi) {
		t.Fatalf("technology filter = %q, want wifi", m.taskFilter.Technology)
	}
	m = press(t, m, "r") // all -> 1
	m = press(t, m, "r") // 1 -> 2
	m = press(t, m, "r") // 2 -> 3

	// wifi AND risk 3 AND any status: only t1.
	if got := len(m.taskList.Items()); got != 1 {
		t.Fatalf("want 1 task after combined filter, got %d", got)
	}
	if it := m.taskList.Items()[0].(taskItem); it.task.TaskID != "t1" {
		t.Fatalf("combined filter selected %q, want t1", it.task.TaskID)
	}

	m = press(t, m, "0")
	if got := len(m.taskList.Items()); got != 4 {
		t.Fatalf("clear: want 4 tasks, got %d", got)
	}
}

func TestStatusChangeReconcilesSnapshot(t *testing.T) {
	m := openProject(t, newTestModel(t))

	// Completing an ignored task clears the ignored flag in the snapshot.
	updated := taskset.ApplyStatusChange(sampleTasks()[2], taskset.FieldCompleted, true)
	next, _ := m.Update(taskStatusChangedMsg{task: updated, field: taskset.FieldCompleted, value: true})
	m = next.(consoleModel)

	var got model.Task
	for _, task := range m.tasks {
		if task.TaskID == "t3" {
			got = task
		}
	}
	if !got.Completed || got.Ignored {
		t.Fatalf("task t3 = completed:%v ignored:%v, want completed and not ignored", got.Completed, got.Ignored)
	}
	if m.flash == nil || m.flash.Text != "Task completed" {
		t.Fatalf("flash = %+v, want Task completed", m.flash)
	}
}

func TestStaleLoadDropped(t *testing.T) {
	m := openProject(t, newTestModel(t))
	m.loadSeq = 5

	next, _ := m.Update(projectDetailLoadedMsg{seq: 4, project: model.Project{ProjectName: "Old"}, tasks: nil})
	m = next.(consoleModel)

	if m.project.ProjectName != "Smart Lock" {
		t.Fatalf("stale load overwrote page: %q", m.project.ProjectName)
	}
	if got := len(m.taskList.Items()); got != 4 {
		t.Fatalf("stale load touched the task list: %d items", got)
	}
}

func TestFlashOverwrittenByNewer(t *testing.T) {
	m := newTestModel(t)

	_ = m.announce("first", notify.Info)
	firstSeq := m.flashSeq
	_ = m.announce("second", notify.Success)

	if m.flash == nil || m.flash.Text != "second" {
		t.Fatalf("flash = %+v, want second", m.flash)
	}

	// The first flash's expiry must not clear the newer message.
	next, _ := m.Update(flashExpiredMsg{seq: firstSeq})
	m = next.(consoleModel)
	if m.flash == nil {
		t.Fatal("expired old flash cleared the newer one")
	}

	next, _ = m.Update(flashExpiredMsg{seq: m.flashSeq})
	m = next.(consoleModel)
	if m.flash != nil {
		t.Fatal("current flash not cleared on expiry")
	}
}

func TestLoginValidationBlocksSubmit(t *testing.T) {
	m := newTestModel(t)
	m.view = viewLogin

	// Submit with empty fields: errors set, no network command issued.
	m.loginForm.setFocus(len(m.loginForm.fields) - 1)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(consoleModel)
	if cmd != nil {
		t.Fatal("submit with invalid form issued a command")
	}
	if m.loginForm.errs["email"] == "" || m.loginForm.errs["password"] == "" {
		t.Fatalf("validation errors not set: %v", m.loginForm.errs)
	}
	if out := m.View(); !strings.Contains(out, "Email is required") {
		t.Error("view does not show the email error")
	}
}

func TestDeleteTaskRemovesFromSnapshot(t *testing.T) {
	m := openProject(t, newTestModel(t))

	next, _ := m.Update(taskDeletedMsg{taskID: "t2"})
	m = next.(consoleModel)

	if len(m.tasks) != 3 {
		t.Fatalf("want 3 tasks after delete, got %d", len(m.tasks))
	}
	for _, task := range m.tasks {
		if task.TaskID == "t2" {
			t.Fatal("deleted task still in snapshot")
		}
	}
	if m.flash == nil || m.flash.Text != "Task deleted" {
		t.Fatalf("flash = %+v, want Task deleted", m.flash)
	}
}
