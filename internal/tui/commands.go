package tui

import (
	"context"
	"sync"
	"time"

	"github.com/HardenedIot/console/internal/api"
	"github.com/HardenedIot/console/internal/model"
	"github.com/HardenedIot/console/internal/notify"
	"github.com/HardenedIot/console/internal/taskset"

	tea "github.com/charmbracelet/bubbletea"
)

const flashTTL = 4 * time.Second

// Session messages. These carry no sequence number: the session screens
// block on a single in-flight action at a time.
type sessionCheckedMsg struct {
	user model.User
	err  error
}

type loginDoneMsg struct {
	user model.User
	err  error
}

type registerDoneMsg struct{ err error }

type loggedOutMsg struct{}

// Load messages carry the sequence number of the navigation that issued
// them; stale ones are dropped in Update.
type dashboardLoadedMsg struct {
	seq      int
	teams    []model.Team
	projects []model.Project
}

type teamsLoadedMsg struct {
	seq   int
	teams []model.Team
}

type teamDetailLoadedMsg struct {
	seq      int
	team     model.Team
	projects []model.Project
}

type projectsLoadedMsg struct {
	seq      int
	projects []model.Project
}

type projectDetailLoadedMsg struct {
	seq     int
	project model.Project
	tasks   []model.Task
}

type usersLoadedMsg struct {
	seq   int
	users []model.User
}

type loadFailedMsg struct {
	seq int
	err error
}

// Mutation results. The originating page is still current when they land,
// so they carry no sequence number; a navigation away cancels the context
// and surfaces as an error instead.
type teamSavedMsg struct {
	team    model.Team
	created bool
	err     error
}

type teamDeletedMsg struct {
	teamID string
	err    error
}

type projectSavedMsg struct {
	project model.Project
	created bool
	err     error
}

type projectDeletedMsg struct {
	projectID string
	err       error
}

type taskSavedMsg struct {
	task    model.Task
	created bool
	err     error
}

type taskStatusChangedMsg struct {
	task  model.Task
	field taskset.StatusField
	value bool
	err   error
}

type taskDeletedMsg struct {
	taskID string
	err    error
}

type flashExpiredMsg struct{ seq int }

func (m consoleModel) checkSession() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		u, err := m.sess.CurrentUser(ctx)
		return sessionCheckedMsg{user: u, err: err}
	}
}

func (m consoleModel) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		u, err := m.sess.Login(ctx, email, password)
		return loginDoneMsg{user: u, err: err}
	}
}

func (m consoleModel) registerCmd(req api.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return registerDoneMsg{err: m.sess.Register(ctx, req)}
	}
}

func (m consoleModel) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		_ = m.sess.Logout(context.Background())
		return loggedOutMsg{}
	}
}

// loadDashboard fetches teams and projects concurrently. The page renders
// only once both arrive; a failure on either side fails the whole load.
func (m consoleModel) loadDashboard(ctx context.Context, seq int) tea.Cmd {
	return func() tea.Msg {
		var (
			wg       sync.WaitGroup
			teams    []model.Team
			projects []model.Project
			teamErr  error
			projErr  error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			teams, teamErr = m.api.Teams(ctx)
		}()
		go func() {
			defer wg.Done()
			projects, projErr = m.api.Projects(ctx)
		}()
		wg.Wait()
		if teamErr != nil {
			return loadFailedMsg{seq: seq, err: teamErr}
		}
		if projErr != nil {
			return loadFailedMsg{seq: seq, err: projErr}
		}
		return dashboardLoadedMsg{seq: seq, teams: teams, projects: projects}
	}
}

func (m consoleModel) loadTeams(ctx context.Context, seq int) tea.Cmd {
	return func() tea.Msg {
		teams, err := m.api.Teams(ctx)
		if err != nil {
			return loadFailedMsg{seq: seq, err: err}
		}
		return teamsLoadedMsg{seq: seq, teams: teams}
	}
}

func (m consoleModel) loadTeamDetail(ctx context.Context, seq int, teamID string) tea.Cmd {
	return func() tea.Msg {
		team, err := m.api.Team(ctx, teamID)
		if err != nil {
			return loadFailedMsg{seq: seq, err: err}
		}
		projects, err := m.api.TeamProjects(ctx, teamID)
		if err != nil {
			return loadFailedMsg{seq: seq, err: err}
		}
		return teamDetailLoadedMsg{seq: seq, team: team, projects: projects}
	}
}

func (m consoleModel) loadProjects(ctx context.Context, seq int) tea.Cmd {
	return func() tea.Msg {
		projects, err := m.api.Projects(ctx)
		if err != nil {
			return loadFailedMsg{seq: seq, err: err}
		}
		return projectsLoadedMsg{seq: seq, projects: projects}
	}
}

func (m consoleModel) loadProjectDetail(ctx context.Context, seq int, projectID string) tea.Cmd {
	return func() tea.Msg {
		project, err := m.api.Project(ctx, projectID)
		if err != nil {
			return loadFailedMsg{seq: seq, err: err}
		}
		tasks, err := m.api.Tasks(ctx, projectID)
		if err != nil {
			return loadFailedMsg{seq: seq, err: err}
		}
		return projectDetailLoadedMsg{seq: seq, project: project, tasks: tasks}
	}
}

func (m consoleModel) loadUsers(ctx context.Context, seq int) tea.Cmd {
	return func() tea.Msg {
		users, err := m.api.Users(ctx)
		if err != nil {
			return loadFailedMsg{seq: seq, err: err}
		}
		return usersLoadedMsg{seq: seq, users: users}
	}
}

func (m consoleModel) saveTeam(ctx context.Context, team model.Team, editingID string) tea.Cmd {
	return func() tea.Msg {
		var (
			saved model.Team
			err   error
		)
		if editingID == "" {
			saved, err = m.api.CreateTeam(ctx, team)
		} else {
			saved, err = m.api.UpdateTeam(ctx, editingID, team)
		}
		return teamSavedMsg{team: saved, created: editingID == "", err: err}
	}
}

func (m consoleModel) deleteTeam(ctx context.Context, teamID string) tea.Cmd {
	return func() tea.Msg {
		return teamDeletedMsg{teamID: teamID, err: m.api.DeleteTeam(ctx, teamID)}
	}
}

func (m consoleModel) saveProject(ctx context.Context, project model.Project, editingID string) tea.Cmd {
	return func() tea.Msg {
		var (
			saved model.Project
			err   error
		)
		if editingID == "" {
			saved, err = m.api.CreateProject(ctx, project)
		} else {
			saved, err = m.api.UpdateProject(ctx, editingID, project)
		}
		return projectSavedMsg{project: saved, created: editingID == "", err: err}
	}
}

func (m consoleModel) deleteProject(ctx context.Context, projectID string) tea.Cmd {
	return func() tea.Msg {
		return projectDeletedMsg{projectID: projectID, err: m.api.DeleteProject(ctx, projectID)}
	}
}

func (m consoleModel) saveTask(ctx context.Context, projectID string, task model.Task, editing bool) tea.Cmd {
	return func() tea.Msg {
		var (
			saved model.Task
			err   error
		)
		if editing {
			saved, err = m.api.UpdateTask(ctx, projectID, task)
		} else {
			saved, err = m.api.CreateTask(ctx, projectID, task)
		}
		return taskSavedMsg{task: saved, created: !editing, err: err}
	}
}

// changeTaskStatus sends the full task record with the flipped flag; setting
// one flag true forces the opposing flag false.
func (m consoleModel) changeTaskStatus(ctx context.Context, projectID string, task model.Task, field taskset.StatusField, value bool) tea.Cmd {
	return func() tea.Msg {
		updated := taskset.ApplyStatusChange(task, field, value)
		saved, err := m.api.UpdateTask(ctx, projectID, updated)
		if err == nil && saved.TaskID == "" {
			// Some backends echo an empty body on PATCH.
			saved = updated
		}
		return taskStatusChangedMsg{task: saved, field: field, value: value, err: err}
	}
}

func (m consoleModel) deleteTask(ctx context.Context, projectID, taskID string) tea.Cmd {
	return func() tea.Msg {
		return taskDeletedMsg{taskID: taskID, err: m.api.DeleteTask(ctx, projectID, taskID)}
	}
}

// announce publishes to the single-slot broadcaster and immediately adopts
// the latest pending message, so a new flash replaces an unseen one.
func (m *consoleModel) announce(text string, severity notify.Severity) tea.Cmd {
	m.notifier.Announce(text, severity)
	if msg, ok := m.notifier.Next(); ok {
		m.flash = &msg
	}
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(flashTTL, func(time.Time) tea.Msg {
		return flashExpiredMsg{seq: seq}
	})
}
