package tui

import (
	"context"

	"github.com/HardenedIot/console/internal/api"
	"github.com/HardenedIot/console/internal/model"
	"github.com/HardenedIot/console/internal/notify"
	"github.com/HardenedIot/console/internal/session"
	"github.com/HardenedIot/console/internal/taskset"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
)

type view int

const (
	viewLogin view = iota
	viewRegister
	viewDashboard
	viewTeams
	viewTeamDetail
	viewTeamForm
	viewProjects
	viewProjectForm
	viewProjectDetail
	viewTaskForm
	viewUsers
)

// confirmAction identifies what a pending confirm modal will do.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteTeam
	confirmDeleteProject
	confirmDeleteTask
)

type consoleModel struct {
	sess     *session.Store
	api      *api.Client
	notifier *notify.Broadcaster

	width  int
	height int

	view view
	user model.User

	// Each navigation owns a context; leaving a page cancels its loads and
	// the sequence number drops any completion that still arrives.
	navCtx    context.Context
	navCancel context.CancelFunc
	loadSeq   int

	loading bool
	spin    spinner.Model

	flash    *notify.Message
	flashSeq int

	// dashboard
	dashTeams    []model.Team
	dashProjects []model.Project

	// teams
	teamsList     list.Model
	teamDetail    model.Team
	teamProjects  []model.Project
	teamForm      inputForm
	editingTeamID string // empty when creating

	// projects
	projectsList     list.Model
	projectForm      inputForm
	editingProjectID string

	// project detail: tasks is the authoritative snapshot; the list renders
	// the filtered derivation and never feeds back into it.
	project    model.Project
	tasks      []model.Task
	taskFilter taskset.Filter
	taskList   list.Model
	taskForm   inputForm
	editingTaskID string

	// users
	usersList list.Model

	// forms for the session screens
	loginForm    inputForm
	registerForm inputForm

	// confirm modal
	confirmPrompt string
	confirmWhat   confirmAction
	confirmID     string
}

func newConsoleModel(sess *session.Store, client *api.Client) consoleModel {
	m := consoleModel{
		sess:     sess,
		api:      client,
		notifier: notify.New(),
		view:     viewLogin,
	}

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot

	m.teamsList = newList("Teams", "team", nil)
	m.projectsList = newList("Projects", "project", nil)
	m.taskList = newList("Tasks", "task", nil)
	m.usersList = newList("Users", "user", nil)

	m.loginForm = newLoginForm()
	m.registerForm = newRegisterForm()

	if m.sess.Authenticated() {
		m.view = viewDashboard
		m.loading = true
		if u, ok := m.sess.CachedUser(); ok {
			m.user = u
		}
	}

	return m
}

// beginNav cancels the previous page's in-flight loads and opens a fresh
// context for the next one.
func (m *consoleModel) beginNav() (context.Context, int) {
	if m.navCancel != nil {
		m.navCancel()
	}
	m.navCtx, m.navCancel = context.WithCancel(context.Background())
	m.loadSeq++
	return m.navCtx, m.loadSeq
}

// stale reports whether a load completion belongs to a page we already left.
func (m *consoleModel) stale(seq int) bool { return seq != m.loadSeq }

func (m *consoleModel) resizeLists() {
	h := m.height - 7
	if h < 6 {
		h = 6
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	m.teamsList.SetSize(w, h)
	m.projectsList.SetSize(w, h)
	m.usersList.SetSize(w, h)
	// Project detail shows a header block above the task list.
	taskH := h - 8
	if taskH < 4 {
		taskH = 4
	}
	m.taskList.SetSize(w, taskH)
}

func newLoginForm() inputForm {
	return newInputForm("Sign in",
		newTextField("email", "Email", "you@example.com"),
		newSecretField("password", "Password"),
	)
}

func newRegisterForm() inputForm {
	return newInputForm("Create account",
		newTextField("username", "Username", "3-20 characters"),
		newTextField("name", "Name", ""),
		newTextField("surname", "Surname", ""),
		newTextField("email", "Email", "you@example.com"),
		newSecretField("password", "Password"),
		newSecretField("confirm_password", "Confirm"),
		newCheckboxField("private", "Private"),
	)
}

func newTeamForm() inputForm {
	return newInputForm("Team",
		newTextField("team_id", "Team ID", "stable key, e.g. red-team"),
		newTextField("team_name", "Name", "3-50 characters"),
		newTextField("description", "Description", "up to 200 characters"),
		newCheckboxField("private", "Private"),
	)
}

func newProjectForm() inputForm {
	return newInputForm("Project",
		newTextField("project_id", "Project ID", "stable key, e.g. smart-lock"),
		newTextField("project_name", "Name", "3-50 characters"),
		newTextField("team_id", "Team", "owning team_id"),
		newTextField("description", "Description", "up to 500 characters"),
		newTextField("url", "URL", "https://…"),
		newCheckboxField("private", "Private"),
	)
}

func newTaskForm() inputForm {
	return newInputForm("Task",
		newTextField("task_id", "Task ID", "generated when left empty"),
		newTextField("name", "Name", "3-100 characters"),
		newTextField("technology", "Technology", "e.g. wifi, mqtt, zigbee"),
		newTextField("risk_level", "Risk", "1 (low), 2 (medium), 3 (high)"),
		newTextField("description", "Description", "up to 500 characters"),
	)
}
