package tui

import (
	"context"
	"errors"

	"github.com/HardenedIot/console/internal/api"
	"github.com/HardenedIot/console/internal/forms"
	"github.com/HardenedIot/console/internal/model"
	"github.com/HardenedIot/console/internal/notify"
	"github.com/HardenedIot/console/internal/session"
	"github.com/HardenedIot/console/internal/taskset"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

func (m consoleModel) Init() tea.Cmd {
	if m.view == viewDashboard {
		return tea.Batch(m.spin.Tick, m.checkSession())
	}
	return textinput.Blink
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeLists()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case flashExpiredMsg:
		if msg.seq == m.flashSeq {
			m.flash = nil
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.confirmWhat != confirmNone {
			return m.updateConfirm(msg)
		}
		return m.handleKey(msg)
	}

	return m.handleMsg(msg)
}

func (m consoleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case viewLogin:
		return m.updateLoginKeys(msg)
	case viewRegister:
		return m.updateRegisterKeys(msg)
	case viewDashboard:
		return m.updateDashboardKeys(msg)
	case viewTeams:
		return m.updateTeamsKeys(msg)
	case viewTeamDetail:
		return m.updateTeamDetailKeys(msg)
	case viewTeamForm:
		return m.updateTeamFormKeys(msg)
	case viewProjects:
		return m.updateProjectsKeys(msg)
	case viewProjectForm:
		return m.updateProjectFormKeys(msg)
	case viewProjectDetail:
		return m.updateProjectDetailKeys(msg)
	case viewTaskForm:
		return m.updateTaskFormKeys(msg)
	case viewUsers:
		return m.updateUsersKeys(msg)
	}
	return m, nil
}

// Navigation helpers. Each one retires the previous page's context before
// issuing the new page's load.

func (m *consoleModel) goDashboard() tea.Cmd {
	ctx, seq := m.beginNav()
	m.view = viewDashboard
	m.loading = true
	return tea.Batch(m.spin.Tick, m.loadDashboard(ctx, seq))
}

func (m *consoleModel) goTeams() tea.Cmd {
	ctx, seq := m.beginNav()
	m.view = viewTeams
	m.loading = true
	return tea.Batch(m.spin.Tick, m.loadTeams(ctx, seq))
}

func (m *consoleModel) goTeamDetail(teamID string) tea.Cmd {
	ctx, seq := m.beginNav()
	m.view = viewTeamDetail
	m.loading = true
	return tea.Batch(m.spin.Tick, m.loadTeamDetail(ctx, seq, teamID))
}

func (m *consoleModel) goProjects() tea.Cmd {
	ctx, seq := m.beginNav()
	m.view = viewProjects
	m.loading = true
	return tea.Batch(m.spin.Tick, m.loadProjects(ctx, seq))
}

func (m *consoleModel) goProjectDetail(projectID string, resetFilter bool) tea.Cmd {
	ctx, seq := m.beginNav()
	m.view = viewProjectDetail
	m.loading = true
	if resetFilter {
		m.taskFilter = taskset.Filter{
			Technology: taskset.FilterAll,
			Status:     taskset.FilterAll,
			Risk:       taskset.FilterAll,
		}
	}
	return tea.Batch(m.spin.Tick, m.loadProjectDetail(ctx, seq, projectID))
}

func (m *consoleModel) goUsers() tea.Cmd {
	ctx, seq := m.beginNav()
	m.view = viewUsers
	m.loading = true
	return tea.Batch(m.spin.Tick, m.loadUsers(ctx, seq))
}

// Session screens.

func (m consoleModel) updateLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+r" {
		m.view = viewRegister
		m.registerForm = newRegisterForm()
		return m, textinput.Blink
	}
	submit, cmd := m.loginForm.handleKey(msg)
	if !submit {
		return m, cmd
	}
	f := forms.Login{
		Email:    m.loginForm.value("email"),
		Password: m.loginForm.value("password"),
	}
	m.loginForm.errs = f.Validate()
	if !m.loginForm.errs.Ok() {
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(m.spin.Tick, m.loginCmd(f.Email, f.Password))
}

func (m consoleModel) updateRegisterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.view = viewLogin
		return m, textinput.Blink
	}
	submit, cmd := m.registerForm.handleKey(msg)
	if !submit {
		return m, cmd
	}
	f := forms.Register{
		Username:        m.registerForm.value("username"),
		Name:            m.registerForm.value("name"),
		Surname:         m.registerForm.value("surname"),
		Email:           m.registerForm.value("email"),
		Password:        m.registerForm.value("password"),
		ConfirmPassword: m.registerForm.value("confirm_password"),
		Private:         m.registerForm.checked("private"),
	}
	m.registerForm.errs = f.Validate()
	if !m.registerForm.errs.Ok() {
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(m.spin.Tick, m.registerCmd(api.RegisterRequest{
		Username: f.Username,
		Name:     f.Name,
		Surname:  f.Surname,
		Email:    f.Email,
		Password: f.Password,
		Private:  f.Private,
	}))
}

func (m consoleModel) updateDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "t":
		return m, m.goTeams()
	case "p":
		return m, m.goProjects()
	case "u":
		return m, m.goUsers()
	case "r":
		return m, m.goDashboard()
	case "o":
		return m, m.logoutCmd()
	}
	return m, nil
}

// Teams.

func (m consoleModel) updateTeamsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.teamsList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.teamsList, cmd = m.teamsList.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "esc":
		return m, m.goDashboard()
	case "r":
		return m, m.goTeams()
	case "enter":
		if it, ok := m.teamsList.SelectedItem().(teamItem); ok {
			return m, m.goTeamDetail(it.team.TeamID)
		}
		return m, nil
	case "n":
		m.openTeamForm(nil)
		return m, textinput.Blink
	case "e":
		if it, ok := m.teamsList.SelectedItem().(teamItem); ok {
			m.openTeamForm(&it.team)
			return m, textinput.Blink
		}
		return m, nil
	case "d":
		if it, ok := m.teamsList.SelectedItem().(teamItem); ok {
			m.confirmWhat = confirmDeleteTeam
			m.confirmID = it.team.TeamID
			m.confirmPrompt = "Delete team " + it.team.TeamName + "?"
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.teamsList, cmd = m.teamsList.Update(msg)
	return m, cmd
}

func (m consoleModel) updateTeamDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.goTeams()
	case "e":
		team := m.teamDetail
		m.openTeamForm(&team)
		return m, textinput.Blink
	case "d":
		m.confirmWhat = confirmDeleteTeam
		m.confirmID = m.teamDetail.TeamID
		m.confirmPrompt = "Delete team " + m.teamDetail.TeamName + "?"
		return m, nil
	case "enter":
		if len(m.teamProjects) > 0 {
			return m, m.goProjectDetail(m.teamProjects[0].ProjectID, true)
		}
		return m, nil
	}
	return m, nil
}

func (m *consoleModel) openTeamForm(team *model.Team) {
	m.teamForm = newTeamForm()
	m.editingTeamID = ""
	if team != nil {
		m.editingTeamID = team.TeamID
		m.teamForm.setValue("team_id", team.TeamID)
		m.teamForm.setValue("team_name", team.TeamName)
		m.teamForm.setValue("description", team.Description)
		m.teamForm.setChecked("private", team.Private)
	}
	m.view = viewTeamForm
}

func (m consoleModel) updateTeamFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		return m, m.goTeams()
	}
	submit, cmd := m.teamForm.handleKey(msg)
	if !submit {
		return m, cmd
	}
	f := forms.Team{
		TeamID:      m.teamForm.value("team_id"),
		TeamName:    m.teamForm.value("team_name"),
		Description: m.teamForm.value("description"),
		Private:     m.teamForm.checked("private"),
	}
	m.teamForm.errs = f.Validate()
	if !m.teamForm.errs.Ok() {
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(m.spin.Tick, m.saveTeam(m.navCtx, f.Model(), m.editingTeamID))
}

// Projects.

func (m consoleModel) updateProjectsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.projectsList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.projectsList, cmd = m.projectsList.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "esc":
		return m, m.goDashboard()
	case "r":
		return m, m.goProjects()
	case "enter":
		if it, ok := m.projectsList.SelectedItem().(projectItem); ok {
			return m, m.goProjectDetail(it.project.ProjectID, true)
		}
		return m, nil
	case "n":
		m.openProjectForm(nil)
		return m, textinput.Blink
	case "e":
		if it, ok := m.projectsList.SelectedItem().(projectItem); ok {
			m.openProjectForm(&it.project)
			return m, textinput.Blink
		}
		return m, nil
	case "d":
		if it, ok := m.projectsList.SelectedItem().(projectItem); ok {
			m.confirmWhat = confirmDeleteProject
			m.confirmID = it.project.ProjectID
			m.confirmPrompt = "Delete project " + it.project.ProjectName + "?"
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.projectsList, cmd = m.projectsList.Update(msg)
	return m, cmd
}

func (m *consoleModel) openProjectForm(project *model.Project) {
	m.projectForm = newProjectForm()
	m.editingProjectID = ""
	if project != nil {
		m.editingProjectID = project.ProjectID
		m.projectForm.setValue("project_id", project.ProjectID)
		m.projectForm.setValue("project_name", project.ProjectName)
		m.projectForm.setValue("team_id", project.TeamID)
		m.projectForm.setValue("description", project.Description)
		m.projectForm.setValue("url", project.URL)
		m.projectForm.setChecked("private", project.Private)
	}
	m.view = viewProjectForm
}

func (m consoleModel) updateProjectFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		return m, m.goProjects()
	}
	submit, cmd := m.projectForm.handleKey(msg)
	if !submit {
		return m, cmd
	}
	f := forms.Project{
		ProjectID:   m.projectForm.value("project_id"),
		ProjectName: m.projectForm.value("project_name"),
		TeamID:      m.projectForm.value("team_id"),
		Description: m.projectForm.value("description"),
		URL:         m.projectForm.value("url"),
		Private:     m.projectForm.checked("private"),
	}
	m.projectForm.errs = f.Validate()
	if !m.projectForm.errs.Ok() {
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(m.spin.Tick, m.saveProject(m.navCtx, f.Model(), m.editingProjectID))
}

// Project detail: filters cycle in place over the authoritative snapshot,
// status toggles send the full record and reconcile locally on success.

func (m consoleModel) updateProjectDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.taskList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "esc":
		return m, m.goProjects()
	case "R":
		return m, m.goProjectDetail(m.project.ProjectID, false)
	case "t":
		m.cycleTechnologyFilter()
		return m, nil
	case "s":
		m.cycleStatusFilter()
		return m, nil
	case "r":
		m.cycleRiskFilter()
		return m, nil
	case "0":
		m.taskFilter = taskset.Filter{
			Technology: taskset.FilterAll,
			Status:     taskset.FilterAll,
			Risk:       taskset.FilterAll,
		}
		m.refreshTaskList()
		return m, nil
	case "c":
		if t, ok := m.selectedTask(); ok {
			m.loading = true
			return m, tea.Batch(m.spin.Tick,
				m.changeTaskStatus(m.navCtx, m.project.ProjectID, t, taskset.FieldCompleted, !t.Completed))
		}
		return m, nil
	case "i":
		if t, ok := m.selectedTask(); ok {
			m.loading = true
			return m, tea.Batch(m.spin.Tick,
				m.changeTaskStatus(m.navCtx, m.project.ProjectID, t, taskset.FieldIgnored, !t.Ignored))
		}
		return m, nil
	case "n":
		m.openTaskForm(nil)
		return m, textinput.Blink
	case "e":
		if t, ok := m.selectedTask(); ok {
			m.openTaskForm(&t)
			return m, textinput.Blink
		}
		return m, nil
	case "x":
		if t, ok := m.selectedTask(); ok {
			m.confirmWhat = confirmDeleteTask
			m.confirmID = t.TaskID
			m.confirmPrompt = "Delete task " + t.Name + "?"
		}
		return m, nil
	case "D":
		m.confirmWhat = confirmDeleteProject
		m.confirmID = m.project.ProjectID
		m.confirmPrompt = "Delete project " + m.project.ProjectName + "?"
		return m, nil
	}
	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m consoleModel) selectedTask() (model.Task, bool) {
	it, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}
	return it.task, true
}

func (m *consoleModel) openTaskForm(task *model.Task) {
	m.taskForm = newTaskForm()
	m.editingTaskID = ""
	if task != nil {
		m.editingTaskID = task.TaskID
		m.taskForm.setValue("task_id", task.TaskID)
		m.taskForm.setValue("name", task.Name)
		m.taskForm.setValue("technology", string(task.Technology))
		m.taskForm.setValue("risk_level", riskFilterValue(task.RiskLevel))
		m.taskForm.setValue("description", task.Description)
	}
	m.view = viewTaskForm
}

func (m consoleModel) updateTaskFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		return m, m.goProjectDetail(m.project.ProjectID, false)
	}
	submit, cmd := m.taskForm.handleKey(msg)
	if !submit {
		return m, cmd
	}
	id := m.taskForm.value("task_id")
	if id == "" && m.editingTaskID == "" {
		id = uuid.NewString()
	}
	f := forms.Task{
		TaskID:      id,
		Name:        m.taskForm.value("name"),
		Description: m.taskForm.value("description"),
		Technology:  m.taskForm.value("technology"),
		RiskLevel:   m.taskForm.value("risk_level"),
	}
	m.taskForm.errs = f.Validate()
	if !m.taskForm.errs.Ok() {
		return m, nil
	}
	t := f.Model()
	if m.editingTaskID != "" {
		// Full-record update: carry the current status flags along.
		for _, old := range m.tasks {
			if old.TaskID == m.editingTaskID {
				t.Completed = old.Completed
				t.Ignored = old.Ignored
			}
		}
	}
	m.loading = true
	return m, tea.Batch(m.spin.Tick,
		m.saveTask(m.navCtx, m.project.ProjectID, t, m.editingTaskID != ""))
}

// Users.

func (m consoleModel) updateUsersKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.usersList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.usersList, cmd = m.usersList.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "esc":
		return m, m.goDashboard()
	case "r":
		return m, m.goUsers()
	}
	var cmd tea.Cmd
	m.usersList, cmd = m.usersList.Update(msg)
	return m, cmd
}

// Confirm modal.

func (m consoleModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		what, id := m.confirmWhat, m.confirmID
		m.confirmWhat = confirmNone
		m.confirmPrompt = ""
		m.confirmID = ""
		m.loading = true
		switch what {
		case confirmDeleteTeam:
			return m, tea.Batch(m.spin.Tick, m.deleteTeam(m.navCtx, id))
		case confirmDeleteProject:
			return m, tea.Batch(m.spin.Tick, m.deleteProject(m.navCtx, id))
		case confirmDeleteTask:
			return m, tea.Batch(m.spin.Tick, m.deleteTask(m.navCtx, m.project.ProjectID, id))
		}
		m.loading = false
		return m, nil
	case "n", "esc":
		m.confirmWhat = confirmNone
		m.confirmPrompt = ""
		m.confirmID = ""
		return m, nil
	}
	return m, nil
}

// Non-key messages.

func (m consoleModel) handleMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionCheckedMsg:
		m.loading = false
		if msg.err != nil {
			m.view = viewLogin
			m.loginForm = newLoginForm()
			return m, tea.Batch(textinput.Blink,
				m.announce("Session expired, sign in again", notify.Warning))
		}
		m.user = msg.user
		return m, m.goDashboard()

	case loginDoneMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.announce("Login failed. Please check your credentials.", notify.Error)
		}
		m.user = msg.user
		return m, tea.Batch(m.goDashboard(),
			m.announce("Signed in as "+msg.user.Email, notify.Success))

	case registerDoneMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.announce("Registration failed: "+msg.err.Error(), notify.Error)
		}
		m.view = viewLogin
		m.loginForm = newLoginForm()
		return m, tea.Batch(textinput.Blink,
			m.announce("Account created, sign in to continue", notify.Success))

	case loggedOutMsg:
		m.user = model.User{}
		m.view = viewLogin
		m.loginForm = newLoginForm()
		return m, tea.Batch(textinput.Blink, m.announce("Signed out", notify.Info))

	case loadFailedMsg:
		if m.stale(msg.seq) || errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		m.loading = false
		var authErr *session.AuthError
		if errors.As(msg.err, &authErr) {
			m.view = viewLogin
			m.loginForm = newLoginForm()
			return m, tea.Batch(textinput.Blink,
				m.announce("Session expired, sign in again", notify.Warning))
		}
		return m, m.announce(msg.err.Error(), notify.Error)

	case dashboardLoadedMsg:
		if m.stale(msg.seq) {
			return m, nil
		}
		m.loading = false
		m.dashTeams = msg.teams
		m.dashProjects = msg.projects
		return m, nil

	case teamsLoadedMsg:
		if m.stale(msg.seq) {
			return m, nil
		}
		m.loading = false
		items := make([]list.Item, len(msg.teams))
		for i, t := range msg.teams {
			items[i] = teamItem{team: t}
		}
		return m, m.teamsList.SetItems(items)

	case teamDetailLoadedMsg:
		if m.stale(msg.seq) {
			return m, nil
		}
		m.loading = false
		m.teamDetail = msg.team
		m.teamProjects = msg.projects
		return m, nil

	case projectsLoadedMsg:
		if m.stale(msg.seq) {
			return m, nil
		}
		m.loading = false
		items := make([]list.Item, len(msg.projects))
		for i, p := range msg.projects {
			items[i] = projectItem{project: p}
		}
		return m, m.projectsList.SetItems(items)

	case projectDetailLoadedMsg:
		if m.stale(msg.seq) {
			return m, nil
		}
		m.loading = false
		m.project = msg.project
		m.tasks = msg.tasks
		m.refreshTaskList()
		return m, nil

	case usersLoadedMsg:
		if m.stale(msg.seq) {
			return m, nil
		}
		m.loading = false
		items := make([]list.Item, len(msg.users))
		for i, u := range msg.users {
			items[i] = userItem{user: u}
		}
		return m, m.usersList.SetItems(items)

	case teamSavedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.announce(msg.err.Error(), notify.Error)
		}
		text := "Team updated"
		if msg.created {
			text = "Team created"
		}
		return m, tea.Batch(m.goTeams(), m.announce(text, notify.Success))

	case teamDeletedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.announce(msg.err.Error(), notify.Error)
		}
		return m, tea.Batch(m.goTeams(), m.announce("Team deleted", notify.Success))

	case projectSavedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.announce(msg.err.Error(), notify.Error)
		}
		text := "Project updated"
		if msg.created {
			text = "Project created"
		}
		return m, tea.Batch(m.goProjects(), m.announce(text, notify.Success))

	case projectDeletedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.announce(msg.err.Error(), notify.Error)
		}
		return m, tea.Batch(m.goProjects(), m.announce("Project deleted", notify.Success))

	case taskSavedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.announce(msg.err.Error(), notify.Error)
		}
		text := "Task updated"
		if msg.created {
			text = "Task created"
		}
		m.view = viewProjectDetail
		if msg.task.TaskID == "" {
			// Backend echoed nothing useful; refetch instead of merging.
			return m, tea.Batch(m.goProjectDetail(m.project.ProjectID, false),
				m.announce(text, notify.Success))
		}
		if msg.created {
			m.tasks = append(m.tasks, msg.task)
		} else {
			m.tasks = taskset.Replace(m.tasks, msg.task)
		}
		m.refreshTaskList()
		return m, m.announce(text, notify.Success)

	case taskStatusChangedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.announce("Failed to update task", notify.Error)
		}
		m.tasks = taskset.Replace(m.tasks, msg.task)
		m.refreshTaskList()
		text := "Task updated"
		if msg.value {
			text = "Task " + string(msg.field)
		}
		return m, m.announce(text, notify.Success)

	case taskDeletedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.announce(msg.err.Error(), notify.Error)
		}
		kept := make([]model.Task, 0, len(m.tasks))
		for _, t := range m.tasks {
			if t.TaskID != msg.taskID {
				kept = append(kept, t)
			}
		}
		m.tasks = kept
		m.refreshTaskList()
		return m, m.announce("Task deleted", notify.Success)
	}

	return m, nil
}

// Filter cycling over the current snapshot.

func cycleValue(cur string, options []string) string {
	for i, o := range options {
		if o == cur {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func (m *consoleModel) cycleTechnologyFilter() {
	options := []string{taskset.FilterAll}
	for _, t := range taskset.TechnologiesOf(m.tasks) {
		options = append(options, string(t))
	}
	m.taskFilter.Technology = cycleValue(m.taskFilter.Technology, options)
	m.refreshTaskList()
}

func (m *consoleModel) cycleStatusFilter() {
	options := []string{taskset.FilterAll, taskset.StatusPending, taskset.StatusCompleted, taskset.StatusIgnored}
	m.taskFilter.Status = cycleValue(m.taskFilter.Status, options)
	m.refreshTaskList()
}

func (m *consoleModel) cycleRiskFilter() {
	options := []string{taskset.FilterAll, "1", "2", "3"}
	m.taskFilter.Risk = cycleValue(m.taskFilter.Risk, options)
	m.refreshTaskList()
}

func (m *consoleModel) refreshTaskList() {
	filtered := taskset.Apply(m.tasks, m.taskFilter)
	items := make([]list.Item, len(filtered))
	for i, t := range filtered {
		items[i] = taskItem{task: t}
	}
	m.taskList.SetItems(items)
}

func riskFilterValue(r model.RiskLevel) string {
	switch r {
	case model.RiskLow:
		return "1"
	case model.RiskMedium:
		return "2"
	case model.RiskHigh:
		return "3"
	}
	return ""
}
