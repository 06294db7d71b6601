package tui

import (
	"fmt"
	"strings"

	"github.com/HardenedIot/console/internal/taskset"

	"github.com/charmbracelet/lipgloss"
)

func (m consoleModel) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.bodyView())

	if m.confirmWhat != confirmNone {
		b.WriteString("\n\n")
		b.WriteString(m.confirmView())
	}

	if m.flash != nil {
		b.WriteString("\n\n")
		b.WriteString(severityStyle(m.flash.Severity).Render(m.flash.Text))
	}

	b.WriteString("\n\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m consoleModel) headerView() string {
	title := styleHeader().Render("HardenedIoT")
	crumb := styleMuted().Render(m.breadcrumb())
	line := title + "  " + crumb
	if m.user.Email != "" {
		line += "  " + styleMuted().Render(m.user.Email)
	}
	if m.loading {
		line += "  " + m.spin.View()
	}
	return line
}

func (m consoleModel) breadcrumb() string {
	switch m.view {
	case viewLogin:
		return "sign in"
	case viewRegister:
		return "register"
	case viewDashboard:
		return "dashboard"
	case viewTeams:
		return "teams"
	case viewTeamDetail:
		return "teams > " + m.teamDetail.TeamName
	case viewTeamForm:
		if m.editingTeamID != "" {
			return "teams > edit"
		}
		return "teams > new"
	case viewProjects:
		return "projects"
	case viewProjectDetail:
		return "projects > " + m.project.ProjectName
	case viewProjectForm:
		if m.editingProjectID != "" {
			return "projects > edit"
		}
		return "projects > new"
	case viewTaskForm:
		if m.editingTaskID != "" {
			return "projects > " + m.project.ProjectName + " > edit task"
		}
		return "projects > " + m.project.ProjectName + " > new task"
	case viewUsers:
		return "users"
	}
	return ""
}

func (m consoleModel) bodyView() string {
	switch m.view {
	case viewLogin:
		hint := styleMuted().Render("ctrl+r: create an account")
		return m.loginForm.view() + "\n" + hint
	case viewRegister:
		return m.registerForm.view()
	case viewDashboard:
		return m.dashboardView()
	case viewTeams:
		return m.teamsList.View()
	case viewTeamDetail:
		return m.teamDetailView()
	case viewTeamForm:
		return m.teamForm.view()
	case viewProjects:
		return m.projectsList.View()
	case viewProjectDetail:
		return m.projectDetailView()
	case viewProjectForm:
		return m.projectForm.view()
	case viewTaskForm:
		return m.taskForm.view()
	case viewUsers:
		return m.usersList.View()
	}
	return ""
}

func (m consoleModel) dashboardView() string {
	var b strings.Builder

	b.WriteString(styleHeader().Render(fmt.Sprintf("Teams (%d)", len(m.dashTeams))))
	b.WriteString("\n")
	if len(m.dashTeams) == 0 {
		b.WriteString(styleMuted().Render("  no teams yet"))
		b.WriteString("\n")
	}
	for _, t := range m.dashTeams {
		b.WriteString("  " + t.TeamName + " " + styleMuted().Render(t.TeamID) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styleHeader().Render(fmt.Sprintf("Projects (%d)", len(m.dashProjects))))
	b.WriteString("\n")
	if len(m.dashProjects) == 0 {
		b.WriteString(styleMuted().Render("  no projects yet"))
		b.WriteString("\n")
	}
	for _, p := range m.dashProjects {
		line := "  " + p.ProjectName + " " + styleMuted().Render(p.ProjectID)
		if name := p.TeamName(); name != "" {
			line += " " + styleMuted().Render("("+name+")")
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

func (m consoleModel) teamDetailView() string {
	var b strings.Builder
	b.WriteString(styleHeader().Render(m.teamDetail.TeamName))
	b.WriteString("\n")
	b.WriteString(styleMuted().Render(m.teamDetail.TeamID))
	if m.teamDetail.Private {
		b.WriteString("  " + styleMuted().Render("private"))
	}
	b.WriteString("\n")
	if m.teamDetail.Description != "" {
		b.WriteString("\n" + m.teamDetail.Description + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styleHeader().Render(fmt.Sprintf("Projects (%d)", len(m.teamProjects))))
	b.WriteString("\n")
	if len(m.teamProjects) == 0 {
		b.WriteString(styleMuted().Render("  none"))
		b.WriteString("\n")
	}
	for _, p := range m.teamProjects {
		b.WriteString("  " + p.ProjectName + " " + styleMuted().Render(p.ProjectID) + "\n")
	}

	if len(m.teamDetail.Users) > 0 {
		b.WriteString("\n")
		b.WriteString(styleHeader().Render(fmt.Sprintf("Members (%d)", len(m.teamDetail.Users))))
		b.WriteString("\n")
		for _, u := range m.teamDetail.Users {
			b.WriteString("  " + u.FullName() + " " + styleMuted().Render(u.Email) + "\n")
		}
	}

	return b.String()
}

func (m consoleModel) projectDetailView() string {
	var b strings.Builder

	b.WriteString(styleHeader().Render(m.project.ProjectName))
	meta := m.project.ProjectID
	if name := m.project.TeamName(); name != "" {
		meta += "  " + name
	} else if m.project.TeamID != "" {
		meta += "  " + m.project.TeamID
	}
	if m.project.URL != "" {
		meta += "  " + m.project.URL
	}
	b.WriteString("\n" + styleMuted().Render(meta) + "\n")

	if m.project.Description != "" {
		width := m.width
		if width <= 0 || width > 100 {
			width = 100
		}
		b.WriteString(renderMarkdown(m.project.Description, width))
		b.WriteString("\n")
	}

	b.WriteString(m.filterLine())
	b.WriteString("\n")
	b.WriteString(m.taskList.View())
	return b.String()
}

func (m consoleModel) filterLine() string {
	axis := func(label, v string) string {
		if v == "" || v == taskset.FilterAll {
			return styleMuted().Render(label + ":all")
		}
		return lipgloss.NewStyle().Foreground(colorAccent).Render(label + ":" + v)
	}
	shown := len(m.taskList.Items())
	return fmt.Sprintf("%s  %s  %s  %s",
		axis("tech", m.taskFilter.Technology),
		axis("status", m.taskFilter.Status),
		axis("risk", m.taskFilter.Risk),
		styleMuted().Render(fmt.Sprintf("%d/%d tasks", shown, len(m.tasks))))
}

func (m consoleModel) confirmView() string {
	prompt := lipgloss.NewStyle().Foreground(colorWarning).Render(m.confirmPrompt)
	return prompt + " " + styleMuted().Render("y/n")
}

func (m consoleModel) footerView() string {
	var keys string
	switch m.view {
	case viewLogin:
		keys = "enter: sign in  ctrl+r: register  ctrl+c: quit"
	case viewRegister:
		keys = "enter: submit  esc: back  ctrl+c: quit"
	case viewDashboard:
		keys = "t: teams  p: projects  u: users  r: reload  o: sign out  q: quit"
	case viewTeams:
		keys = "enter: open  n: new  e: edit  d: delete  /: filter  esc: back"
	case viewTeamDetail:
		keys = "e: edit  d: delete  esc: back"
	case viewTeamForm, viewProjectForm, viewTaskForm:
		keys = "enter: submit  tab: next field  esc: cancel"
	case viewProjects:
		keys = "enter: open  n: new  e: edit  d: delete  /: filter  esc: back"
	case viewProjectDetail:
		keys = "t/s/r: cycle filters  0: clear  c: complete  i: ignore  n: new  e: edit  x: delete  esc: back"
	case viewUsers:
		keys = "r: reload  esc: back"
	}
	return styleMuted().Render(keys)
}
