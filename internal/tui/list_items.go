package tui

import (
	"fmt"
	"strings"

	"github.com/HardenedIot/console/internal/model"
	"github.com/HardenedIot/console/internal/taskset"

	"github.com/charmbracelet/bubbles/list"
)

type teamItem struct {
	team model.Team
}

func (i teamItem) FilterValue() string { return i.team.TeamName + " " + i.team.TeamID }
func (i teamItem) Title() string {
	t := i.team.TeamName
	if i.team.Private {
		t += " " + styleMuted().Render("(private)")
	}
	return t
}
func (i teamItem) Description() string { return i.team.TeamID }

type projectItem struct {
	project model.Project
}

func (i projectItem) FilterValue() string {
	return i.project.ProjectName + " " + i.project.ProjectID
}
func (i projectItem) Title() string {
	t := i.project.ProjectName
	if name := i.project.TeamName(); name != "" {
		t += "  " + styleMuted().Render(name)
	}
	if i.project.Private {
		t += " " + styleMuted().Render("(private)")
	}
	return t
}
func (i projectItem) Description() string { return i.project.ProjectID }

type userItem struct {
	user model.User
}

func (i userItem) FilterValue() string {
	return i.user.Username + " " + i.user.FullName()
}
func (i userItem) Title() string {
	t := i.user.Username
	if full := strings.TrimSpace(i.user.FullName()); full != "" {
		t += "  " + styleMuted().Render(full)
	}
	return t
}
func (i userItem) Description() string { return i.user.Email }

type taskItem struct {
	task model.Task
}

func (i taskItem) FilterValue() string {
	return i.task.Name + " " + string(i.task.Technology)
}

func taskStatusGlyph(t model.Task) string {
	switch taskset.StatusOf(t) {
	case taskset.StatusCompleted:
		return lipglossRender(colorSuccess, "✓")
	case taskset.StatusIgnored:
		return styleMuted().Render("∅")
	default:
		return lipglossRender(colorWarning, "·")
	}
}

func (i taskItem) Title() string {
	risk := riskStyle(i.task.RiskLevel).Render(i.task.RiskLevel.Label())
	tech := styleMuted().Render(string(i.task.Technology))
	return fmt.Sprintf("%s %s  %s %s", taskStatusGlyph(i.task), i.task.Name, tech, risk)
}
func (i taskItem) Description() string { return i.task.TaskID }

func newList(title, statusName string, items []list.Item) list.Model {
	l := list.New(items, newCompactItemDelegate(), 0, 0)
	l.Title = title
	// The app renders its own header + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName(statusName, statusName+"s")
	// Bubble list defaults to quitting on ESC; here ESC is "back".
	l.KeyMap.Quit.SetKeys("ctrl+c")
	return l
}
