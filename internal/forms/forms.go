// Package forms holds one fixed-shape record per form screen, each with an
// explicit Validate returning field-name → error-message. Validation runs
// synchronously before submission and a non-empty result blocks the network
// call entirely, so these errors never mix with server failures.
package forms

import (
	"regexp"
	"strings"

	"github.com/HardenedIot/console/internal/model"
)

var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Errors maps a field name to its validation message.
type Errors map[string]string

func (e Errors) Ok() bool { return len(e) == 0 }

type Login struct {
	Email    string
	Password string
}

func (f Login) Validate() Errors {
	errs := Errors{}
	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailShape.MatchString(email):
		errs["email"] = "Email is invalid"
	}
	if f.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

type Register struct {
	Username        string
	Name            string
	Surname         string
	Email           string
	Password        string
	ConfirmPassword string
	Private         bool
}

func (f Register) Validate() Errors {
	errs := Errors{}

	username := strings.TrimSpace(f.Username)
	switch {
	case username == "":
		errs["username"] = "Username is required"
	case len(username) < 3 || len(username) > 20:
		errs["username"] = "Username must be between 3 and 20 characters"
	}

	name := strings.TrimSpace(f.Name)
	switch {
	case name == "":
		errs["name"] = "Name is required"
	case len(name) > 50:
		errs["name"] = "Name must be between 1 and 50 characters"
	}

	surname := strings.TrimSpace(f.Surname)
	switch {
	case surname == "":
		errs["surname"] = "Surname is required"
	case len(surname) > 50:
		errs["surname"] = "Surname must be between 1 and 50 characters"
	}

	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailShape.MatchString(email):
		errs["email"] = "Email is invalid"
	}

	switch {
	case f.Password == "":
		errs["password"] = "Password is required"
	case len(f.Password) < 6:
		errs["password"] = "Password must be at least 6 characters"
	}
	if f.Password != f.ConfirmPassword {
		errs["confirm_password"] = "Passwords do not match"
	}

	return errs
}

type Team struct {
	TeamID      string
	TeamName    string
	Description string
	Private     bool
}

func (f Team) Validate() Errors {
	errs := Errors{}

	name := strings.TrimSpace(f.TeamName)
	switch {
	case name == "":
		errs["team_name"] = "Team name is required"
	case len(name) < 3 || len(name) > 50:
		errs["team_name"] = "Team name must be between 3 and 50 characters"
	}

	id := strings.TrimSpace(f.TeamID)
	switch {
	case id == "":
		errs["team_id"] = "Team ID is required"
	case len(id) > 50:
		errs["team_id"] = "Team ID must be between 1 and 50 characters"
	}

	if len(f.Description) > 200 {
		errs["description"] = "Description must be less than 200 characters"
	}

	return errs
}

func (f Team) Model() model.Team {
	return model.Team{
		TeamID:      strings.TrimSpace(f.TeamID),
		TeamName:    strings.TrimSpace(f.TeamName),
		Description: f.Description,
		Private:     f.Private,
	}
}

type Project struct {
	ProjectID   string
	ProjectName string
	TeamID      string
	Description string
	URL         string
	Private     bool
}

func (f Project) Validate() Errors {
	errs := Errors{}

	name := strings.TrimSpace(f.ProjectName)
	switch {
	case name == "":
		errs["project_name"] = "Project name is required"
	case len(name) < 3 || len(name) > 50:
		errs["project_name"] = "Project name must be between 3 and 50 characters"
	}

	if strings.TrimSpace(f.ProjectID) == "" {
		errs["project_id"] = "Project ID is required"
	}
	if strings.TrimSpace(f.TeamID) == "" {
		errs["team_id"] = "Team is required"
	}
	if len(f.Description) > 500 {
		errs["description"] = "Description must be less than 500 characters"
	}

	return errs
}

func (f Project) Model() model.Project {
	return model.Project{
		ProjectID:   strings.TrimSpace(f.ProjectID),
		ProjectName: strings.TrimSpace(f.ProjectName),
		TeamID:      strings.TrimSpace(f.TeamID),
		Description: f.Description,
		URL:         strings.TrimSpace(f.URL),
		Private:     f.Private,
	}
}

type Task struct {
	TaskID      string
	Name        string
	Description string
	Technology  string
	RiskLevel   string
}

func (f Task) Validate() Errors {
	errs := Errors{}

	if strings.TrimSpace(f.TaskID) == "" {
		errs["task_id"] = "Task ID is required"
	}

	name := strings.TrimSpace(f.Name)
	switch {
	case name == "":
		errs["name"] = "Task name is required"
	case len(name) < 3 || len(name) > 100:
		errs["name"] = "Task name must be between 3 and 100 characters"
	}

	tech := model.Technology(strings.TrimSpace(f.Technology))
	switch {
	case tech == "":
		errs["technology"] = "Technology is required"
	case !tech.Valid():
		errs["technology"] = "Unknown technology"
	}

	switch f.RiskLevel {
	case "":
		errs["risk_level"] = "Risk level is required"
	case "1", "2", "3":
	default:
		errs["risk_level"] = "Risk level must be 1, 2 or 3"
	}

	if len(f.Description) > 500 {
		errs["description"] = "Description must be less than 500 characters"
	}

	return errs
}

func (f Task) Model() model.Task {
	risk := model.RiskLevel(0)
	switch f.RiskLevel {
	case "1":
		risk = model.RiskLow
	case "2":
		risk = model.RiskMedium
	case "3":
		risk = model.RiskHigh
	}
	return model.Task{
		TaskID:      strings.TrimSpace(f.TaskID),
		Name:        strings.TrimSpace(f.Name),
		Description: f.Description,
		Technology:  model.Technology(strings.TrimSpace(f.Technology)),
		RiskLevel:   risk,
	}
}
