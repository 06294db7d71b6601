package forms

import (
	"strings"
	"testing"

	"github.com/HardenedIot/console/internal/model"
)

func TestLoginValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		form       Login
		wantFields []string
	}{
		{name: "valid", form: Login{Email: "a@b.com", Password: "secret"}},
		{name: "empty", form: Login{}, wantFields: []string{"email", "password"}},
		{name: "bad email shape", form: Login{Email: "not-an-email", Password: "secret"}, wantFields: []string{"email"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertFieldErrors(t, tt.form.Validate(), tt.wantFields)
		})
	}
}

func TestRegisterValidate(t *testing.T) {
	t.Parallel()

	valid := Register{
		Username:        "ada",
		Name:            "Ada",
		Surname:         "Lovelace",
		Email:           "a@b.com",
		Password:        "secret",
		ConfirmPassword: "secret",
	}

	tests := []struct {
		name       string
		mutate     func(*Register)
		wantFields []string
	}{
		{name: "valid", mutate: func(*Register) {}},
		{
			name:       "short username",
			mutate:     func(f *Register) { f.Username = "ab" },
			wantFields: []string{"username"},
		},
		{
			name:       "long name",
			mutate:     func(f *Register) { f.Name = strings.Repeat("x", 51) },
			wantFields: []string{"name"},
		},
		{
			name:       "short password",
			mutate:     func(f *Register) { f.Password = "abc"; f.ConfirmPassword = "abc" },
			wantFields: []string{"password"},
		},
		{
			name:       "password mismatch",
			mutate:     func(f *Register) { f.ConfirmPassword = "other" },
			wantFields: []string{"confirm_password"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := valid
			tt.mutate(&f)
			assertFieldErrors(t, f.Validate(), tt.wantFields)
		})
	}
}

func TestTeamValidate(t *testing.T) {
	t.Parallel()

	valid := Team{TeamID: "red-team", TeamName: "Red Team"}
	if errs := valid.Validate(); !errs.Ok() {
		t.Fatalf("valid team rejected: %v", errs)
	}

	f := Team{TeamName: "ab", Description: strings.Repeat("x", 201)}
	assertFieldErrors(t, f.Validate(), []string{"team_id", "team_name", "description"})
}

func TestProjectValidate(t *testing.T) {
	t.Parallel()

	valid := Project{ProjectID: "smart-lock", ProjectName: "Smart Lock", TeamID: "red-team"}
	if errs := valid.Validate(); !errs.Ok() {
		t.Fatalf("valid project rejected: %v", errs)
	}

	f := Project{ProjectName: "Smart Lock"}
	assertFieldErrors(t, f.Validate(), []string{"project_id", "team_id"})
}

func TestTaskValidateAndModel(t *testing.T) {
	t.Parallel()

	f := Task{TaskID: "5", Name: "Scan ports", Technology: "wifi", RiskLevel: "2"}
	if errs := f.Validate(); !errs.Ok() {
		t.Fatalf("valid task rejected: %v", errs)
	}

	task := f.Model()
	if task.Technology != model.TechWiFi || task.RiskLevel != model.RiskMedium {
		t.Fatalf("unexpected model: %+v", task)
	}
	if task.Completed || task.Ignored {
		t.Fatalf("form-built task must start pending")
	}

	bad := Task{TaskID: "5", Name: "ok", Technology: "carrier-pigeon", RiskLevel: "9"}
	assertFieldErrors(t, bad.Validate(), []string{"name", "technology", "risk_level"})
}

func assertFieldErrors(t *testing.T, errs Errors, fields []string) {
	t.Helper()

	if len(fields) == 0 {
		if !errs.Ok() {
			t.Fatalf("expected no errors, got %v", errs)
		}
		return
	}
	if len(errs) != len(fields) {
		t.Fatalf("got errors %v, want fields %v", errs, fields)
	}
	for _, field := range fields {
		if errs[field] == "" {
			t.Fatalf("missing error for field %q in %v", field, errs)
		}
	}
}
