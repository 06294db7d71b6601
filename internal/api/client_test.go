package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HardenedIot/console/internal/model"
)

type staticHeaders map[string]string

func (h staticHeaders) AuthHeaders() map[string]string { return h }

func TestClientAttachesHeaders(t *testing.T) {
	t.Parallel()

	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewEncoder(w).Encode([]model.User{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticHeaders{
		"Content-Type":  "application/json",
		"Authorization": "Bearer T1",
	})
	if _, err := c.Users(context.Background()); err != nil {
		t.Fatalf("Users: %v", err)
	}
	if gotAuth != "Bearer T1" {
		t.Fatalf("Authorization = %q, want Bearer T1", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q", gotContentType)
	}
}

func TestClientNilHeaderSourceSendsNoAuthorization(t *testing.T) {
	t.Parallel()

	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode([]model.Team{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	if _, err := c.Teams(context.Background()); err != nil {
		t.Fatalf("Teams: %v", err)
	}
	if sawAuth {
		t.Fatalf("unauthenticated request must not carry an Authorization header")
	}
}

func TestClientFetchError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	err := c.DeleteProject(context.Background(), "smart-lock")
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("want *FetchError, got %T %v", err, err)
	}
	if fe.Resource != "project" || fe.Op != "delete" || fe.Status != http.StatusInternalServerError {
		t.Fatalf("unexpected fetch error: %+v", fe)
	}
}

func TestClientTaskEndpoints(t *testing.T) {
	t.Parallel()

	type seen struct {
		method string
		path   string
		body   map[string]any
	}
	var calls []seen

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := seen{method: r.Method, path: r.URL.Path}
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			_ = json.Unmarshal(b, &s.body)
		}
		calls = append(calls, s)

		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode([]model.Task{{TaskID: "5", Name: "Scan ports"}})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			_ = json.NewEncoder(w).Encode(model.Task{TaskID: "5"})
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	c := NewClient(srv.URL, nil)

	task := model.Task{TaskID: "5", Name: "Scan ports", Technology: model.TechWiFi, RiskLevel: model.RiskMedium}
	if _, err := c.CreateTask(ctx, "smart-lock", task); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := c.UpdateTask(ctx, "smart-lock", task); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if _, err := c.Tasks(ctx, "smart-lock"); err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	if err := c.DeleteTask(ctx, "smart-lock", "5"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	wantMethods := []string{http.MethodPut, http.MethodPatch, http.MethodGet, http.MethodDelete}
	if len(calls) != len(wantMethods) {
		t.Fatalf("got %d calls, want %d", len(calls), len(wantMethods))
	}
	for i, m := range wantMethods {
		if calls[i].method != m {
			t.Fatalf("call %d method = %s, want %s", i, calls[i].method, m)
		}
		if calls[i].path != "/project/smart-lock/tasks" {
			t.Fatalf("call %d path = %s", i, calls[i].path)
		}
	}
	// Delete addresses the task in the request body.
	if got := calls[3].body["task_id"]; got != "5" {
		t.Fatalf("delete body task_id = %v, want 5", got)
	}
}

func TestCreateTaskDefaultsToNotCompletedNotIgnored(t *testing.T) {
	t.Parallel()

	var created model.Task
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			_ = json.NewDecoder(r.Body).Decode(&created)
			_ = json.NewEncoder(w).Encode(created)
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode([]model.Task{created})
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	c := NewClient(srv.URL, nil)

	_, err := c.CreateTask(ctx, "smart-lock", model.Task{
		TaskID:     "5",
		Name:       "Scan ports",
		Technology: model.TechWiFi,
		RiskLevel:  model.RiskMedium,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	tasks, err := c.Tasks(ctx, "smart-lock")
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	if tasks[0].Completed || tasks[0].Ignored {
		t.Fatalf("new task must start neither completed nor ignored: %+v", tasks[0])
	}
	if !tasks[0].Pending() {
		t.Fatalf("new task must classify as pending")
	}
}

func TestTeamProjectsFiltersByTeam(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.Project{
			{ProjectID: "a", TeamID: "red"},
			{ProjectID: "b", TeamID: "blue"},
			{ProjectID: "c", TeamID: "red"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	got, err := c.TeamProjects(context.Background(), "red")
	if err != nil {
		t.Fatalf("TeamProjects: %v", err)
	}
	if len(got) != 2 || got[0].ProjectID != "a" || got[1].ProjectID != "c" {
		t.Fatalf("unexpected team projects: %+v", got)
	}
}
