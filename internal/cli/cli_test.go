package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HardenedIot/console/internal/model"
)

// testBackend is a minimal in-memory stand-in for the REST backend.
type testBackend struct {
	tasks      map[string][]model.Task
	lastUpdate *model.Task
}

func (b *testBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret" {
			http.Error(w, "bad credentials", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "T1",
			"user":  model.User{ID: 1, Username: "ada", Email: req.Email},
		})
	})
	mux.HandleFunc("/project/", func(w http.ResponseWriter, r *http.Request) {
		project := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/project/"), "/tasks")
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(b.tasks[project])
		case http.MethodPatch:
			var task model.Task
			_ = json.NewDecoder(r.Body).Decode(&task)
			b.lastUpdate = &task
			_ = json.NewEncoder(w).Encode(task)
		default:
			http.Error(w, "unexpected", http.StatusMethodNotAllowed)
		}
	})
	return mux
}

func runCommand(t *testing.T, backendURL, dataDir string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--backend", backendURL, "--data-dir", dataDir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestLoginThenFilteredTaskList(t *testing.T) {
	backend := &testBackend{tasks: map[string][]model.Task{
		"smart-lock": {
			{TaskID: "1", Name: "Scan ports", Technology: model.TechWiFi, RiskLevel: model.RiskMedium},
			{TaskID: "2", Name: "Dump firmware", Technology: model.TechJTAG, RiskLevel: model.RiskHigh, Completed: true},
			{TaskID: "3", Name: "Probe broker", Technology: model.TechMQTT, RiskLevel: model.RiskHigh},
		},
	}}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()
	dataDir := t.TempDir()

	out, err := runCommand(t, srv.URL, dataDir, "login", "--email", "a@b.com", "--password", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, `"ada"`) {
		t.Fatalf("login output missing user: %s", out)
	}

	out, err = runCommand(t, srv.URL, dataDir, "tasks", "list", "--project", "smart-lock", "--status", "pending", "--risk", "3")
	if err != nil {
		t.Fatalf("tasks list: %v", err)
	}
	if !strings.Contains(out, "Probe broker") {
		t.Fatalf("expected pending high-risk task in output: %s", out)
	}
	if strings.Contains(out, "Dump firmware") || strings.Contains(out, "Scan ports") {
		t.Fatalf("filter leaked excluded tasks: %s", out)
	}
}

func TestCompleteSendsMergedRecordAndClearsIgnored(t *testing.T) {
	backend := &testBackend{tasks: map[string][]model.Task{
		"smart-lock": {
			{TaskID: "3", Name: "Sniff pairing", Technology: model.TechBluetooth, RiskLevel: model.RiskLow, Ignored: true},
		},
	}}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	_, err := runCommand(t, srv.URL, t.TempDir(), "tasks", "complete", "3", "--project", "smart-lock")
	if err != nil {
		t.Fatalf("tasks complete: %v", err)
	}

	if backend.lastUpdate == nil {
		t.Fatalf("no update reached the backend")
	}
	got := *backend.lastUpdate
	if !got.Completed || got.Ignored {
		t.Fatalf("merged record = completed=%v ignored=%v, want completed=true ignored=false", got.Completed, got.Ignored)
	}
	// The full record travels, not a partial patch.
	if got.Name != "Sniff pairing" || got.Technology != model.TechBluetooth || got.RiskLevel != model.RiskLow {
		t.Fatalf("update dropped non-status fields: %+v", got)
	}
}

func TestValidationBlocksNetworkCall(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	_, err := runCommand(t, srv.URL, t.TempDir(),
		"tasks", "create", "--project", "smart-lock",
		"--name", "ab", "--technology", "telepathy", "--risk", "7")
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "invalid input") {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits != 0 {
		t.Fatalf("validation failure must not reach the network, saw %d requests", hits)
	}
}
