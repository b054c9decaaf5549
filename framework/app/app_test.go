package app_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/km-arc/go-nox/framework/app"
	"github.com/km-arc/go-nox/framework/config"
	"github.com/km-arc/go-nox/framework/nox"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newApp(t *testing.T, cfg config.NoxConfig) *app.Application {
	t.Helper()
	a, err := app.NewWith(&config.Config{
		App: config.AppConfig{Name: "test", Env: "testing", Port: "0"},
		Nox: cfg,
	}, nil)
	if err != nil {
		t.Fatalf("NewWith: %v", err)
	}
	return a
}

func do(t *testing.T, a *app.Application, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	a.Router().ServeHTTP(rr, req)
	return rr
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder) any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return m["data"]
}

// ── Bootstrap ─────────────────────────────────────────────────────────────────

func TestNewWith_RegistersShippedModules(t *testing.T) {
	a := newApp(t, config.NoxConfig{})

	want := []string{"ajax", "dom", "events"}
	if got := a.Modules.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("modules: got %v, want %v", got, want)
	}
	if !a.Modules.Sealed() {
		t.Error("registry should be sealed once the factory exists")
	}
}

func TestRegisterRecord(t *testing.T) {
	a := newApp(t, config.NoxConfig{})

	rec, err := a.RegisterRecord("app.views.Home", []string{"dom", "ajax"})
	if err != nil {
		t.Fatalf("RegisterRecord: %v", err)
	}
	if !reflect.DeepEqual(rec.Modules, []string{"dom", "ajax"}) {
		t.Errorf("Modules: got %v", rec.Modules)
	}
	if !rec.Initialized {
		t.Error("Initialize should have run")
	}
	if got, _ := a.Nox.Get("app.views.Home"); got != rec {
		t.Error("record should be stored at its namespace")
	}
}

func TestRegisterRecord_DefaultModules(t *testing.T) {
	a := newApp(t, config.NoxConfig{Modules: []string{"*"}})

	rec, err := a.RegisterRecord("app.All", nil)
	if err != nil {
		t.Fatalf("RegisterRecord: %v", err)
	}
	if len(rec.Modules) != 3 {
		t.Errorf("Modules: got %v, want every shipped module", rec.Modules)
	}
}

func TestRegisterRecord_Dedupe(t *testing.T) {
	a := newApp(t, config.NoxConfig{DedupeModules: true})

	rec, err := a.RegisterRecord("app.X", []string{"ajax", "ajax"})
	if err != nil {
		t.Fatalf("RegisterRecord: %v", err)
	}
	if !reflect.DeepEqual(rec.Modules, []string{"ajax"}) {
		t.Errorf("Modules: got %v", rec.Modules)
	}
}

func TestRegisterRecord_Errors(t *testing.T) {
	a := newApp(t, config.NoxConfig{})

	if _, err := a.RegisterRecord("1bad", nil); !errors.Is(err, nox.ErrInvalidNamespace) {
		t.Errorf("got %v, want ErrInvalidNamespace", err)
	}
	if _, err := a.RegisterRecord("ok", []string{"nope"}); !errors.Is(err, nox.ErrUnknownModule) {
		t.Errorf("got %v, want ErrUnknownModule", err)
	}
}

// ── HTTP ──────────────────────────────────────────────────────────────────────

func TestHTTP_ListModules(t *testing.T) {
	a := newApp(t, config.NoxConfig{})

	rr := do(t, a, http.MethodGet, "/modules", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}
	got := decodeData(t, rr).([]any)
	if len(got) != 3 || got[0] != "ajax" {
		t.Errorf("data: got %v", got)
	}
}

func TestHTTP_RegisterAndShow(t *testing.T) {
	a := newApp(t, config.NoxConfig{})

	rr := do(t, a, http.MethodPost, "/namespaces/app.views.Home", `{"modules":["events"]}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("POST status: got %d body %s", rr.Code, rr.Body.String())
	}
	created := decodeData(t, rr).(map[string]any)
	if created["namespace"] != "app.views.Home" || created["initialized"] != true {
		t.Errorf("created: got %v", created)
	}

	rr = do(t, a, http.MethodGet, "/namespaces/app.views", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET container status: got %d", rr.Code)
	}
	shown := decodeData(t, rr).(map[string]any)
	if shown["value"] != nil {
		t.Errorf("container value: got %v, want null", shown["value"])
	}
	if _, ok := shown["children"].(map[string]any)["Home"]; !ok {
		t.Errorf("children: got %v", shown["children"])
	}

	rr = do(t, a, http.MethodGet, "/namespaces", "")
	tree := decodeData(t, rr).(map[string]any)
	if _, ok := tree["app"]; !ok {
		t.Errorf("tree: got %v", tree)
	}
}

func TestHTTP_RegisterWithoutBody(t *testing.T) {
	a := newApp(t, config.NoxConfig{})

	rr := do(t, a, http.MethodPost, "/namespaces/plain", "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d", rr.Code)
	}
}

func TestHTTP_RegisterErrors(t *testing.T) {
	a := newApp(t, config.NoxConfig{})

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"invalid namespace", "/namespaces/a.1", `{}`, http.StatusUnprocessableEntity},
		{"unknown module", "/namespaces/a.b", `{"modules":["nope"]}`, http.StatusNotFound},
		{"bad json", "/namespaces/a.b", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, a, http.MethodPost, tt.path, tt.body)
			if rr.Code != tt.status {
				t.Errorf("status: got %d want %d", rr.Code, tt.status)
			}
		})
	}
}

func TestHTTP_ShowMissing(t *testing.T) {
	a := newApp(t, config.NoxConfig{})
	if rr := do(t, a, http.MethodGet, "/namespaces/nothing.here", ""); rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d want 404", rr.Code)
	}
}

func TestHTTP_ShowInvalidPath(t *testing.T) {
	a := newApp(t, config.NoxConfig{})
	for _, path := range []string{"/namespaces/a..b", "/namespaces/app.1", "/namespaces/7up"} {
		if rr := do(t, a, http.MethodGet, path, ""); rr.Code != http.StatusUnprocessableEntity {
			t.Errorf("GET %s: got %d want 422", path, rr.Code)
		}
	}
}

func TestHTTP_TreeAsYAML(t *testing.T) {
	a := newApp(t, config.NoxConfig{})
	a.RegisterRecord("a.b", nil)

	rr := do(t, a, http.MethodGet, "/namespaces?format=yaml", "")
	if ct := rr.Header().Get("Content-Type"); ct != "application/yaml" {
		t.Errorf("Content-Type: got %q", ct)
	}
	if !strings.Contains(rr.Body.String(), "namespace: a.b") {
		t.Errorf("body: %s", rr.Body.String())
	}
}
