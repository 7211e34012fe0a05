package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Sushanth18052005/mt5-EA/internal/config"
	"github.com/Sushanth18052005/mt5-EA/pkg/endpoints"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvAPIBaseURL,
		config.EnvConfigEnv,
		config.EnvLogLevel,
		config.EnvLogFormat,
	} {
		t.Setenv(key, "")
	}
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	clearEnv(t)

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	missing := filepath.Join(t.TempDir(), "config.toml")
	cmd.SetArgs(append([]string{"--config", missing}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBaseURL_Default(t *testing.T) {
	out, _, err := run(t, "base-url")
	if err != nil {
		t.Fatalf("base-url failed: %v", err)
	}
	if out != "http://localhost:8000\n" {
		t.Errorf("output = %q, want %q", out, "http://localhost:8000\n")
	}
}

func TestBaseURL_Flag(t *testing.T) {
	out, _, err := run(t, "--base-url", "https://api.example.com", "base-url")
	if err != nil {
		t.Fatalf("base-url failed: %v", err)
	}
	if strings.TrimSpace(out) != "https://api.example.com" {
		t.Errorf("output = %q, want %q", out, "https://api.example.com")
	}
}

func TestBaseURL_NonAbsoluteVerbatim(t *testing.T) {
	out, stderr, err := run(t, "--base-url", "api.example.com", "base-url")
	if err != nil {
		t.Fatalf("base-url failed: %v", err)
	}
	if out != "api.example.com\n" {
		t.Errorf("output = %q, want %q", out, "api.example.com\n")
	}
	if !strings.Contains(stderr, "base url is not absolute") {
		t.Errorf("stderr = %q, want warning about non-absolute base url", stderr)
	}
}

func TestBaseURL_EnvVerbatim(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvAPIBaseURL, "localhost:8000")

	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.toml"), "base-url"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("base-url failed: %v", err)
	}
	if got := strings.TrimSuffix(stdout.String(), "\n"); got != endpoints.ResolveBaseURL(os.LookupEnv) {
		t.Errorf("output = %q, want %q", got, endpoints.ResolveBaseURL(os.LookupEnv))
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"get", "AUTH", "LOGIN"}, "https://api.example.com/api/v1/auth/login"},
		{[]string{"get", "auth", "verify-otp"}, "https://api.example.com/api/v1/auth/verify-otp"},
		{[]string{"get", "user", "profile"}, "https://api.example.com/api/v1/auth/me"},
		{[]string{"get", "admin", "all_masters"}, "https://api.example.com/api/all-masters"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			args := append([]string{"--base-url", "https://api.example.com"}, tt.args...)
			out, _, err := run(t, args...)
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			if strings.TrimSpace(out) != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	_, _, err := run(t, "get", "admin", "login")
	if !errors.Is(err, endpoints.ErrUnknownEndpoint) {
		t.Errorf("error = %v, want ErrUnknownEndpoint", err)
	}

	_, _, err = run(t, "get", "billing", "login")
	if !errors.Is(err, endpoints.ErrUnknownCategory) {
		t.Errorf("error = %v, want ErrUnknownCategory", err)
	}
}

func TestGet_JSON(t *testing.T) {
	out, _, err := run(t, "-o", "json", "get", "admin", "slave-delete")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	var e endpoints.Entry
	if err := json.Unmarshal([]byte(out), &e); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if e.Method != "DELETE" || e.URL != "http://localhost:8000/api/slave-delete" {
		t.Errorf("entry = %+v, want DELETE http://localhost:8000/api/slave-delete", e)
	}
}

func TestList_Table(t *testing.T) {
	out, _, err := run(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	for _, e := range endpoints.New("http://localhost:8000").Entries() {
		if !strings.Contains(out, e.URL) {
			t.Errorf("table output missing %s", e.URL)
		}
	}
}

func TestList_CategoryYAML(t *testing.T) {
	out, _, err := run(t, "-o", "yaml", "list", "admin")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var entries []endpoints.Entry
	if err := yaml.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if len(entries) != 7 {
		t.Fatalf("len(entries) = %d, want 7", len(entries))
	}
	for _, e := range entries {
		if e.Category != endpoints.CategoryAdmin {
			t.Errorf("entry %s.%s, want ADMIN only", e.Category, e.Name)
		}
	}
}

func TestList_EnvBaseURL(t *testing.T) {
	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})

	clearEnv(t)
	t.Setenv(config.EnvAPIBaseURL, "https://env.example.com")
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.toml"), "-o", "json", "list", "user"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var entries []endpoints.Entry
	if err := json.Unmarshal(stdout.Bytes(), &entries); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(entries) != 1 || entries[0].URL != "https://env.example.com/api/v1/auth/me" {
		t.Errorf("entries = %+v, want USER.PROFILE at env base URL", entries)
	}
}

func TestConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[api]\nbase_url = \"https://file.example.com\"\n\n[logging]\nlevel = \"debug\"\nformat = \"json\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--config", path, "base-url"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("base-url failed: %v", err)
	}
	if strings.TrimSpace(stdout.String()) != "https://file.example.com" {
		t.Errorf("output = %q, want %q", stdout.String(), "https://file.example.com")
	}
	if !strings.Contains(stderr.String(), `"msg":"endpoint registry resolved"`) {
		t.Errorf("stderr = %q, want debug JSON log record", stderr.String())
	}
}

func TestOutput_Invalid(t *testing.T) {
	_, _, err := run(t, "-o", "xml", "list")
	if err == nil || !strings.Contains(err.Error(), "unsupported output format") {
		t.Errorf("error = %v, want unsupported output format", err)
	}
}
