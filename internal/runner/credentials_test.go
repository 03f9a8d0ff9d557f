package runner

import (
	"strings"
	"testing"
)

func TestParseCredentials_PreservesOrder(t *testing.T) {
	creds, err := ParseCredentials(`{"zeta_user": "z", "alpha_pass": "a", "mid_token": "m"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(creds) != 3 {
		t.Fatalf("expected 3 credentials, got %d", len(creds))
	}

	wantKeys := []string{"zeta_user", "alpha_pass", "mid_token"}
	for i, key := range wantKeys {
		if creds[i].Key != key {
			t.Errorf("position %d: expected key %q, got %q", i, key, creds[i].Key)
		}
	}
}

func TestParseCredentials_InvalidJSON(t *testing.T) {
	cases := []string{
		`{"user": `,
		`not json`,
		`["a", "b"]`,
		`{"user": "x"`,
	}

	for _, raw := range cases {
		if _, err := ParseCredentials(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestParseCredentials_NonStringValue(t *testing.T) {
	creds, err := ParseCredentials(`{"port": 8080}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds[0].Value != "8080" {
		t.Errorf("expected stringified value, got %q", creds[0].Value)
	}
}

func TestFormatCredentials_Empty(t *testing.T) {
	if got := FormatCredentials(nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
	if got := FormatCredentials(Credentials{}); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestFormatCredentials_TitleCase(t *testing.T) {
	creds := Credentials{
		{Key: "username", Value: "alice"},
		{Key: "api_key", Value: "sk-123"},
		{Key: "login_password", Value: "hunter2"},
	}

	got := FormatCredentials(creds)
	want := "Username: alice\nApi Key: sk-123\nLogin Password: hunter2"

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatCredentials_Concurrent(t *testing.T) {
	creds := Credentials{
		{Key: "api_key", Value: "sk-123"},
		{Key: "login_password", Value: "hunter2"},
	}
	want := FormatCredentials(creds)

	done := make(chan string, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- FormatCredentials(creds)
		}()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; got != want {
			t.Errorf("concurrent call diverged: got %q, want %q", got, want)
		}
	}
}

func TestFormatCredentials_OneLinePerEntry(t *testing.T) {
	creds := Credentials{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "2"},
	}

	got := FormatCredentials(creds)
	lines := strings.Split(got, "\n")
	if len(lines) != len(creds) {
		t.Errorf("expected %d lines, got %d: %q", len(creds), len(lines), got)
	}
	if got != strings.TrimSpace(got) {
		t.Errorf("expected trimmed output, got %q", got)
	}
}
