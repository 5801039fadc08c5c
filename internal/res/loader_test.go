package res

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.toml")
	if err := os.WriteFile(path, []byte("alice = \"s3cr3t\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	r, err := NewLoader().Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != path || r.GetString() != "alice = \"s3cr3t\"\n" {
		t.Errorf("unexpected resource %q: %q", r.Name, r.GetString())
	}
}

func TestLoadSearchPaths(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "only-here.toml"), []byte("x = \"y\""), 0o600); err != nil {
		t.Fatal(err)
	}

	l := NewLoader()
	if _, err := l.Load("only-here.toml"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist before adding the search path, got %v", err)
	}
	l.AddSearchPath(dir)
	r, err := l.Load("only-here.toml")
	if err != nil {
		t.Fatal(err)
	}
	if r.GetString() != "x = \"y\"" {
		t.Errorf("unexpected content %q", r.GetString())
	}
}

func TestLoadStdin(t *testing.T) {
	l := NewLoader()
	l.Stdin = strings.NewReader("bob = \"hunter2\"\n")
	r, err := l.Load(Stdin)
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != Stdin || r.GetString() != "bob = \"hunter2\"\n" {
		t.Errorf("unexpected resource %q: %q", r.Name, r.GetString())
	}

	l.Stdin = nil
	if _, err := l.Load(Stdin); err == nil {
		t.Error("expected an error without standard input")
	}
}

func TestLoadDataURL(t *testing.T) {
	testCases := []struct {
		url  string
		want string
	}{
		{url: "data:,alice%20%3D%20%22s3cr3t%22", want: `alice = "s3cr3t"`},
		{url: "data:text/plain;base64,Ym9iID0gImh1bnRlcjIi", want: `bob = "hunter2"`},
	}
	for _, tc := range testCases {
		r, err := NewLoader().Load(tc.url)
		if err != nil {
			t.Fatalf("%s: %v", tc.url, err)
		}
		if r.GetString() != tc.want {
			t.Errorf("%s: got %q, want %q", tc.url, r.GetString(), tc.want)
		}
	}

	for _, bad := range []string{"data:no-comma", "data:;base64,***"} {
		if _, err := NewLoader().Load(bad); err == nil {
			t.Errorf("%s: expected an error", bad)
		}
	}
}
