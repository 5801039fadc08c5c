package kv

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKeepsDocumentOrder(t *testing.T) {
	input := `
zeta = "last-letter"
alpha = "first-letter"
"svc.with.dots" = "quoted key"
mid = ""
`
	got, err := NewParser().ParseString(input)
	if err != nil {
		t.Fatal(err)
	}
	want := List{
		{Label: "zeta", Secret: "last-letter"},
		{Label: "alpha", Secret: "first-letter"},
		{Label: "svc.with.dots", Secret: "quoted key"},
		{Label: "mid", Secret: ""},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected entries (-want +got):\n%s", d)
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := NewParser().ParseString("# nothing here\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected no entries, got %v", got)
	}
}

func TestParseRejectsNonFlatInput(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "integer", input: "port = 22\n"},
		{name: "table", input: "[server]\npassword = \"x\"\n"},
		{name: "dotted", input: "server.password = \"x\"\n"},
		{name: "array", input: "list = [\"a\", \"b\"]\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewParser().ParseString(tc.input)
			if !errors.Is(err, ErrNotFlat) {
				t.Errorf("expected ErrNotFlat, got %v", err)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	testCases := []string{
		"alice = \n",
		"alice = \"one\"\nalice = \"two\"\n",
		"= \"no key\"\n",
	}
	for _, input := range testCases {
		_, err := NewParser().ParseString(input)
		if err == nil {
			t.Errorf("%q: expected an error", input)
			continue
		}
		if errors.Is(err, ErrNotFlat) {
			t.Errorf("%q: syntax error reported as ErrNotFlat: %v", input, err)
		}
	}
}

func TestMarshal(t *testing.T) {
	list := List{
		{Label: "alice", Secret: "s3cr3t"},
		{Label: "bob", Secret: "hunter2"},
	}
	got, err := list.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	want := "alice = \"s3cr3t\"\nbob = \"hunter2\"\n"
	if got != want {
		t.Errorf("Marshal() = %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	testCases := []List{
		{},
		{{Label: "alice", Secret: "s3cr3t"}, {Label: "bob", Secret: "hunter2"}},
		{
			{Label: "z", Secret: "1"},
			{Label: "a", Secret: "2"},
			{Label: "with space", Secret: "quote \" and backslash \\"},
			{Label: "unicode-ключ", Secret: "päss\twörd\nnext line"},
			{Label: "m", Secret: ""},
		},
	}
	for _, list := range testCases {
		text, err := list.Marshal()
		if err != nil {
			t.Fatal(err)
		}
		got, err := NewParser().ParseString(text)
		if err != nil {
			t.Fatalf("parse of %q failed: %v", text, err)
		}
		if d := cmp.Diff(list, got); d != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", d)
		}
		if lines := strings.Count(text, "\n"); lines != len(list) {
			t.Errorf("expected %d lines, got %d in %q", len(list), lines, text)
		}
	}
}

func TestLabels(t *testing.T) {
	list := List{{Label: "b"}, {Label: "a"}, {Label: "b"}}
	if d := cmp.Diff([]string{"b", "a", "b"}, list.Labels()); d != "" {
		t.Error(d)
	}
}
