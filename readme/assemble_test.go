package readme

import (
	"regexp"
	"strings"
	"testing"
)

var headingRe = regexp.MustCompile(`(?m)^## (.+)$`)
var tocLinkRe = regexp.MustCompile(`(?m)^- \[(.+)\]\(#([a-z0-9-]+)\)$`)

func headings(doc string) []string {
	var out []string
	for _, m := range headingRe.FindAllStringSubmatch(doc, -1) {
		out = append(out, m[1])
	}
	return out
}

func TestAssembleMinimalRecord(t *testing.T) {
	doc := Assemble(ProjectRecord{ProjectName: "Foo"})

	if !strings.HasPrefix(doc, "# Foo\n") {
		t.Fatalf("document does not start with title: %q", doc[:min(len(doc), 40)])
	}
	got := headings(doc)
	want := []string{"Table of Contents", "Getting Started"}
	if len(got) != len(want) {
		t.Fatalf("headings = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("headings = %v, want %v", got, want)
		}
	}
}

func TestAssembleEmptyRecordUsesDefaultTitle(t *testing.T) {
	doc := Assemble(ProjectRecord{})
	if !strings.HasPrefix(doc, "# "+DefaultTitle+"\n") {
		t.Fatalf("want default title, got %q", strings.SplitN(doc, "\n", 2)[0])
	}
	if !strings.Contains(doc, "## Getting Started") {
		t.Fatal("missing Getting Started section")
	}
}

func TestAssembleTOCMatchesHeadings(t *testing.T) {
	records := []ProjectRecord{
		{},
		{ProjectName: "Foo", Overview: "about", Usage: "run it", Contact: "me"},
		{
			ProjectName:      "Full",
			Description:      "desc",
			Overview:         "over",
			LiveDemoURL:      "https://demo.example.com",
			Features:         []string{"fast"},
			Technologies:     []string{"Go"},
			Prerequisites:    "Go 1.25",
			Installation:     "go install",
			Usage:            "use",
			Roadmap:          "v2",
			Contributing:     "PRs welcome",
			License:          "MIT",
			Contact:          "me",
			Acknowledgements: "thanks",
		},
	}
	for _, rec := range records {
		doc := Assemble(rec)

		toc := map[string]string{}
		for _, m := range tocLinkRe.FindAllStringSubmatch(doc, -1) {
			toc[m[1]] = m[2]
		}
		heads := map[string]bool{}
		for _, h := range headings(doc) {
			heads[h] = true
		}

		for title, anchor := range toc {
			if !heads[title] {
				t.Errorf("TOC lists %q but no heading emitted", title)
			}
			if want := anchorFor(title); anchor != want {
				t.Errorf("anchor for %q = %q, want %q", title, anchor, want)
			}
		}
		for h := range heads {
			if h == "Table of Contents" {
				continue
			}
			if _, ok := toc[h]; !ok {
				t.Errorf("heading %q missing from TOC", h)
			}
		}
		if _, ok := toc["Getting Started"]; !ok {
			t.Error("Getting Started not listed in TOC")
		}
	}
}

func TestAssembleFeatureList(t *testing.T) {
	doc := Assemble(ProjectRecord{ProjectName: "Foo", Features: []string{"A", "B"}})
	want := "## Key Features\n\n- A\n- B\n"
	if !strings.Contains(doc, want) {
		t.Fatalf("feature section missing or malformed:\n%s", doc)
	}

	doc = Assemble(ProjectRecord{ProjectName: "Foo"})
	if strings.Contains(doc, "Key Features") {
		t.Fatal("empty feature list must omit the section entirely")
	}
}

func TestAssembleNoSectionAppearsTwice(t *testing.T) {
	doc := Assemble(ProjectRecord{ProjectName: "Foo", Usage: "u", License: "MIT"})
	seen := map[string]bool{}
	for _, h := range headings(doc) {
		if seen[h] {
			t.Fatalf("heading %q appears twice", h)
		}
		seen[h] = true
	}
}

func TestAssembleSectionSeparation(t *testing.T) {
	doc := Assemble(ProjectRecord{ProjectName: "Foo", Usage: "run it", Contact: "me"})
	if strings.Contains(doc, "\n\n\n") {
		t.Fatal("more than one blank line between blocks")
	}
	if !strings.HasSuffix(doc, "\n") || strings.HasSuffix(doc, "\n\n") {
		t.Fatal("document must end with exactly one newline")
	}
}

func TestPrerequisitesFencing(t *testing.T) {
	tests := []struct {
		name    string
		content string
		fenced  bool
	}{
		{"single line plain", "Node 18", true},
		{"multi line", "- Node 18\n- npm", false},
		{"already fenced", "```sh\nnode --version\n```", false},
		{"inline code", "`node` 18", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Assemble(ProjectRecord{ProjectName: "Foo", Prerequisites: tt.content})
			idx := strings.Index(doc, "### Prerequisites")
			if idx < 0 {
				t.Fatal("missing prerequisites subsection")
			}
			body := doc[idx:]
			wrapped := strings.Contains(body, "```sh\n"+tt.content+"\n```")
			if tt.fenced && !wrapped {
				t.Errorf("content %q should be wrapped in a sh fence", tt.content)
			}
			if !tt.fenced && !strings.Contains(body, tt.content) {
				t.Errorf("content %q should appear verbatim", tt.content)
			}
			if !tt.fenced && wrapped {
				t.Errorf("content %q should not gain a new fence", tt.content)
			}
		})
	}
}

func TestRenderListModes(t *testing.T) {
	items := []string{"one", "two"}
	if got := renderList(items, listBullet); got != "- one\n- two" {
		t.Errorf("bullet = %q", got)
	}
	if got := renderList(items, listNumbered); got != "1. one\n1. two" {
		t.Errorf("numbered = %q", got)
	}
	if got := renderList(items, listCode); got != "```sh\none\ntwo\n```" {
		t.Errorf("code = %q", got)
	}
}
