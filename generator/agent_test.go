package generator

import (
	"context"
	"strings"
	"testing"

	"github_readme_generator/readme"
)

func repoInfo() readme.SourceRepoInfo {
	return readme.SourceRepoInfo{
		Name:      "widget",
		CloneURL:  "https://github.com/alice/widget.git",
		Languages: []string{"Go"},
		FetchedFiles: []readme.FetchedFile{
			{Path: "README.md", Content: "# widget"},
			{Path: "go.mod", Content: "", Error: "fetch failed with status 404"},
		},
	}
}

func TestGenerateSections(t *testing.T) {
	mock := &MockLLM{Reply: "```json\n" + sampleJSON + "\n```"}
	agent, err := NewAgent(mock)
	if err != nil {
		t.Fatal(err)
	}

	sections, err := agent.GenerateSections(context.Background(), repoInfo())
	if err != nil {
		t.Fatal(err)
	}
	if sections == nil || sections.Overview == nil || *sections.Overview != "A tool." {
		t.Fatalf("sections = %+v", sections)
	}

	// Errored files must not leak into the prompt.
	if strings.Contains(mock.LastPrompt.User, "go.mod") {
		t.Error("errored file excerpt included in prompt")
	}
	if !strings.Contains(mock.LastPrompt.User, "File: README.md") {
		t.Error("usable file excerpt missing from prompt")
	}
	if mock.LastPrompt.Temperature != 0.5 || mock.LastPrompt.TopP != 0.9 {
		t.Errorf("sampling params = %v/%v", mock.LastPrompt.Temperature, mock.LastPrompt.TopP)
	}
}

func TestGenerateSectionsNoUsableFiles(t *testing.T) {
	mock := &MockLLM{}
	agent, _ := NewAgent(mock)

	info := repoInfo()
	info.FetchedFiles = []readme.FetchedFile{{Path: "go.mod", Error: "oversized"}}
	sections, err := agent.GenerateSections(context.Background(), info)
	if err != nil {
		t.Fatal(err)
	}
	if sections != nil {
		t.Fatalf("want nil sections without usable files, got %+v", sections)
	}
	if mock.LastPrompt.User != "" {
		t.Error("model must not be called without usable files")
	}
}

func TestGenerateDescription(t *testing.T) {
	mock := &MockLLM{Reply: "  A crisp description.\n"}
	agent, _ := NewAgent(mock)

	desc, err := agent.GenerateDescription(context.Background(), "widget", "old text")
	if err != nil {
		t.Fatal(err)
	}
	if desc != "A crisp description." {
		t.Fatalf("description = %q", desc)
	}
	if !strings.Contains(mock.LastPrompt.User, `"old text"`) {
		t.Error("current description not offered as inspiration")
	}
}

func TestFileExcerptCap(t *testing.T) {
	long := strings.Repeat("x", maxPromptCharsPerFile+500)
	out := fileExcerpts([]readme.FetchedFile{{Path: "README.md", Content: long}})
	if strings.Contains(out, strings.Repeat("x", maxPromptCharsPerFile+1)) {
		t.Error("file excerpt not capped")
	}
	if !strings.Contains(out, strings.Repeat("x", maxPromptCharsPerFile)) {
		t.Error("capped excerpt missing")
	}
}
