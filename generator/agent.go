package generator

import (
	"context"
	"strings"

	"github_readme_generator/readme"
)

// Agent drives the two generation flows against an LLMClient.
type Agent struct {
	llm LLMClient
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, ErrMissingAPIKey
	}
	return &Agent{llm: llm}, nil
}

// GenerateSections analyzes fetched repository data and returns draft
// README sections. Returns nil without calling the model when there is no
// usable file content to analyze.
func (a *Agent) GenerateSections(ctx context.Context, info readme.SourceRepoInfo) (*readme.DraftSections, error) {
	usable := false
	for _, f := range info.FetchedFiles {
		if f.Usable() {
			usable = true
			break
		}
	}
	if !usable {
		return nil, nil
	}

	reply, err := a.llm.Complete(ctx, BuildSectionsPrompt(info))
	if err != nil {
		return nil, err
	}
	sections, err := ParseDraftSections(reply)
	if err != nil {
		return nil, err
	}
	return &sections, nil
}

// GenerateDescription drafts a one-to-two sentence project description.
func (a *Agent) GenerateDescription(ctx context.Context, projectName, current string) (string, error) {
	reply, err := a.llm.Complete(ctx, BuildDescriptionPrompt(projectName, current))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}
