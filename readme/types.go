// Package readme holds the project record being edited, the section
// registry driving the form, and the assembler that turns a record into a
// Markdown document.
package readme

// ProjectRecord is the structured set of fields describing a project. Every
// string field is zero-valued until filled in by the user or a merge; slices
// keep insertion order.
type ProjectRecord struct {
	ProjectName      string   `json:"projectName"`
	Description      string   `json:"description"`
	Overview         string   `json:"overview"`
	Features         []string `json:"features"`
	Technologies     []string `json:"technologies"`
	Installation     string   `json:"installation"`
	Usage            string   `json:"usage"`
	Contributing     string   `json:"contributing"`
	License          string   `json:"license"` // full license text, not a name
	Contact          string   `json:"contact"`
	Acknowledgements string   `json:"acknowledgements"`
	Prerequisites    string   `json:"prerequisites"`
	LiveDemoURL      string   `json:"liveDemoUrl"`
	Roadmap          string   `json:"roadmap"`

	// Declared in the schema but not yet consumed by the assembler.
	Screenshots []string `json:"screenshots,omitempty"`
	FAQ         []QA     `json:"faq,omitempty"`
}

// QA is a reserved question/answer pair for a future FAQ section.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NewProjectRecord returns a record with defaults applied.
func NewProjectRecord() ProjectRecord {
	return ProjectRecord{
		License: DefaultLicenseText(),
	}
}

// FetchedFile is one allowlisted repository file. A non-empty Error means
// the fetch failed softly and the content must not be used downstream.
type FetchedFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Error   string `json:"error,omitempty"`
}

// Usable reports whether the file content may enter a prompt.
func (f FetchedFile) Usable() bool {
	return f.Error == "" && f.Content != ""
}

// SourceRepoInfo is what the source-host client returns for a repository.
type SourceRepoInfo struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Languages    []string      `json:"languages"`
	Topics       []string      `json:"topics"`
	LicenseName  string        `json:"licenseName,omitempty"`
	HTMLURL      string        `json:"htmlUrl"`
	CloneURL     string        `json:"cloneUrl"`
	OwnerLogin   string        `json:"ownerLogin"`
	FetchedFiles []FetchedFile `json:"fetchedFiles,omitempty"`
}

// DraftSections is the constrained shape the draft-generation model must
// return. Nil fields were absent from the response and must not overwrite
// existing record values.
type DraftSections struct {
	Overview      *string  `json:"overview,omitempty"`
	Features      []string `json:"features,omitempty"`
	Installation  *string  `json:"installation,omitempty"`
	Technologies  []string `json:"technologies,omitempty"`
	Prerequisites *string  `json:"prerequisites,omitempty"`
}
