package readme

// ControlKind tells the form UI which widget edits a section.
type ControlKind string

const (
	ControlInput    ControlKind = "input"
	ControlTextarea ControlKind = "textarea"
	ControlArray    ControlKind = "array"
	ControlSelect   ControlKind = "select"
)

// SectionConfig describes one editable field of the project record. The
// registry order is the order the form renders in; the assembler has its
// own fixed document order.
type SectionConfig struct {
	Key         string          `json:"key"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Placeholder string          `json:"placeholder,omitempty"`
	Type        ControlKind     `json:"type"`
	Noun        string          `json:"noun,omitempty"`
	Options     []LicensePreset `json:"options,omitempty"`
}

// Sections is the static registry of editable fields.
var Sections = []SectionConfig{
	{Key: "projectName", Title: "Project Name", Placeholder: "My Awesome Project", Type: ControlInput},
	{Key: "description", Title: "Short Description", Description: "One or two sentences shown right under the title.", Placeholder: "A tool that does X for Y.", Type: ControlTextarea},
	{Key: "overview", Title: "About The Project", Description: "A longer overview of what the project does and why.", Type: ControlTextarea},
	{Key: "liveDemoUrl", Title: "Live Demo URL", Placeholder: "https://example.com/demo", Type: ControlInput},
	{Key: "features", Title: "Key Features", Type: ControlArray, Noun: "feature"},
	{Key: "technologies", Title: "Built With", Type: ControlArray, Noun: "technology"},
	{Key: "prerequisites", Title: "Prerequisites", Description: "Things needed before installing, e.g. runtime versions.", Placeholder: "Node.js 18+", Type: ControlTextarea},
	{Key: "installation", Title: "Installation", Description: "Markdown-formatted installation steps.", Type: ControlTextarea},
	{Key: "usage", Title: "Usage", Type: ControlTextarea},
	{Key: "roadmap", Title: "Roadmap", Type: ControlTextarea},
	{Key: "contributing", Title: "Contributing", Type: ControlTextarea},
	{Key: "license", Title: "License", Type: ControlSelect, Options: LicensePresets},
	{Key: "contact", Title: "Contact", Placeholder: "Owner: you\nProject Link: https://github.com/you/project", Type: ControlTextarea},
	{Key: "acknowledgements", Title: "Acknowledgements", Type: ControlTextarea},
}
