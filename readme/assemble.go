package readme

import (
	"fmt"
	"strings"
)

// DefaultTitle is used when the record has no project name.
const DefaultTitle = "My Awesome Project"

// listMode selects how a list-valued section is rendered.
type listMode int

const (
	listBullet listMode = iota
	listNumbered
	listCode
)

// Assemble renders a project record into a Markdown document. It is pure
// and total: blank fields simply omit their section, and a fully blank
// record still yields a title, a table of contents, and a Getting Started
// section.
func Assemble(rec ProjectRecord) string {
	var blocks []string

	title := strings.TrimSpace(rec.ProjectName)
	if title == "" {
		title = DefaultTitle
	}
	blocks = append(blocks, "# "+title)

	if rec.Description != "" {
		blocks = append(blocks, rec.Description)
	}

	blocks = append(blocks, tableOfContents(rec))

	if rec.Overview != "" {
		blocks = append(blocks, heading("About The Project"), rec.Overview)
	}
	if rec.LiveDemoURL != "" {
		blocks = append(blocks, heading("Live Demo"),
			fmt.Sprintf("Check out the live demo here: [%s Demo](%s)", title, rec.LiveDemoURL))
	}
	blocks = appendList(blocks, "Key Features", rec.Features, listBullet)
	blocks = appendList(blocks, "Built With", rec.Technologies, listBullet)

	// Getting Started is the one unconditional section.
	blocks = append(blocks, heading("Getting Started"),
		"To get a local copy up and running follow these simple example steps.")
	if rec.Prerequisites != "" {
		blocks = append(blocks, "### Prerequisites", prerequisitesBlock(rec.Prerequisites))
	}
	if rec.Installation != "" {
		blocks = append(blocks, "### Installation", rec.Installation)
	}

	blocks = appendText(blocks, "Usage", rec.Usage)
	blocks = appendText(blocks, "Roadmap", rec.Roadmap)
	blocks = appendText(blocks, "Contributing", rec.Contributing)
	blocks = appendText(blocks, "License", rec.License)
	blocks = appendText(blocks, "Contact", rec.Contact)
	blocks = appendText(blocks, "Acknowledgements", rec.Acknowledgements)

	return strings.Join(blocks, "\n\n") + "\n"
}

func heading(title string) string { return "## " + title }

// anchorFor converts a section title into its lower-kebab-case anchor.
func anchorFor(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}

func tocEntry(title string) string {
	return fmt.Sprintf("- [%s](#%s)", title, anchorFor(title))
}

// tableOfContents lists, in the fixed document order, every section that
// will actually be emitted. Getting Started is always listed.
func tableOfContents(rec ProjectRecord) string {
	var items []string
	if rec.Overview != "" {
		items = append(items, tocEntry("About The Project"))
	}
	if rec.LiveDemoURL != "" {
		items = append(items, tocEntry("Live Demo"))
	}
	if len(rec.Features) > 0 {
		items = append(items, tocEntry("Key Features"))
	}
	if len(rec.Technologies) > 0 {
		items = append(items, tocEntry("Built With"))
	}
	items = append(items, tocEntry("Getting Started"))
	if rec.Usage != "" {
		items = append(items, tocEntry("Usage"))
	}
	if rec.Roadmap != "" {
		items = append(items, tocEntry("Roadmap"))
	}
	if rec.Contributing != "" {
		items = append(items, tocEntry("Contributing"))
	}
	if rec.License != "" {
		items = append(items, tocEntry("License"))
	}
	if rec.Contact != "" {
		items = append(items, tocEntry("Contact"))
	}
	if rec.Acknowledgements != "" {
		items = append(items, tocEntry("Acknowledgements"))
	}
	return heading("Table of Contents") + "\n\n" + strings.Join(items, "\n")
}

// appendText adds a level-2 section with verbatim content, or nothing when
// the content is blank.
func appendText(blocks []string, title, content string) []string {
	if content == "" {
		return blocks
	}
	return append(blocks, heading(title), content)
}

// appendList adds a level-2 section rendering items per mode, or nothing
// when the list is empty.
func appendList(blocks []string, title string, items []string, mode listMode) []string {
	if len(items) == 0 {
		return blocks
	}
	return append(blocks, heading(title), renderList(items, mode))
}

func renderList(items []string, mode listMode) string {
	switch mode {
	case listNumbered:
		lines := make([]string, len(items))
		for i, it := range items {
			lines[i] = "1. " + it
		}
		return strings.Join(lines, "\n")
	case listCode:
		return "```sh\n" + strings.Join(items, "\n") + "\n```"
	default:
		lines := make([]string, len(items))
		for i, it := range items {
			lines[i] = "- " + it
		}
		return strings.Join(lines, "\n")
	}
}

// prerequisitesBlock wraps a short single-line prerequisite list in a shell
// fence; multi-line or already-fenced content is assumed to be Markdown and
// passed through.
func prerequisitesBlock(content string) string {
	if strings.Contains(content, "\n") ||
		strings.HasPrefix(content, "`") ||
		strings.Contains(content, "```") {
		return content
	}
	return renderList([]string{content}, listCode)
}
