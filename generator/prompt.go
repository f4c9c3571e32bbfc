package generator

import (
	"fmt"
	"strings"

	"github_readme_generator/readme"
)

// Per-file excerpt ceiling keeps the prompt size reasonable.
const maxPromptCharsPerFile = 1500

// BuildSectionsPrompt asks the model to analyze fetched repository data and
// reply with a bare JSON object matching the DraftSections shape.
func BuildSectionsPrompt(info readme.SourceRepoInfo) Prompt {
	cloneURL := info.CloneURL
	if cloneURL == "" {
		cloneURL = "YOUR_REPO_URL_HERE"
	}
	name := info.Name
	if name == "" {
		name = "your_project_directory"
	}

	var sys strings.Builder
	sys.WriteString("You are an AI assistant specialized in analyzing GitHub repositories and generating high-quality, well-structured README.md content.\n")
	sys.WriteString("Your response MUST be a single, valid JSON object. Do not include any text or markdown formatting before or after the JSON object.\n")
	sys.WriteString("The JSON object must adhere to the following schema:\n")
	sys.WriteString(`{
  "overview": "string (a detailed project overview for the 'About The Project' section)",
  "features": ["string array (key features of the project)"],
  "installation": "string (markdown-formatted, step-by-step installation instructions. Infer from files like package.json, requirements.txt, etc.)",
  "technologies": ["string array (primary technologies, frameworks, and libraries used, beyond basic languages)"],
  "prerequisites": "string (markdown-formatted, list of prerequisites like runtime versions, package managers, etc.)"
}
`)
	fmt.Fprintf(&sys, "Example for installation value: \"1. Clone the repo\\n   ```sh\\n   git clone %s\\n   ```\\n2. Navigate to project directory\\n   ```sh\\n   cd %s\\n   ```\\n3. Install dependencies\"\n", cloneURL, name)
	sys.WriteString("Example for prerequisites value: \"Ensure you have the following installed:\\n- Node.js (v18.x or higher)\\n- npm (v9.x or higher) or yarn\"\n")

	var user strings.Builder
	user.WriteString("Analyze the following GitHub repository data and generate content for its README.md file.\n")
	fmt.Fprintf(&user, "Project Name: %s\n", info.Name)
	fmt.Fprintf(&user, "Project Description (from GitHub API): %s\n", orNotAvailable(info.Description))
	fmt.Fprintf(&user, "Languages (from GitHub API): %s\n", orNotAvailable(strings.Join(info.Languages, ", ")))
	fmt.Fprintf(&user, "Topics (from GitHub API): %s\n", orNotAvailable(strings.Join(info.Topics, ", ")))
	fmt.Fprintf(&user, "Clone URL: %s\n\n", info.CloneURL)
	user.WriteString("Fetched File Contents Summary:\n")
	user.WriteString(fileExcerpts(info.FetchedFiles))
	user.WriteString("\nBased on all the above information, provide the content for the overview, features, installation, technologies, and prerequisites sections.\n")
	user.WriteString("Return your response ONLY as a valid JSON object matching the schema provided in the system instructions.\n")
	user.WriteString("Ensure the installation and prerequisites instructions are practical and markdown formatted.\n")
	user.WriteString("Identify specific frameworks or key libraries from file contents for the 'technologies' list.\n")

	return Prompt{
		System:      sys.String(),
		User:        user.String(),
		Temperature: 0.5,
		TopP:        0.9,
	}
}

// BuildDescriptionPrompt asks for a one-to-two sentence project
// description, optionally refining an existing one.
func BuildDescriptionPrompt(projectName, current string) Prompt {
	var user strings.Builder
	fmt.Fprintf(&user, "Generate a concise and engaging project description (1-2 sentences) for a GitHub project titled %q.", projectName)
	if strings.TrimSpace(current) != "" {
		fmt.Fprintf(&user, " The project's current description (possibly fetched from GitHub) is: %q. You can use this as inspiration, refine it, or generate a new one if it's not suitable. Focus on its main purpose and target audience.", current)
	} else {
		user.WriteString(" Focus on its main purpose and target audience. Make it catchy and informative. Output only the description text.")
	}
	return Prompt{
		System:      "You are a helpful assistant that generates concise project descriptions.",
		User:        user.String(),
		Temperature: 0.7,
	}
}

// fileExcerpts concatenates usable fetched files, each capped at
// maxPromptCharsPerFile characters. Errored or empty files are excluded.
func fileExcerpts(files []readme.FetchedFile) string {
	var b strings.Builder
	for _, f := range files {
		if !f.Usable() {
			continue
		}
		content := f.Content
		if len(content) > maxPromptCharsPerFile {
			content = content[:maxPromptCharsPerFile]
		}
		fmt.Fprintf(&b, "File: %s\nContent (first %d chars):\n%s\n---\n", f.Path, maxPromptCharsPerFile, content)
	}
	if strings.TrimSpace(b.String()) == "" {
		return "No relevant file contents could be retrieved or they were empty.\n"
	}
	return b.String()
}

func orNotAvailable(s string) string {
	if s == "" {
		return "Not available"
	}
	return s
}
