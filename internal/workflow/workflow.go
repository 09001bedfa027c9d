package workflow

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed templates/*.yml.tmpl
var templateFS embed.FS

// DefaultOutputPath is the conventional workflow location relative to the
// repository root.
const DefaultOutputPath = ".github/workflows/deploy.yml"

// templateData holds the variables available to workflow templates.
type templateData struct {
	RepoName string // substituted into /<repo>/ base-path settings
}

// Render produces the workflow text for a project type. The repository name
// is substituted into the base-path setting for types that need one
// (react-vite, cra) and ignored by the rest. Rendering is deterministic:
// the same inputs always yield the same bytes.
func Render(pt ProjectType, repoName string) (string, error) {
	if _, ok := types[pt]; !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownProjectType, string(pt), supportedList())
	}

	name := string(pt) + ".yml.tmpl"
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{RepoName: repoName}); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.String(), nil
}

// Write renders the workflow and writes it to outputPath, creating parent
// directories as needed and overwriting any existing file. An empty
// outputPath selects DefaultOutputPath under the current working directory.
// Nothing is written if rendering fails (e.g., unknown project type).
func Write(pt ProjectType, repoName, outputPath string) (string, error) {
	text, err := Render(pt, repoName)
	if err != nil {
		return "", err
	}

	if outputPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		outputPath = filepath.Join(cwd, filepath.FromSlash(DefaultOutputPath))
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("creating workflow directory: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("writing workflow %s: %w", outputPath, err)
	}

	return outputPath, nil
}
