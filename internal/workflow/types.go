package workflow

import (
	"errors"
	"fmt"
)

// ProjectType identifies a supported front-end build convention.
type ProjectType string

// Supported project types.
const (
	TypeVanilla   ProjectType = "vanilla"
	TypeReactVite ProjectType = "react-vite"
	TypeCRA       ProjectType = "cra"
	TypeVue       ProjectType = "vue"
	TypeNextJS    ProjectType = "nextjs"
)

// ErrUnknownProjectType is returned when a project type tag is not one of
// the supported set.
var ErrUnknownProjectType = errors.New("unknown project type")

// typeInfo describes a project type for listings and documentation.
type typeInfo struct {
	Summary     string // one-line description shown by `workflow --list`
	ArtifactDir string // build output directory uploaded to Pages
	UsesBase    bool   // whether the template substitutes /<repo>/ as a base path
}

// types is the closed set of supported project types. Adding a new type means
// adding an entry here plus a template file under templates/.
var types = map[ProjectType]typeInfo{
	TypeVanilla:   {Summary: "Plain HTML/CSS/JS", ArtifactDir: "."},
	TypeReactVite: {Summary: "React with Vite", ArtifactDir: "dist", UsesBase: true},
	TypeCRA:       {Summary: "Create React App", ArtifactDir: "build", UsesBase: true},
	TypeVue:       {Summary: "Vue with Vite", ArtifactDir: "dist"},
	TypeNextJS:    {Summary: "Next.js static export", ArtifactDir: "out"},
}

// order fixes the listing order for help output.
var order = []ProjectType{TypeVanilla, TypeReactVite, TypeCRA, TypeVue, TypeNextJS}

// ParseProjectType validates a raw tag and returns the typed value.
func ParseProjectType(raw string) (ProjectType, error) {
	pt := ProjectType(raw)
	if _, ok := types[pt]; !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownProjectType, raw, supportedList())
	}
	return pt, nil
}

// Types returns the supported project types in listing order.
func Types() []ProjectType {
	out := make([]ProjectType, len(order))
	copy(out, order)
	return out
}

// Summary returns the one-line description for a project type.
func (pt ProjectType) Summary() string {
	return types[pt].Summary
}

// ArtifactDir returns the build output directory the generated workflow uploads.
func (pt ProjectType) ArtifactDir() string {
	return types[pt].ArtifactDir
}

// UsesRepoName reports whether the generated workflow depends on the
// repository name (base-path substitution).
func (pt ProjectType) UsesRepoName() bool {
	return types[pt].UsesBase
}

func supportedList() string {
	s := ""
	for i, pt := range order {
		if i > 0 {
			s += ", "
		}
		s += string(pt)
	}
	return s
}
