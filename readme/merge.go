package readme

import "fmt"

// Strategy decides how an incoming field value enters the record.
type Strategy int

const (
	// KeepIfPresent fills the field only when the record's value is empty.
	KeepIfPresent Strategy = iota
	// OverwriteIfPresent replaces the field whenever the patch carries a
	// non-empty value.
	OverwriteIfPresent
	// UnionDedup appends patch items not already present, keeping
	// first-seen order. Case-sensitive equality.
	UnionDedup
	// AlwaysOverwrite replaces the field whenever the patch sets it, even
	// with an empty value.
	AlwaysOverwrite
)

// Patch is a partial record produced from a source-host fetch or a draft
// generation. Nil pointers and nil slices mean "not provided".
type Patch struct {
	ProjectName   *string
	Description   *string
	Overview      *string
	Features      []string
	Technologies  []string
	Installation  *string
	Prerequisites *string
	License       *string
	Contact       *string
}

// stringRules maps each string-valued patch field onto its merge strategy
// and record slot. Driven generically by Apply instead of hand-coded
// per-field conditionals.
var stringRules = []struct {
	name     string
	strategy Strategy
	patch    func(*Patch) *string
	field    func(*ProjectRecord) *string
}{
	{"projectName", KeepIfPresent, func(p *Patch) *string { return p.ProjectName }, func(r *ProjectRecord) *string { return &r.ProjectName }},
	{"description", KeepIfPresent, func(p *Patch) *string { return p.Description }, func(r *ProjectRecord) *string { return &r.Description }},
	{"overview", KeepIfPresent, func(p *Patch) *string { return p.Overview }, func(r *ProjectRecord) *string { return &r.Overview }},
	{"prerequisites", KeepIfPresent, func(p *Patch) *string { return p.Prerequisites }, func(r *ProjectRecord) *string { return &r.Prerequisites }},
	{"installation", OverwriteIfPresent, func(p *Patch) *string { return p.Installation }, func(r *ProjectRecord) *string { return &r.Installation }},
	{"license", OverwriteIfPresent, func(p *Patch) *string { return p.License }, func(r *ProjectRecord) *string { return &r.License }},
	{"contact", AlwaysOverwrite, func(p *Patch) *string { return p.Contact }, func(r *ProjectRecord) *string { return &r.Contact }},
}

// Apply merges a patch into the record according to the per-field strategy
// table. Features overwrite when provided; technologies union in.
func (p Patch) Apply(rec *ProjectRecord) {
	for _, rule := range stringRules {
		src := rule.patch(&p)
		if src == nil {
			continue
		}
		dst := rule.field(rec)
		switch rule.strategy {
		case AlwaysOverwrite:
			*dst = *src
		case OverwriteIfPresent:
			if *src != "" {
				*dst = *src
			}
		case KeepIfPresent:
			if *dst == "" {
				*dst = *src
			}
		}
	}
	if len(p.Features) > 0 {
		rec.Features = append([]string(nil), p.Features...)
	}
	rec.Technologies = unionDedup(rec.Technologies, p.Technologies)
}

// unionDedup appends items not already in base, preserving first-seen
// order.
func unionDedup(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}
	seen := make(map[string]struct{}, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, v := range base {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	for _, v := range extra {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// HostPatch builds the patch derived from a successful repository fetch.
// Languages and topics feed the technology union; contact is rebuilt from
// the owner login and canonical repo URL unconditionally; the reported
// license name substitutes a preset's text only when it matches one.
func HostPatch(info SourceRepoInfo) Patch {
	p := Patch{
		Technologies: unionDedup(info.Languages, info.Topics),
	}
	if info.Name != "" {
		p.ProjectName = ptr(info.Name)
	}
	if info.Description != "" {
		p.Description = ptr(info.Description)
	}
	contact := fmt.Sprintf("Owner: %s\nProject Link: %s", info.OwnerLogin, info.HTMLURL)
	p.Contact = &contact
	if info.LicenseName != "" {
		if text, ok := MatchLicensePreset(info.LicenseName); ok {
			p.License = &text
		}
	}
	return p
}

// DraftPatch builds the patch derived from generated draft sections.
func DraftPatch(d DraftSections) Patch {
	return Patch{
		Overview:      d.Overview,
		Features:      d.Features,
		Installation:  d.Installation,
		Technologies:  d.Technologies,
		Prerequisites: d.Prerequisites,
	}
}

// FallbackPatch fills boilerplate defaults for fields still empty after the
// host and draft patches: an overview placeholder and a clone/cd
// installation template. Applied last so generated prose wins over
// boilerplate.
func FallbackPatch(info SourceRepoInfo) Patch {
	overview := fmt.Sprintf("An overview of %s. This project aims to...", info.Name)
	installation := fmt.Sprintf("1. Clone the repo\n   ```sh\n   git clone %s\n   ```\n"+
		"2. Navigate to the project directory\n   ```sh\n   cd %s\n   ```\n"+
		"3. Install dependencies (update with your project's specific commands, e.g. npm install or pip install -r requirements.txt)",
		info.CloneURL, info.Name)
	return Patch{
		Overview:     &overview,
		Installation: &installation,
	}
}

// ApplyIfEmpty fills only still-empty string fields from the patch,
// regardless of the per-field strategy. Used for fallback defaults.
func (p Patch) ApplyIfEmpty(rec *ProjectRecord) {
	for _, rule := range stringRules {
		src := rule.patch(&p)
		if src == nil {
			continue
		}
		if dst := rule.field(rec); *dst == "" {
			*dst = *src
		}
	}
}

func ptr(s string) *string { return &s }
