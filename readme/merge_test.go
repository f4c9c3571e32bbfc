package readme

import (
	"reflect"
	"strings"
	"testing"
)

func TestApplyKeepIfPresent(t *testing.T) {
	rec := ProjectRecord{Description: "Custom"}
	Patch{Description: ptr("Auto")}.Apply(&rec)
	if rec.Description != "Custom" {
		t.Fatalf("existing description overwritten: %q", rec.Description)
	}

	rec = ProjectRecord{}
	Patch{Description: ptr("Auto")}.Apply(&rec)
	if rec.Description != "Auto" {
		t.Fatalf("empty description not adopted: %q", rec.Description)
	}
}

func TestApplyTechnologiesUnion(t *testing.T) {
	rec := ProjectRecord{Technologies: []string{"Go"}}
	Patch{Technologies: []string{"Go", "Rust"}}.Apply(&rec)
	Patch{Technologies: []string{"Go", "gRPC"}}.Apply(&rec)

	want := []string{"Go", "Rust", "gRPC"}
	if !reflect.DeepEqual(rec.Technologies, want) {
		t.Fatalf("technologies = %v, want %v", rec.Technologies, want)
	}
}

func TestApplyFeaturesOverwrite(t *testing.T) {
	rec := ProjectRecord{Features: []string{"old"}}
	Patch{Features: []string{"new A", "new B"}}.Apply(&rec)
	if !reflect.DeepEqual(rec.Features, []string{"new A", "new B"}) {
		t.Fatalf("features = %v", rec.Features)
	}

	Patch{}.Apply(&rec)
	if !reflect.DeepEqual(rec.Features, []string{"new A", "new B"}) {
		t.Fatalf("absent features must not clear existing: %v", rec.Features)
	}
}

func TestApplyContactAlwaysOverwrites(t *testing.T) {
	rec := ProjectRecord{Contact: "hand-written"}
	info := SourceRepoInfo{
		Name:       "widget",
		OwnerLogin: "alice",
		HTMLURL:    "https://github.com/alice/widget",
	}
	HostPatch(info).Apply(&rec)
	want := "Owner: alice\nProject Link: https://github.com/alice/widget"
	if rec.Contact != want {
		t.Fatalf("contact = %q, want %q", rec.Contact, want)
	}
}

func TestHostPatchLanguagesAndTopics(t *testing.T) {
	rec := ProjectRecord{Technologies: []string{"Go"}}
	info := SourceRepoInfo{
		Name:      "widget",
		Languages: []string{"Go", "Rust"},
		Topics:    []string{"cli", "Go"},
	}
	HostPatch(info).Apply(&rec)
	want := []string{"Go", "Rust", "cli"}
	if !reflect.DeepEqual(rec.Technologies, want) {
		t.Fatalf("technologies = %v, want %v", rec.Technologies, want)
	}
}

func TestHostPatchLicenseMatching(t *testing.T) {
	tests := []struct {
		reported string
		wantHit  bool
		wantText string
	}{
		{"MIT License", true, mitText},
		{"mit", true, mitText},
		{"Apache License 2.0", true, apacheText},
		{"GNU General Public License v3.0", true, gplText},
		{`BSD 3-Clause "New" or "Revised" License`, true, bsdText},
		{"Some Custom License", false, ""},
		{"", false, ""},
	}
	for _, tt := range tests {
		text, ok := MatchLicensePreset(tt.reported)
		if ok != tt.wantHit {
			t.Errorf("MatchLicensePreset(%q) hit = %v, want %v", tt.reported, ok, tt.wantHit)
			continue
		}
		if ok && text != tt.wantText {
			t.Errorf("MatchLicensePreset(%q) wrong preset text", tt.reported)
		}
	}
}

func TestHostPatchDoesNotTouchLicenseWithoutMatch(t *testing.T) {
	rec := NewProjectRecord()
	before := rec.License
	HostPatch(SourceRepoInfo{Name: "x", LicenseName: "Some Custom License"}).Apply(&rec)
	if rec.License != before {
		t.Fatal("unrecognized license name must leave the license field alone")
	}
}

func TestDraftPatchAbsentFieldsKeepValues(t *testing.T) {
	rec := ProjectRecord{Overview: "mine", Installation: "my steps"}
	DraftPatch(DraftSections{}).Apply(&rec)
	if rec.Overview != "mine" || rec.Installation != "my steps" {
		t.Fatalf("absent draft fields overwrote record: %+v", rec)
	}

	inst := "1. go install"
	DraftPatch(DraftSections{Installation: &inst}).Apply(&rec)
	if rec.Installation != inst {
		t.Fatalf("draft installation must overwrite: %q", rec.Installation)
	}
}

func TestFallbackPatchFillsOnlyEmpty(t *testing.T) {
	info := SourceRepoInfo{Name: "widget", CloneURL: "https://github.com/alice/widget.git"}

	rec := ProjectRecord{Overview: "mine"}
	FallbackPatch(info).ApplyIfEmpty(&rec)
	if rec.Overview != "mine" {
		t.Fatalf("fallback overwrote overview: %q", rec.Overview)
	}
	if !strings.Contains(rec.Installation, "git clone https://github.com/alice/widget.git") {
		t.Fatalf("fallback installation template missing: %q", rec.Installation)
	}

	rec = ProjectRecord{}
	FallbackPatch(info).ApplyIfEmpty(&rec)
	if !strings.Contains(rec.Overview, "widget") {
		t.Fatalf("fallback overview missing: %q", rec.Overview)
	}
}

func TestUnionDedupRemovesBaseDuplicates(t *testing.T) {
	got := unionDedup([]string{"a", "a", "b"}, []string{"b", "c"})
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("unionDedup = %v", got)
	}
}
