package ats

import (
	"slices"
	"testing"
)

func TestVariantsOf(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		want    []string // must all be present
	}{
		{"k8s expands", "K8s", []string{"k8s", "kubernetes"}},
		{"kubernetes expands", "Kubernetes", []string{"k8s", "kubernetes"}},
		{"docker expands", "docker", []string{"docker", "containers", "containerization"}},
		{"azure expands", "azure", []string{"azure", "microsoft azure"}},
		{"full name maps back", "Microsoft Azure", []string{"azure", "microsoft azure"}},
		{"dotnet family", ".NET", []string{".net", "dotnet", "asp.net"}},
		{"unknown keyword is itself", "Rust", []string{"rust"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VariantsOf(tt.keyword)
			for _, w := range tt.want {
				if !slices.Contains(got, w) {
					t.Errorf("VariantsOf(%q) = %v, missing %q", tt.keyword, got, w)
				}
			}
		})
	}
}

func TestVariantsOfAlwaysIncludesSelf(t *testing.T) {
	for _, group := range variantGroups {
		for _, member := range group {
			norm := Normalize(member)
			if !slices.Contains(VariantsOf(member), norm) {
				t.Errorf("VariantsOf(%q) does not include %q", member, norm)
			}
		}
	}
}

func TestVariantsOfSymmetric(t *testing.T) {
	// Every member of a group reaches every other member.
	for _, group := range variantGroups {
		for _, a := range group {
			got := VariantsOf(a)
			for _, b := range group {
				if !slices.Contains(got, Normalize(b)) {
					t.Errorf("VariantsOf(%q) missing group member %q", a, b)
				}
			}
		}
	}
}

func TestVariantsOfEmpty(t *testing.T) {
	if got := VariantsOf(""); got != nil {
		t.Errorf("VariantsOf(\"\") = %v, want nil", got)
	}
	if got := VariantsOf("   "); got != nil {
		t.Errorf("VariantsOf(blank) = %v, want nil", got)
	}
}
