package diff

import (
	"testing"

	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
)

func TestPatchRoundTrip(t *testing.T) {
	before := Texts([]domain.ElementText{
		{Element: "Title", Text: "Monticello"},
	})
	after := Texts([]domain.ElementText{
		{Element: "Title", Text: "Monticello, west front"},
		{Element: "Creator", Text: "Jefferson, Thomas"},
	})

	if after != "Title: Monticello, west front\nCreator: Jefferson, Thomas\n" {
		t.Errorf("unexpected serialization %q", after)
	}

	patch := FindPatches(before, after)
	if patch == "" {
		t.Fatal("expected a patch")
	}

	result, ok := apply(patch, before)
	if !ok || result != after {
		t.Errorf("expected %q, got %q (applied: %v)", after, result, ok)
	}

	if FindPatches(after, after) != "" {
		t.Error("expected an empty patch for identical texts")
	}
}

func apply(patch, text string) (string, bool) {
	patches, err := dmp.PatchFromText(patch)
	if err != nil {
		return text, false
	}
	result, applied := dmp.PatchApply(patches, text)
	for _, ok := range applied {
		if !ok {
			return result, false
		}
	}
	return result, true
}
