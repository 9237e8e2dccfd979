package languages

import "testing"

func TestDescribe_KnownCodes(t *testing.T) {
	got := Describe([]string{"en", "vi", "fr"})

	want := []Language{
		{Code: "en", Name: "English"},
		{Code: "vi", Name: "Vietnamese"},
		{Code: "fr", Name: "French"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d languages, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestDescribe_UnparsableCodeKeepsCode(t *testing.T) {
	got := Describe([]string{"auto"})

	if len(got) != 1 {
		t.Fatalf("expected 1 language, got %d", len(got))
	}
	if got[0].Name != "auto" {
		t.Errorf("expected name 'auto', got %q", got[0].Name)
	}
}

func TestDescribe_Empty(t *testing.T) {
	got := Describe(nil)

	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}
