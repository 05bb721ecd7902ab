package domain

import "testing"

func TestParseItemRef(t *testing.T) {
	tests := []struct {
		input    string
		wantName bool
		wantID   int64
		wantStr  string
	}{
		{"190456", false, 190456, "190456"},
		{"Obsidian Combatant's Slicers", true, 0, "Obsidian Combatant's Slicers"},
		{"2h Sword", true, 0, "2h Sword"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ref := ParseItemRef(tt.input)
			if ref.IsName() != tt.wantName {
				t.Errorf("IsName() = %v, want %v", ref.IsName(), tt.wantName)
			}
			if !tt.wantName && ref.ID() != tt.wantID {
				t.Errorf("ID() = %d, want %d", ref.ID(), tt.wantID)
			}
			if ref.String() != tt.wantStr {
				t.Errorf("String() = %q, want %q", ref.String(), tt.wantStr)
			}
		})
	}
}

func TestParseRealmRef(t *testing.T) {
	if ref := ParseRealmRef("1146"); ref.IsSlug() || ref.ID() != 1146 {
		t.Errorf("ParseRealmRef(1146) = %+v, want id 1146", ref)
	}
	if ref := ParseRealmRef("area-52"); !ref.IsSlug() || ref.Slug() != "area-52" {
		t.Errorf("ParseRealmRef(area-52) = %+v, want slug", ref)
	}
}
