package icons

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		want   Ref
		wantOK bool
	}{
		{"search", Search, true},
		{"Search", Search, true},
		{" file-text ", FileText, true},
		{"bot", Robot, true},
		{"file-code", FileCode, true},
		{"database", Database, true},
		{"message-square", MessageSquare, true},
		{"rocket", Placeholder, false},
		{"", Placeholder, false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Parse(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestResolve_UnknownRefYieldsPlaceholder(t *testing.T) {
	got := Resolve(Ref(999))
	if got != Resolve(Placeholder) {
		t.Errorf("expected placeholder glyph, got %+v", got)
	}
	if got.Symbol == "" {
		t.Error("placeholder glyph must have a symbol")
	}
}

func TestResolve_KnownRefsAreDistinct(t *testing.T) {
	seen := map[string]Ref{}
	for _, ref := range []Ref{Placeholder, Search, FileText, Robot, FileCode, Database, MessageSquare} {
		g := Resolve(ref)
		if prev, dup := seen[g.Label]; dup {
			t.Errorf("label %q shared by %d and %d", g.Label, prev, ref)
		}
		seen[g.Label] = ref
	}
}
