package icons

import "strings"

// Ref identifies one of the glyphs a tool descriptor may use.
type Ref int

const (
	Placeholder Ref = iota
	Search
	FileText
	Robot
	FileCode
	Database
	MessageSquare
)

// Glyph is what a card or sidebar entry draws for an icon.
type Glyph struct {
	Symbol string
	Label  string
}

var glyphs = map[Ref]Glyph{
	Placeholder:   {Symbol: "◇", Label: "placeholder"},
	Search:        {Symbol: "⌕", Label: "search"},
	FileText:      {Symbol: "▤", Label: "file-text"},
	Robot:         {Symbol: "◉", Label: "robot"},
	FileCode:      {Symbol: "⟨⟩", Label: "file-code"},
	Database:      {Symbol: "⛁", Label: "database"},
	MessageSquare: {Symbol: "▢", Label: "message-square"},
}

var byName = map[string]Ref{
	"search":         Search,
	"file-text":      FileText,
	"filetext":       FileText,
	"robot":          Robot,
	"bot":            Robot,
	"file-code":      FileCode,
	"filecode":       FileCode,
	"database":       Database,
	"message-square": MessageSquare,
	"messagesquare":  MessageSquare,
	"placeholder":    Placeholder,
}

// Parse maps an icon name from a registry table to a Ref. The second result
// is false for unknown names, in which case Placeholder is returned.
func Parse(name string) (Ref, bool) {
	ref, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Placeholder, false
	}
	return ref, true
}

// Resolve returns the glyph for ref, falling back to the placeholder glyph.
func Resolve(ref Ref) Glyph {
	if g, ok := glyphs[ref]; ok {
		return g
	}
	return glyphs[Placeholder]
}

func (r Ref) String() string {
	return Resolve(r).Label
}
