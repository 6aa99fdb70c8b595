package domain

// Move is a single-stick repair: a stick leaves the glyph at Source and lands
// on the glyph at Dest. Source == Dest means the stick is moved within one
// glyph, in which case SourceCode and DestCode are the same.
type Move struct {
	Source     int        `json:"source"`
	Dest       int        `json:"dest"`
	SourceCode string     `json:"sourceCode"`
	DestCode   string     `json:"destCode"`
	Display    string     `json:"display"`
	Result     Expression `json:"-"`
}

// MoveKey deduplicates moves found during a search.
type MoveKey struct {
	Source, Dest         int
	SourceCode, DestCode string
}

func (m Move) Key() MoveKey {
	return MoveKey{Source: m.Source, Dest: m.Dest, SourceCode: m.SourceCode, DestCode: m.DestCode}
}

// Hint describes a partial solution for the client.
type Hint struct {
	Message   string    `json:"message,omitempty"`
	Positions []int     `json:"positions,omitempty"`
	Level     HintLevel `json:"level"`
}

// Puzzle is a stored matchstick statement. Either Text or Glyphs describes
// the statement; Glyphs takes precedence.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Text       string     `json:"text,omitempty"`
	Glyphs     []string   `json:"glyphs,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
