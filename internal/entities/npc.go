package entities

// NPC is a generated non-player character with difficulty-scaled stats.
// NPCs are not bound to specific rooms; the count derives from room count.
type NPC struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Race        string  `json:"race"`
	Class       string  `json:"class"`
	Level       int     `json:"level"`
	AC          int     `json:"ac"`
	HP          int     `json:"hp"`
	CR          float64 `json:"cr"`
	Description string  `json:"description"`
	Avatar      string  `json:"avatar"`
	Personality string  `json:"personality"`
	Motivation  string  `json:"motivation"`
	Secrets     string  `json:"secrets"`
}
