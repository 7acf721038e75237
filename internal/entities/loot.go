package entities

// Rarity is the five-tier item rarity scale
type Rarity string

// Rarity tiers, least to most rare
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists the rarity tiers in weight-table order
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

// LootTable kinds
const (
	LootTableTreasure  = "treasure"
	LootTableRoom      = "room"
	LootTableEncounter = "encounter"
)

// LootItem is a single generated item. Value is a formatted gold-piece
// string, e.g. "120 gp".
type LootItem struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Rarity      Rarity `json:"rarity"`
	Type        string `json:"type"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// LootTable is an ordered collection of generated items. RoomID is set only
// for room-flavored tables.
type LootTable struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Type   string     `json:"type"`
	RoomID *int       `json:"room_id,omitempty"`
	Items  []LootItem `json:"items"`
}
