package entities

// CreatureGroup is one creature entry in an encounter
type CreatureGroup struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Encounter is a per-room combat encounter. At most one exists per room.
type Encounter struct {
	ID              int             `json:"id"`
	RoomID          int             `json:"room_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	ChallengeRating int             `json:"challenge_rating"`
	Creatures       []CreatureGroup `json:"creatures"`
}
