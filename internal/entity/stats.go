package entity

// Stats is the read-only status snapshot of the server.
type Stats struct {
	ActiveGames  int           `json:"activeGames"`
	TotalPlayers int           `json:"totalPlayers"`
	Rooms        []RoomSummary `json:"rooms"`
}

type RoomSummary struct {
	ID             string `json:"id"`
	Players        int    `json:"players"`
	GameInProgress bool   `json:"gameInProgress"`
}
