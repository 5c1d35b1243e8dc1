package httpapi

import "github.com/riskibarqy/fifa-roster/internal/domain/player"

type playerDTO struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Nation    string `json:"nation"`
	Club      string `json:"club"`
	Position  string `json:"position"`
	Overall   int    `json:"overall"`
}

type rosterSummaryDTO struct {
	Players int `json:"players"`
}

type rowsAffectedDTO struct {
	RowsAffected int64 `json:"rows_affected"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Nation:    p.Nation,
		Club:      p.Club,
		Position:  p.Position,
		Overall:   p.Overall,
	}
}
