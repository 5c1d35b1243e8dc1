package sqlite

import "github.com/riskibarqy/fifa-roster/internal/domain/player"

const playerTable = "tblPlayers"

type playerTableModel struct {
	ID        int64  `db:"id"`
	FirstName string `db:"firstName"`
	LastName  string `db:"lastName"`
	Nation    string `db:"nation"`
	Club      string `db:"club"`
	Position  string `db:"position"`
	Overall   int    `db:"overall"`
}

func playerToTableModel(p player.Player) playerTableModel {
	return playerTableModel{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Nation:    p.Nation,
		Club:      p.Club,
		Position:  p.Position,
		Overall:   p.Overall,
	}
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Nation:    m.Nation,
		Club:      m.Club,
		Position:  m.Position,
		Overall:   m.Overall,
	}
}
