package memory

import "github.com/riskibarqy/fifa-roster/internal/domain/player"

// SeedPlayers returns the default roster in insertion order.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, FirstName: "Leon", LastName: "Goretzka", Nation: "Germany", Club: "Bayern Munich", Position: "CM", Overall: 87},
		{ID: 2, FirstName: "HamidReza", LastName: "Horr", Nation: "Iran", Club: "Esteghlal", Position: "LW", Overall: 99},
		{ID: 3, FirstName: "Cristiano", LastName: "Ronaldo", Nation: "Portugal", Club: "Al Nassr", Position: "ST", Overall: 90},
		{ID: 4, FirstName: "Lionel", LastName: "Messi", Nation: "Argentine", Club: "PSG", Position: "RW", Overall: 93},
		{ID: 5, FirstName: "Kylian", LastName: "Mbappe", Nation: "France", Club: "PSG", Position: "ST", Overall: 92},
		{ID: 6, FirstName: "Karim", LastName: "Benzema", Nation: "France", Club: "Real Madrid", Position: "ST", Overall: 92},
		{ID: 7, FirstName: "Iker", LastName: "Casilas", Nation: "Spain", Club: "LEGEND", Position: "GK", Overall: 90},
		{ID: 8, FirstName: "Andrea", LastName: "Pirlo", Nation: "Italy", Club: "LEGEND", Position: "CM", Overall: 89},
		{ID: 9, FirstName: "Wayne", LastName: "Rooney", Nation: "England", Club: "LEGEND", Position: "ST", Overall: 88},
		{ID: 10, FirstName: "Abbas", LastName: "Boazzar", Nation: "Iran", Club: "Naft", Position: "CM", Overall: 70},
		{ID: 11, FirstName: "Vinicius", LastName: "Junior", Nation: "Brazil", Club: "Real Madrid", Position: "LW", Overall: 87},
		{ID: 12, FirstName: "Kevin", LastName: "De bruyne", Nation: "Belgium", Club: "Man City", Position: "CAM", Overall: 88},
		{ID: 13, FirstName: "Farhad", LastName: "Majidi", Nation: "Iran", Club: "Esteghlal", Position: "ST", Overall: 98},
		{ID: 14, FirstName: "Mehdi", LastName: "Torabi", Nation: "Iran", Club: "Long", Position: "LW", Overall: 66},
		{ID: 15, FirstName: "Vahid", LastName: "Amiri", Nation: "Iran", Club: "Long", Position: "RW", Overall: 30},
		{ID: 16, FirstName: "Luka", LastName: "Modric", Nation: "Croatia", Club: "Real Madrid", Position: "CM", Overall: 88},
		{ID: 17, FirstName: "Pablo", LastName: "Gavi", Nation: "Spain", Club: "Barcelona", Position: "CM", Overall: 83},
		{ID: 18, FirstName: "David", LastName: "Alaba", Nation: "Austria", Club: "Real Madrid", Position: "CB", Overall: 86},
		{ID: 19, FirstName: "Erling", LastName: "Halland", Nation: "Norway", Club: "Man City", Position: "ST", Overall: 90},
		{ID: 20, FirstName: "Bruno", LastName: "Fernandes", Nation: "Portugal", Club: "Man United", Position: "CAM", Overall: 88},
		{ID: 21, FirstName: "Neymar", LastName: "Jr", Nation: "Brazil", Club: "PSG", Position: "LW", Overall: 89},
		{ID: 22, FirstName: "Thomas", LastName: "Muller", Nation: "Germany", Club: "Bayern Munich", Position: "CAM", Overall: 86},
		{ID: 23, FirstName: "Naser", LastName: "Hejazi", Nation: "Iran", Club: "Esteghlal", Position: "GK", Overall: 98},
		{ID: 24, FirstName: "Mansour", LastName: "Pourheidari", Nation: "Iran", Club: "Esteghlal", Position: "RB", Overall: 98},
		{ID: 25, FirstName: "Gianluigi", LastName: "Buffon", Nation: "Italy", Club: "LEGEND", Position: "GK", Overall: 90},
		{ID: 26, FirstName: "Zinedine", LastName: "Zidane", Nation: "France", Club: "LEGEND", Position: "GK", Overall: 95},
		{ID: 27, FirstName: "Gerard", LastName: "Pique", Nation: "Spain", Club: "Shakira", Position: "CB", Overall: 84},
		{ID: 28, FirstName: "Eric", LastName: "Cantona", Nation: "France", Club: "LEGEND", Position: "ST", Overall: 92},
		{ID: 29, FirstName: "Paolo", LastName: "Maldini", Nation: "Italy", Club: "LEGEND", Position: "CB", Overall: 95},
		{ID: 30, FirstName: "Jiloyd", LastName: "Samuel", Nation: "England", Club: "Esteghlal", Position: "RB", Overall: 75},
	}
}
