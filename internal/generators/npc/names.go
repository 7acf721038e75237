package npc

// nameTable holds first/last name vocabularies for one race
type nameTable struct {
	first []string
	last  []string
}

var raceNames = map[string]nameTable{
	"Human": {
		first: []string{"Alaric", "Beatrice", "Cedric", "Diana", "Edmund", "Fiona", "Gareth", "Helena", "Ivan", "Juliana"},
		last:  []string{"Blackwood", "Goldsmith", "Ironforge", "Lightbringer", "Shadowmere", "Stormwind", "Thornfield", "Whitehall"},
	},
	"Elf": {
		first: []string{"Aerdrie", "Berrian", "Caelynn", "Dayereth", "Enna", "Galinndan", "Hadarai", "Immeral", "Korfel", "Lamlis"},
		last:  []string{"Amakir", "Amarthen", "Amarillis", "Helder", "Hornraven", "Helder", "Meliamne", "Nailo", "Siannodel", "Xiloscient"},
	},
	"Dwarf": {
		first: []string{"Adrik", "Baern", "Darrak", "Eberk", "Fargrim", "Gardain", "Harbek", "Kildrak", "Morgran", "Orsik"},
		last:  []string{"Battlehammer", "Brawnanvil", "Dankil", "Fireforge", "Frostbeard", "Gorunn", "Holderhek", "Ironfist", "Loderr", "Lutgehr"},
	},
	"Halfling": {
		first: []string{"Alton", "Beau", "Cade", "Eldon", "Garret", "Lyle", "Milo", "Osborn", "Roscoe", "Wellby"},
		last:  []string{"Brushgather", "Goodbarrel", "Greenbottle", "High-hill", "Hilltopple", "Leagallow", "Tealeaf", "Thorngage", "Tosscobble", "Underbough"},
	},
	"Gnome": {
		first: []string{"Alston", "Brocc", "Burgell", "Dimble", "Eldon", "Fonkin", "Gimble", "Glim", "Jebeddo", "Kellen"},
		last:  []string{"Beren", "Daergel", "Folkor", "Garrick", "Nackle", "Murnig", "Ningel", "Raulnor", "Scheppen", "Timbers"},
	},
}

// nameTableFor returns the name tables for a race, defaulting to the human
// tables for races without their own.
func nameTableFor(race string) nameTable {
	if table, ok := raceNames[race]; ok {
		return table
	}
	return raceNames["Human"]
}
