package game

// Theater is one of the three board lanes.
type Theater string

const (
	TheaterAir  Theater = "Air"
	TheaterLand Theater = "Land"
	TheaterSea  Theater = "Sea"
)

// Theaters lists the lanes in board order.
var Theaters = [3]Theater{TheaterAir, TheaterLand, TheaterSea}

// ValidTheater reports whether t names one of the three lanes.
func ValidTheater(t Theater) bool {
	return t == TheaterAir || t == TheaterLand || t == TheaterSea
}

// Ability names a card's special effect. The empty string means none.
type Ability string

const (
	AbilityNone      Ability = ""
	AbilityFlip      Ability = "flip"
	AbilityMove      Ability = "move"
	AbilityWeaken    Ability = "weaken"
	AbilityReinforce Ability = "reinforce"
	AbilityDisable   Ability = "disable"
	AbilityPeek      Ability = "peek"
)

// Card is an immutable card template. Hand membership and the disable
// ability both compare cards by full template equality, so the catalog
// must not contain duplicate templates.
type Card struct {
	Name     string  `json:"name"`
	Strength int     `json:"strength"`
	Theater  Theater `json:"theater"`
	Ability  Ability `json:"ability,omitempty"`
}

// PlayedCard is an independent copy of a template placed on the board.
// Mutating it (flip, weaken, reinforce) never affects the catalog or
// any other copy.
type PlayedCard struct {
	Card
	Owner int `json:"owner"`
}

// Catalog returns the 18 card templates as a fresh slice.
func Catalog() []Card {
	return []Card{
		{Name: "Fighter Jet", Strength: 6, Theater: TheaterAir},
		{Name: "Stealth Bomber", Strength: 5, Theater: TheaterAir, Ability: AbilityFlip},
		{Name: "Helicopter", Strength: 4, Theater: TheaterAir, Ability: AbilityMove},
		{Name: "Drone Swarm", Strength: 3, Theater: TheaterAir, Ability: AbilityWeaken},
		{Name: "Recon Plane", Strength: 2, Theater: TheaterAir, Ability: AbilityPeek},
		{Name: "Paratroopers", Strength: 1, Theater: TheaterAir, Ability: AbilityDisable},
		{Name: "Tank Battalion", Strength: 6, Theater: TheaterLand},
		{Name: "Artillery", Strength: 5, Theater: TheaterLand, Ability: AbilityReinforce},
		{Name: "Heavy Infantry", Strength: 4, Theater: TheaterLand},
		{Name: "Combat Engineers", Strength: 3, Theater: TheaterLand, Ability: AbilityMove},
		{Name: "Field Medics", Strength: 2, Theater: TheaterLand, Ability: AbilityReinforce},
		{Name: "Saboteurs", Strength: 1, Theater: TheaterLand, Ability: AbilityFlip},
		{Name: "Battleship", Strength: 6, Theater: TheaterSea},
		{Name: "Submarine", Strength: 5, Theater: TheaterSea, Ability: AbilityWeaken},
		{Name: "Aircraft Carrier", Strength: 4, Theater: TheaterSea, Ability: AbilityReinforce},
		{Name: "Destroyer", Strength: 3, Theater: TheaterSea, Ability: AbilityFlip},
		{Name: "Spy Ship", Strength: 2, Theater: TheaterSea, Ability: AbilityPeek},
		{Name: "Minelayers", Strength: 1, Theater: TheaterSea, Ability: AbilityDisable},
	}
}
