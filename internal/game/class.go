package game

// Class is a character class as stored in the client's saved data.
type Class int

// Class values match the client's numeric class ids.
const (
	ClassUnknown Class = iota
	ClassWarrior
	ClassPaladin
	ClassHunter
	ClassRogue
	ClassPriest
	ClassDeathKnight
	ClassShaman
	ClassMage
	ClassWarlock
	ClassMonk
	ClassDruid
	ClassDemonHunter
	ClassEvoker
)

var classNames = map[Class]string{
	ClassUnknown:     "Unknown",
	ClassWarrior:     "Warrior",
	ClassPaladin:     "Paladin",
	ClassHunter:      "Hunter",
	ClassRogue:       "Rogue",
	ClassPriest:      "Priest",
	ClassDeathKnight: "Death Knight",
	ClassShaman:      "Shaman",
	ClassMage:        "Mage",
	ClassWarlock:     "Warlock",
	ClassMonk:        "Monk",
	ClassDruid:       "Druid",
	ClassDemonHunter: "Demon Hunter",
	ClassEvoker:      "Evoker",
}

// ClassFromID converts a raw numeric class id into a Class. Ids outside the
// known range come back as ClassUnknown rather than failing.
func ClassFromID(id int) Class {
	c := Class(id)
	if _, ok := classNames[c]; !ok || c == ClassUnknown {
		return ClassUnknown
	}
	return c
}

// String returns the display name for the class.
func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return classNames[ClassUnknown]
}
