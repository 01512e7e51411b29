package domain

// Record is implemented by every native reference-data record a
// collaborator returns.
type Record interface {
	// RecordName returns the display name of the record.
	RecordName() string

	// RecordURL returns the upstream link of the record, or "".
	RecordURL() string
}

// Spell is a spell as returned by the spells collaborator.
type Spell struct {
	Name          string
	Slug          string
	Level         int
	School        string
	CastingTime   string
	Range         string
	Components    string
	Duration      string
	Description   string
	Classes       []string
	Ritual        bool
	Concentration bool
	HigherLevel   string
	Material      string
	URL           string
}

// Monster is a creature stat block.
type Monster struct {
	Name            string
	Size            string
	Type            string
	Alignment       string
	ArmorClass      int
	HitPoints       int
	HitDice         string
	ChallengeRating string
	Languages       string
	Senses          string
	Description     string
	URL             string
}

// Trait is a named racial trait.
type Trait struct {
	Name        string
	Description string
}

// Race is a playable race or subrace.
type Race struct {
	Name                 string
	Size                 string
	Speed                string
	AbilityScoreIncrease string
	Traits               []Trait
	IsSubrace            bool
	SubraceOf            string
	Description          string
	URL                  string
}

// TraitNames returns the names of the race's traits.
func (r Race) TraitNames() []string {
	names := make([]string, 0, len(r.Traits))
	for _, t := range r.Traits {
		names = append(names, t.Name)
	}
	return names
}

// Class is a character class.
type Class struct {
	Name                string
	HitDie              string
	PrimaryAbility      []string
	SavingThrows        []string
	SpellcastingAbility string
	Subclasses          []string
	Description         string
	URL                 string
}

// WeaponProperties are the boolean traits of a weapon.
type WeaponProperties struct {
	Martial   bool `json:"martial"`
	Melee     bool `json:"melee"`
	Ranged    bool `json:"ranged"`
	Finesse   bool `json:"finesse"`
	Light     bool `json:"light"`
	Heavy     bool `json:"heavy"`
	TwoHanded bool `json:"twoHanded"`
	Versatile bool `json:"versatile"`
}

// Weapon is a mundane weapon.
type Weapon struct {
	Name       string
	DamageDice string
	DamageType string
	Range      string
	Properties WeaponProperties
	URL        string
}

// Armor is a suit of armor or a shield.
type Armor struct {
	Name                      string
	Category                  string
	ACDisplay                 string
	ACBase                    int
	ACAddDexMod               bool
	GrantsStealthDisadvantage bool
	StrengthScoreRequired     int
	Document                  string
	URL                       string
}

// SourceDocument identifies the publication a record comes from.
type SourceDocument struct {
	Slug  string
	Title string
	URL   string
}

// MagicItem is a magic item.
type MagicItem struct {
	Name               string
	Type               string
	Rarity             string
	RequiresAttunement string
	Description        string
	Document           SourceDocument
	URL                string
}

// Feat is a feat.
type Feat struct {
	Name            string
	Prerequisite    string
	HasPrerequisite bool
	Benefits        []string
	Description     string
	Document        string
	URL             string
}

// Condition is a status condition.
type Condition struct {
	Name        string
	Description string
	Document    string
	URL         string
}

// Benefit is a typed benefit granted by a background.
type Benefit struct {
	Name        string
	Type        string
	Description string
}

// Background is a character background.
type Background struct {
	Name        string
	Key         string
	Benefits    []Benefit
	Description string
	Document    string
	URL         string
}

// Benefit returns the description of the first benefit of the given type.
func (b Background) Benefit(types ...string) string {
	for _, want := range types {
		for _, benefit := range b.Benefits {
			if benefit.Type == want {
				return benefit.Description
			}
		}
	}
	return ""
}

// Section is a section of rules text.
type Section struct {
	Slug        string
	Name        string
	Parent      string
	Description string
	Document    string
	URL         string
}

// SpellList is the spell list of a class.
type SpellList struct {
	Slug        string
	Name        string
	Spells      []string
	Description string
	Document    SourceDocument
	URL         string
}

// RecordName implements Record.
func (s Spell) RecordName() string { return s.Name }

// RecordURL implements Record.
func (s Spell) RecordURL() string { return s.URL }

// RecordName implements Record.
func (m Monster) RecordName() string { return m.Name }

// RecordURL implements Record.
func (m Monster) RecordURL() string { return m.URL }

// RecordName implements Record.
func (r Race) RecordName() string { return r.Name }

// RecordURL implements Record.
func (r Race) RecordURL() string { return r.URL }

// RecordName implements Record.
func (c Class) RecordName() string { return c.Name }

// RecordURL implements Record.
func (c Class) RecordURL() string { return c.URL }

// RecordName implements Record.
func (w Weapon) RecordName() string { return w.Name }

// RecordURL implements Record.
func (w Weapon) RecordURL() string { return w.URL }

// RecordName implements Record.
func (a Armor) RecordName() string { return a.Name }

// RecordURL implements Record.
func (a Armor) RecordURL() string { return a.URL }

// RecordName implements Record.
func (m MagicItem) RecordName() string { return m.Name }

// RecordURL implements Record.
func (m MagicItem) RecordURL() string { return m.URL }

// RecordName implements Record.
func (f Feat) RecordName() string { return f.Name }

// RecordURL implements Record.
func (f Feat) RecordURL() string { return f.URL }

// RecordName implements Record.
func (c Condition) RecordName() string { return c.Name }

// RecordURL implements Record.
func (c Condition) RecordURL() string { return c.URL }

// RecordName implements Record.
func (b Background) RecordName() string { return b.Name }

// RecordURL implements Record.
func (b Background) RecordURL() string { return b.URL }

// RecordName implements Record.
func (s Section) RecordName() string { return s.Name }

// RecordURL implements Record.
func (s Section) RecordURL() string { return s.URL }

// RecordName implements Record.
func (l SpellList) RecordName() string { return l.Name }

// RecordURL implements Record.
func (l SpellList) RecordURL() string { return l.URL }
