package raw

// CharacterTable maps character ids ("char_002_amiya") to operators,
// tokens and traps. Source: gamedata/excel/character_table.json.
type CharacterTable map[string]Character

type Character struct {
	Name            string            `json:"name" validate:"required"`
	Description     *string           `json:"description"`
	Appellation     string            `json:"appellation"`
	Position        string            `json:"position" validate:"oneof=MELEE RANGED ALL NONE"`
	TagList         []string          `json:"tagList"`
	IsNotObtainable bool              `json:"isNotObtainable"`
	Rarity          string            `json:"rarity" validate:"required"`
	Profession      string            `json:"profession" validate:"required"`
	SubProfessionID string            `json:"subProfessionId"`
	Trait           *CharacterTrait   `json:"trait"`
	Phases          []CharacterPhase  `json:"phases" validate:"dive"`
	Skills          []CharacterSkill  `json:"skills" validate:"dive"`
	Talents         []CharacterTalent `json:"talents" validate:"dive"`
}

type CharacterTrait struct {
	Candidates []TraitCandidate `json:"candidates" validate:"dive"`
}

type CharacterTalent struct {
	Candidates []TalentCandidate `json:"candidates" validate:"dive"`
}

// CharacterPhase is one promotion stage (elite 0..2).
type CharacterPhase struct {
	CharacterPrefabKey string  `json:"characterPrefabKey" validate:"required"`
	RangeID            *string `json:"rangeId"`
	MaxLevel           int     `json:"maxLevel" validate:"gte=1"`
}

type CharacterSkill struct {
	SkillID           *string         `json:"skillId"`
	OverridePrefabKey *string         `json:"overridePrefabKey"`
	UnlockCond        UnlockCondition `json:"unlockCond"`
}
