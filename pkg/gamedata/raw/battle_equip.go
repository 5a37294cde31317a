package raw

// BattleEquipTable maps module ids to their in-battle effects per level.
// Source: gamedata/excel/battle_equip_table.json.
type BattleEquipTable map[string]BattleEquip

type BattleEquip struct {
	Phases []BattleEquipPhase `json:"phases" validate:"min=1,dive"`
}

type BattleEquipPhase struct {
	EquipLevel          int               `json:"equipLevel" validate:"gte=1"`
	Parts               []BattleEquipPart `json:"parts" validate:"dive"`
	AttributeBlackboard []Blackboard      `json:"attributeBlackboard" validate:"dive"`
	// token id -> attribute changes applied to that token
	TokenAttributeBlackboard map[string][]Blackboard `json:"tokenAttributeBlackboard"`
}

type BattleEquipPart struct {
	ResKey                        *string          `json:"resKey"`
	Target                        string           `json:"target" validate:"required"`
	IsToken                       bool             `json:"isToken"`
	AddOrOverrideTalentDataBundle TalentDataBundle `json:"addOrOverrideTalentDataBundle"`
	OverrideTraitDataBundle       TraitDataBundle  `json:"overrideTraitDataBundle"`
}

type TalentDataBundle struct {
	Candidates []TalentCandidate `json:"candidates" validate:"dive"`
}

type TraitDataBundle struct {
	Candidates []TraitCandidate `json:"candidates" validate:"dive"`
}
