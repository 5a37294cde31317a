package raw

// SkillTable maps skill ids to skills. Source: gamedata/excel/skill_table.json.
type SkillTable map[string]Skill

type Skill struct {
	SkillID string       `json:"skillId" validate:"required"`
	IconID  *string      `json:"iconId"`
	Hidden  bool         `json:"hidden"`
	Levels  []SkillLevel `json:"levels" validate:"min=1,dive"`
}

type SkillLevel struct {
	Name        string       `json:"name" validate:"required"`
	RangeID     *string      `json:"rangeId"`
	Description *string      `json:"description"`
	Duration    float64      `json:"duration"`
	SPData      SPData       `json:"spData"`
	Blackboard  []Blackboard `json:"blackboard" validate:"dive"`
}

type SPData struct {
	SPCost        int `json:"spCost" validate:"gte=0"`
	InitSP        int `json:"initSp" validate:"gte=0"`
	MaxChargeTime int `json:"maxChargeTime" validate:"gte=0"`
}
