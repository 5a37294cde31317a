// Package raw holds the on-disk shape of each game table.
//
// Field names follow the JSON keys of the game's excel exports. Only the
// fields consumed downstream are modelled; other keys are dropped on decode.
// The validate tags are evaluated by github.com/go-playground/validator/v10.
package raw

// Blackboard is a named numeric (or string) parameter of a skill, trait or talent.
type Blackboard struct {
	Key      string  `json:"key" validate:"required"`
	Value    float64 `json:"value"`
	ValueStr *string `json:"valueStr"`
}

// UnlockCondition is the promotion phase and level at which something unlocks.
type UnlockCondition struct {
	Phase string `json:"phase" validate:"required"`
	Level int    `json:"level" validate:"gte=0"`
}

// TraitCandidate is one variant of a trait, selected by promotion and potential.
type TraitCandidate struct {
	UnlockCondition       UnlockCondition `json:"unlockCondition"`
	RequiredPotentialRank int             `json:"requiredPotentialRank" validate:"gte=0"`
	Blackboard            []Blackboard    `json:"blackboard" validate:"dive"`
	// The key is misspelled in the game data itself.
	OverrideDescription *string `json:"overrideDescripton"`
	PrefabKey           *string `json:"prefabKey"`
	RangeID             *string `json:"rangeId"`
}

// TalentCandidate is one variant of a talent.
type TalentCandidate struct {
	UnlockCondition       UnlockCondition `json:"unlockCondition"`
	RequiredPotentialRank int             `json:"requiredPotentialRank" validate:"gte=0"`
	PrefabKey             *string         `json:"prefabKey"`
	Name                  *string         `json:"name"`
	Description           *string         `json:"description"`
	RangeID               *string         `json:"rangeId"`
	Blackboard            []Blackboard    `json:"blackboard" validate:"dive"`
}
