package raw

// UniEquipTable holds modules. Source: gamedata/excel/uniequip_table.json.
type UniEquipTable struct {
	EquipDict map[string]UniEquip `json:"equipDict" validate:"required,dive"`
	// character id -> module ids, in display order
	CharEquip map[string][]string `json:"charEquip"`
}

type UniEquip struct {
	UniEquipID        string  `json:"uniEquipId" validate:"required"`
	UniEquipName      string  `json:"uniEquipName" validate:"required"`
	UniEquipIcon      string  `json:"uniEquipIcon"`
	UniEquipDesc      *string `json:"uniEquipDesc"`
	TypeIcon          string  `json:"typeIcon"`
	TypeName1         string  `json:"typeName1"`
	TypeName2         *string `json:"typeName2"`
	CharID            string  `json:"charId" validate:"required"`
	UnlockEvolvePhase string  `json:"unlockEvolvePhase"`
	UnlockLevel       int     `json:"unlockLevel" validate:"gte=0"`
}
