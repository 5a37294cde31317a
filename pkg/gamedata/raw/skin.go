package raw

// SkinTable holds outfits. Source: gamedata/excel/skin_table.json.
type SkinTable struct {
	CharSkins map[string]Skin `json:"charSkins" validate:"required,dive"`
	// character id -> promotion phase -> default skin id
	BuildinEvolveMap map[string]map[string]string `json:"buildinEvolveMap"`
	// character id -> patch character id -> skin id
	BuildinPatchMap map[string]map[string]string `json:"buildinPatchMap"`
}

type Skin struct {
	SkinID      string      `json:"skinId" validate:"required"`
	CharID      string      `json:"charId" validate:"required"`
	IllustID    *string     `json:"illustId"`
	AvatarID    *string     `json:"avatarId"`
	PortraitID  *string     `json:"portraitId"`
	IsBuySkin   bool        `json:"isBuySkin"`
	DisplaySkin DisplaySkin `json:"displaySkin"`
}

type DisplaySkin struct {
	SkinName       *string  `json:"skinName"`
	ModelName      *string  `json:"modelName"`
	DrawerList     []string `json:"drawerList"`
	SkinGroupID    *string  `json:"skinGroupId"`
	SkinGroupName  *string  `json:"skinGroupName"`
	Content        *string  `json:"content"`
	Dialog         *string  `json:"dialog"`
	Usage          *string  `json:"usage"`
	Description    *string  `json:"description"`
	ObtainApproach *string  `json:"obtainApproach"`
}
