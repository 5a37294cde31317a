package raw

// RangeTable maps range ids ("3-1") to attack ranges. It is identical
// across locales. Source: gamedata/excel/range_table.json.
type RangeTable map[string]Range

type Range struct {
	ID        string `json:"id" validate:"required"`
	Direction int    `json:"direction" validate:"gte=0"`
	Grids     []Grid `json:"grids" validate:"dive"`
}

// Grid is a tile offset relative to the unit, which sits at row 0, col 0.
type Grid struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
