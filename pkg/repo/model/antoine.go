package model

import (
	"gorm.io/datatypes"
)

// AntoineCoef holds one Antoine parameterization of a substance:
// log10(P/bar) = A - B/(T/K + C), valid for TMin <= T <= TMax.
type AntoineCoef struct {
	BaseModel
	Substance string         `gorm:"not null;index:idx_substance_range" json:"substance"`
	A         float64        `gorm:"not null" json:"a"`
	B         float64        `gorm:"not null" json:"b"`
	C         float64        `gorm:"not null" json:"c"`
	TMin      float64        `gorm:"not null;index:idx_substance_range" json:"t_min"`
	TMax      float64        `gorm:"not null" json:"t_max"`
	Reference datatypes.JSON `json:"reference,omitempty"`
}

func (*AntoineCoef) TableName() string {
	return "antoine_coef"
}

// Covers reports whether temperature lies inside the validity range.
func (a *AntoineCoef) Covers(temperature float64) bool {
	return temperature >= a.TMin && temperature <= a.TMax
}
