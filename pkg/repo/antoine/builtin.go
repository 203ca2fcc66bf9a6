package antoine

import (
	"context"
	"fmt"

	"github.com/alphadose/haxmap"
	"github.com/scienceol/psat/pkg/repo/model"
)

// Reference coefficients in bar and Kelvin, from the NIST Chemistry WebBook.
var referenceTable = []model.AntoineCoef{
	{Substance: "water", A: 4.6543, B: 1435.264, C: -64.848, TMin: 255.9, TMax: 373.0},
	{Substance: "water", A: 3.55959, B: 643.748, C: -198.043, TMin: 379.0, TMax: 573.0},
	{Substance: "ethanol", A: 5.37229, B: 1670.409, C: -40.191, TMin: 292.77, TMax: 366.63},
	{Substance: "methanol", A: 5.20409, B: 1581.341, C: -33.50, TMin: 288.1, TMax: 356.83},
	{Substance: "benzene", A: 4.01814, B: 1203.835, C: -53.226, TMin: 287.7, TMax: 354.07},
	{Substance: "toluene", A: 4.07827, B: 1343.943, C: -53.773, TMin: 308.52, TMax: 384.66},
	{Substance: "acetone", A: 4.42448, B: 1312.253, C: -32.445, TMin: 259.16, TMax: 507.60},
}

// Builtin serves the reference table from memory.
type Builtin struct {
	table *haxmap.Map[string, []*model.AntoineCoef]
}

func NewBuiltin() *Builtin {
	b := &Builtin{table: haxmap.New[string, []*model.AntoineCoef]()}
	for i := range referenceTable {
		c := referenceTable[i]
		key := NormalizeName(c.Substance)
		list, _ := b.table.Get(key)
		b.table.Set(key, append(list, &c))
	}
	return b
}

func (b *Builtin) GetAntoineCoef(_ context.Context, name string, temperature float64) (*model.AntoineCoef, error) {
	list, _ := b.table.Get(NormalizeName(name))
	c, err := pick(name, temperature, list)
	if err != nil {
		return nil, err
	}
	out := *c
	return &out, nil
}

func (b *Builtin) ListAntoineCoef(_ context.Context, name string) ([]*model.AntoineCoef, error) {
	list, _ := b.table.Get(NormalizeName(name))
	out := make([]*model.AntoineCoef, 0, len(list))
	for _, c := range list {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// All returns a copy of every reference record, used to seed a database.
func (b *Builtin) All() []*model.AntoineCoef {
	out := make([]*model.AntoineCoef, 0, len(referenceTable))
	for i := range referenceTable {
		c := referenceTable[i]
		out = append(out, &c)
	}
	return out
}

func formatRange(c *model.AntoineCoef) string {
	return fmt.Sprintf("%g-%g K", c.TMin, c.TMax)
}
