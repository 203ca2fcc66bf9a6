package repo

import (
	"context"

	"github.com/scienceol/psat/pkg/repo/model"
)

// AntoineProvider returns the Antoine coefficients of a substance valid at a
// temperature in Kelvin. Implementations fail with code.SubstanceNotFound or
// code.TemperatureOutOfRange.
type AntoineProvider interface {
	GetAntoineCoef(ctx context.Context, name string, temperature float64) (*model.AntoineCoef, error)
}

type AntoineRepo interface {
	AntoineProvider
	CreateAntoineCoef(ctx context.Context, coef *model.AntoineCoef) error
	BatchCreateAntoineCoef(ctx context.Context, coefs []*model.AntoineCoef) error
	ListAntoineCoef(ctx context.Context, name string) ([]*model.AntoineCoef, error)
}
