package antoine

import (
	"context"

	"github.com/scienceol/psat/pkg/repo"
	"github.com/scienceol/psat/pkg/repo/model"
)

type Service interface {
	ListCoef(ctx context.Context, req *ListCoefReq) ([]*model.AntoineCoef, error)
	CreateCoef(ctx context.Context, req *CreateCoefReq) (*model.AntoineCoef, error)
	Compound(ctx context.Context, req *CompoundReq) (*repo.CompoundInfo, error)
}

type ListCoefReq struct {
	Name string `form:"name" binding:"required"`
}

type CreateCoefReq struct {
	Substance string         `json:"substance" binding:"required"`
	A         float64        `json:"a"`
	B         float64        `json:"b"`
	C         float64        `json:"c"`
	TMin      float64        `json:"t_min"`
	TMax      float64        `json:"t_max"`
	Reference map[string]any `json:"reference"`
}

type CompoundReq struct {
	Name string `form:"name" binding:"required"`
}

// CacheInvalidator drops cached lookups of a substance after a write.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, name string) error
}
