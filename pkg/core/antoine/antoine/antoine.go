package antoine

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/scienceol/psat/pkg/common/code"
	"github.com/scienceol/psat/pkg/core/antoine"
	"github.com/scienceol/psat/pkg/middleware/logger"
	"github.com/scienceol/psat/pkg/repo"
	"github.com/scienceol/psat/pkg/repo/model"
	"gorm.io/datatypes"
)

type antoineImpl struct {
	store   repo.AntoineRepo
	pubchem repo.PubChemRepo
	cache   antoine.CacheInvalidator
}

// NewAntoine builds the coefficient service. pubchem and cache may be nil.
func NewAntoine(store repo.AntoineRepo, pubchem repo.PubChemRepo, cache antoine.CacheInvalidator) antoine.Service {
	return &antoineImpl{store: store, pubchem: pubchem, cache: cache}
}

func (a *antoineImpl) ListCoef(ctx context.Context, req *antoine.ListCoefReq) ([]*model.AntoineCoef, error) {
	coefs, err := a.store.ListAntoineCoef(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if len(coefs) == 0 {
		return nil, code.SubstanceNotFound.WithMsgf("no antoine coefficients for %q", req.Name)
	}
	return coefs, nil
}

func (a *antoineImpl) CreateCoef(ctx context.Context, req *antoine.CreateCoefReq) (*model.AntoineCoef, error) {
	if strings.TrimSpace(req.Substance) == "" {
		return nil, code.ParamErr.WithMsg("substance is empty")
	}
	if req.TMin >= req.TMax {
		return nil, code.InvalidCoefRange.WithMsgf("t_min %g must be below t_max %g", req.TMin, req.TMax)
	}

	coef := &model.AntoineCoef{
		Substance: req.Substance,
		A:         req.A,
		B:         req.B,
		C:         req.C,
		TMin:      req.TMin,
		TMax:      req.TMax,
	}
	if len(req.Reference) > 0 {
		data, err := json.Marshal(req.Reference)
		if err != nil {
			return nil, code.ParamErr.WithErr(err)
		}
		coef.Reference = datatypes.JSON(data)
	}

	if err := a.store.CreateAntoineCoef(ctx, coef); err != nil {
		return nil, err
	}

	if a.cache != nil {
		if err := a.cache.Invalidate(ctx, coef.Substance); err != nil {
			logger.Warnf(ctx, "invalidate antoine cache substance: %s err: %+v", coef.Substance, err)
		}
	}
	return coef, nil
}

func (a *antoineImpl) Compound(ctx context.Context, req *antoine.CompoundReq) (*repo.CompoundInfo, error) {
	if a.pubchem == nil {
		return nil, code.UnDefineErr.WithMsg("pubchem lookup is not configured")
	}
	return a.pubchem.GetCompound(ctx, req.Name)
}
