package antoine

import (
	"context"

	"github.com/scienceol/psat/pkg/common/code"
	"github.com/scienceol/psat/pkg/middleware/db"
	"github.com/scienceol/psat/pkg/middleware/logger"
	"github.com/scienceol/psat/pkg/repo"
	"github.com/scienceol/psat/pkg/repo/model"
)

type antoineImpl struct {
	*db.Datastore
}

func NewAntoineImpl() repo.AntoineRepo {
	return &antoineImpl{Datastore: db.DB()}
}

func NewAntoineImplWith(ds *db.Datastore) repo.AntoineRepo {
	return &antoineImpl{Datastore: ds}
}

func (a *antoineImpl) GetAntoineCoef(ctx context.Context, name string, temperature float64) (*model.AntoineCoef, error) {
	coefs, err := a.ListAntoineCoef(ctx, name)
	if err != nil {
		return nil, err
	}
	return pick(name, temperature, coefs)
}

func (a *antoineImpl) ListAntoineCoef(ctx context.Context, name string) ([]*model.AntoineCoef, error) {
	var coefs []*model.AntoineCoef
	if err := a.DBWithContext(ctx).
		Where("substance = ?", NormalizeName(name)).
		Order("t_min ASC").
		Find(&coefs).Error; err != nil {
		logger.Errorf(ctx, "ListAntoineCoef name: %s err: %+v", name, err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return coefs, nil
}

func (a *antoineImpl) CreateAntoineCoef(ctx context.Context, coef *model.AntoineCoef) error {
	coef.Substance = NormalizeName(coef.Substance)
	if err := a.DBWithContext(ctx).Create(coef).Error; err != nil {
		logger.Errorf(ctx, "CreateAntoineCoef err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (a *antoineImpl) BatchCreateAntoineCoef(ctx context.Context, coefs []*model.AntoineCoef) error {
	if len(coefs) == 0 {
		return nil
	}
	for _, c := range coefs {
		c.Substance = NormalizeName(c.Substance)
	}
	if err := a.DBWithContext(ctx).Create(&coefs).Error; err != nil {
		logger.Errorf(ctx, "BatchCreateAntoineCoef err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}
