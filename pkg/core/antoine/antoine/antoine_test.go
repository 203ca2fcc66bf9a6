package antoine

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/scienceol/psat/pkg/common/code"
	"github.com/scienceol/psat/pkg/core/antoine"
	"github.com/scienceol/psat/pkg/repo"
	repoAntoine "github.com/scienceol/psat/pkg/repo/antoine"
	"github.com/scienceol/psat/pkg/repo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	*repoAntoine.Builtin
	created   []*model.AntoineCoef
	createErr error
}

func (m *memStore) CreateAntoineCoef(_ context.Context, coef *model.AntoineCoef) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, coef)
	return nil
}

func (m *memStore) BatchCreateAntoineCoef(ctx context.Context, coefs []*model.AntoineCoef) error {
	for _, c := range coefs {
		if err := m.CreateAntoineCoef(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

type recordingInvalidator struct {
	names []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, name string) error {
	r.names = append(r.names, name)
	return nil
}

type fakePubChem struct{}

func (fakePubChem) GetCompound(_ context.Context, name string) (*repo.CompoundInfo, error) {
	if name == "water" {
		return &repo.CompoundInfo{Name: "Water", MolecularFormula: "H2O"}, nil
	}
	return nil, code.RecordNotFound
}

func TestListCoef(t *testing.T) {
	svc := NewAntoine(&memStore{Builtin: repoAntoine.NewBuiltin()}, nil, nil)
	ctx := context.Background()

	coefs, err := svc.ListCoef(ctx, &antoine.ListCoefReq{Name: "water"})
	require.NoError(t, err)
	assert.Len(t, coefs, 2)

	_, err = svc.ListCoef(ctx, &antoine.ListCoefReq{Name: "unobtainium"})
	assert.ErrorIs(t, err, code.SubstanceNotFound)
}

func TestCreateCoef(t *testing.T) {
	store := &memStore{Builtin: repoAntoine.NewBuiltin()}
	inv := &recordingInvalidator{}
	svc := NewAntoine(store, nil, inv)

	coef, err := svc.CreateCoef(context.Background(), &antoine.CreateCoefReq{
		Substance: "Hexane",
		A:         4.00266, B: 1171.53, C: -48.784,
		TMin: 286.18, TMax: 342.69,
		Reference: map[string]any{"source": "NIST"},
	})
	require.NoError(t, err)
	require.Len(t, store.created, 1)
	assert.Equal(t, "Hexane", coef.Substance)
	assert.Equal(t, []string{"Hexane"}, inv.names)

	ref := map[string]any{}
	require.NoError(t, json.Unmarshal(coef.Reference, &ref))
	assert.Equal(t, "NIST", ref["source"])
}

func TestCreateCoefValidation(t *testing.T) {
	store := &memStore{Builtin: repoAntoine.NewBuiltin()}
	inv := &recordingInvalidator{}
	svc := NewAntoine(store, nil, inv)
	ctx := context.Background()

	_, err := svc.CreateCoef(ctx, &antoine.CreateCoefReq{Substance: "  ", TMin: 1, TMax: 2})
	assert.ErrorIs(t, err, code.ParamErr)

	_, err = svc.CreateCoef(ctx, &antoine.CreateCoefReq{Substance: "x", TMin: 300, TMax: 300})
	assert.ErrorIs(t, err, code.InvalidCoefRange)

	store.createErr = code.CreateDataErr.WithErr(errors.New("duplicate"))
	_, err = svc.CreateCoef(ctx, &antoine.CreateCoefReq{Substance: "x", TMin: 1, TMax: 2})
	assert.ErrorIs(t, err, code.CreateDataErr)

	assert.Empty(t, store.created)
	assert.Empty(t, inv.names)
}

func TestCompound(t *testing.T) {
	ctx := context.Background()

	_, err := NewAntoine(&memStore{Builtin: repoAntoine.NewBuiltin()}, nil, nil).
		Compound(ctx, &antoine.CompoundReq{Name: "water"})
	assert.ErrorIs(t, err, code.UnDefineErr)

	svc := NewAntoine(&memStore{Builtin: repoAntoine.NewBuiltin()}, fakePubChem{}, nil)
	info, err := svc.Compound(ctx, &antoine.CompoundReq{Name: "water"})
	require.NoError(t, err)
	assert.Equal(t, "H2O", info.MolecularFormula)
}
