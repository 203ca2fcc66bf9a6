package saturation

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/scienceol/psat/pkg/common/code"
	"github.com/scienceol/psat/pkg/core/saturation"
	"github.com/scienceol/psat/pkg/repo/antoine"
	"github.com/scienceol/psat/pkg/repo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	coef *model.AntoineCoef
	err  error

	gotName string
	gotTemp float64
}

func (s *stubProvider) GetAntoineCoef(_ context.Context, name string, temperature float64) (*model.AntoineCoef, error) {
	s.gotName, s.gotTemp = name, temperature
	return s.coef, s.err
}

func TestGetSaturationPressureWaterExample(t *testing.T) {
	p := &stubProvider{coef: &model.AntoineCoef{A: 8.07131, B: 1730.63, C: 233.426}}
	svc := NewSaturation(p)

	got, err := svc.GetSaturationPressure(context.Background(), "water", 373.15)
	require.NoError(t, err)
	assert.InEpsilon(t, math.Pow(10, 8.07131-1730.63/(373.15+233.426)), got, 1e-12)
	assert.Equal(t, "water", p.gotName)
	assert.Equal(t, 373.15, p.gotTemp)
}

func TestGetSaturationPressurePropagatesProviderError(t *testing.T) {
	sentinel := errors.New("antoine: unknown substance")
	svc := NewSaturation(&stubProvider{err: sentinel})

	got, err := svc.GetSaturationPressure(context.Background(), "unobtainium", 300)
	assert.Same(t, sentinel, err)
	assert.Zero(t, got)

	coded := code.TemperatureOutOfRange.WithMsg("too hot")
	svc = NewSaturation(&stubProvider{err: coded})
	_, err = svc.GetSaturationPressure(context.Background(), "water", 5000)
	assert.Same(t, coded, err)
}

func TestGetSaturationPressureDomainError(t *testing.T) {
	svc := NewSaturation(&stubProvider{coef: &model.AntoineCoef{A: 4, B: 1000, C: -250}})
	_, err := svc.GetSaturationPressure(context.Background(), "x", 250)
	assert.ErrorIs(t, err, code.AntoineDomainErr)
}

func TestCalculateWithBuiltin(t *testing.T) {
	svc := NewSaturation(antoine.NewBuiltin())
	temp := 351.44
	resp, err := svc.Calculate(context.Background(), &saturation.PressureReq{Name: "Ethanol", Temperature: &temp})
	require.NoError(t, err)

	assert.Equal(t, saturation.UnitBar, resp.Unit)
	assert.Equal(t, "Ethanol", resp.Name)
	assert.InDelta(t, 1.0, resp.Pressure, 0.03)
	assert.Equal(t, 5.37229, resp.Coef.A)
	assert.Equal(t, 292.77, resp.Coef.TMin)
}

func TestCalculateBuiltinErrors(t *testing.T) {
	svc := NewSaturation(antoine.NewBuiltin())

	_, err := svc.GetSaturationPressure(context.Background(), "", 300)
	assert.ErrorIs(t, err, code.SubstanceNotFound)

	_, err = svc.GetSaturationPressure(context.Background(), "water", 376)
	assert.ErrorIs(t, err, code.TemperatureOutOfRange)
}

func TestGetSaturationPressureConcurrent(t *testing.T) {
	svc := NewSaturation(antoine.NewBuiltin())
	want, err := svc.GetSaturationPressure(context.Background(), "toluene", 350)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := svc.GetSaturationPressure(context.Background(), "toluene", 350)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
