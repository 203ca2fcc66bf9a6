package saturation

import (
	"context"

	"github.com/scienceol/psat/pkg/common/code"
	"github.com/scienceol/psat/pkg/core/saturation"
	"github.com/scienceol/psat/pkg/repo"
	"github.com/scienceol/psat/pkg/repo/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/scienceol/psat/pkg/core/saturation"

type saturationImpl struct {
	provider repo.AntoineProvider
	tracer   trace.Tracer
	calls    metric.Int64Counter
}

func NewSaturation(provider repo.AntoineProvider) saturation.Service {
	calls, err := otel.Meter(instrumentationName).Int64Counter("psat.saturation.calls",
		metric.WithDescription("saturation pressure computations by result code"))
	if err != nil {
		otel.Handle(err)
	}
	return &saturationImpl{
		provider: provider,
		tracer:   otel.Tracer(instrumentationName),
		calls:    calls,
	}
}

// GetSaturationPressure returns the vapor pressure in bar of name at
// temperature (K). Provider errors are returned untouched.
func (s *saturationImpl) GetSaturationPressure(ctx context.Context, name string, temperature float64) (float64, error) {
	p, _, err := s.compute(ctx, name, temperature)
	return p, err
}

func (s *saturationImpl) Calculate(ctx context.Context, req *saturation.PressureReq) (*saturation.PressureResp, error) {
	p, coef, err := s.compute(ctx, req.Name, *req.Temperature)
	if err != nil {
		return nil, err
	}
	return &saturation.PressureResp{
		Name:        req.Name,
		Temperature: *req.Temperature,
		Pressure:    p,
		Unit:        saturation.UnitBar,
		Coef: &saturation.CoefResp{
			A:    coef.A,
			B:    coef.B,
			C:    coef.C,
			TMin: coef.TMin,
			TMax: coef.TMax,
		},
	}, nil
}

func (s *saturationImpl) compute(ctx context.Context, name string, temperature float64) (p float64, coef *model.AntoineCoef, err error) {
	ctx, span := s.tracer.Start(ctx, "saturation.GetSaturationPressure", trace.WithAttributes(
		attribute.String("substance", name),
		attribute.Float64("temperature_k", temperature),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		if s.calls != nil {
			s.calls.Add(ctx, 1, metric.WithAttributes(attribute.Int("code", code.Of(err).Int())))
		}
		span.End()
	}()

	coef, err = s.provider.GetAntoineCoef(ctx, name, temperature)
	if err != nil {
		return 0, nil, err
	}
	p, err = saturation.Pressure(saturation.Coefficients{A: coef.A, B: coef.B, C: coef.C}, temperature)
	if err != nil {
		return 0, nil, err
	}
	span.SetAttributes(attribute.Float64("pressure_bar", p))
	return p, coef, nil
}
