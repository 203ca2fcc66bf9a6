package saturation

import (
	"context"
)

// Service computes saturation pressures.
type Service interface {
	GetSaturationPressure(ctx context.Context, name string, temperature float64) (float64, error)
	Calculate(ctx context.Context, req *PressureReq) (*PressureResp, error)
}

type PressureReq struct {
	Name        string   `form:"name" json:"name" binding:"required"`
	Temperature *float64 `form:"temperature" json:"temperature" binding:"required"`
}

type CoefResp struct {
	A    float64 `json:"a"`
	B    float64 `json:"b"`
	C    float64 `json:"c"`
	TMin float64 `json:"t_min"`
	TMax float64 `json:"t_max"`
}

type PressureResp struct {
	Name        string    `json:"name"`
	Temperature float64   `json:"temperature"`
	Pressure    float64   `json:"pressure"`
	Unit        string    `json:"unit"`
	Coef        *CoefResp `json:"coef"`
}

const UnitBar = "bar"
