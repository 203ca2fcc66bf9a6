package antoine

import (
	"testing"

	"github.com/scienceol/psat/pkg/common/code"
	"github.com/scienceol/psat/pkg/repo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "water", NormalizeName("  Water\t"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestPick(t *testing.T) {
	low := &model.AntoineCoef{Substance: "x", A: 1, TMin: 200, TMax: 300}
	overlap := &model.AntoineCoef{Substance: "x", A: 2, TMin: 250, TMax: 350}
	high := &model.AntoineCoef{Substance: "x", A: 3, TMin: 400, TMax: 500}
	// Stored out of order so the selection cannot rely on input order.
	coefs := []*model.AntoineCoef{high, overlap, low}

	cases := []struct {
		name string
		temp float64
		want float64
		err  error
	}{
		{"below every range", 199.99, 0, code.TemperatureOutOfRange},
		{"equal to lowest TMin", 200, 1, nil},
		{"only the low range", 240, 1, nil},
		{"overlap prefers lowest TMin", 275, 1, nil},
		{"equal to TMax of low range", 300, 1, nil},
		{"just past low range", 300.01, 2, nil},
		{"equal to TMax of overlap", 350, 2, nil},
		{"gap between ranges", 375, 0, code.TemperatureOutOfRange},
		{"equal to TMin of high range", 400, 3, nil},
		{"equal to TMax of high range", 500, 3, nil},
		{"above every range", 500.01, 0, code.TemperatureOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pick("x", tc.temp, coefs)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.A)
		})
	}

	assert.Same(t, high, coefs[0], "pick must not reorder the caller's slice")
}

func TestPickErrors(t *testing.T) {
	_, err := pick("nothing", 300, nil)
	assert.ErrorIs(t, err, code.SubstanceNotFound)

	_, err = pick("x", 600, []*model.AntoineCoef{
		{TMin: 400, TMax: 500},
		{TMin: 200, TMax: 300},
	})
	assert.ErrorIs(t, err, code.TemperatureOutOfRange)
	assert.Contains(t, err.Error(), "200-300 K, 400-500 K")
}
