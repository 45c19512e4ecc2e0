package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunoffTable_Coefficient(t *testing.T) {
	table := DefaultRunoffTable()

	tests := []struct {
		roof RoofType
		want float64
	}{
		{RoofRCC, 0.90},
		{RoofMetal, 0.85},
		{RoofTile, 0.75},
		{RoofAsbestos, 0.65},
		{RoofOther, 0.60},
		{RoofType("thatch"), 0.60}, // unknown material maps to "other"
		{RoofType(""), 0.60},
	}

	for _, tt := range tests {
		t.Run(string(tt.roof), func(t *testing.T) {
			assert.Equal(t, tt.want, table.Coefficient(tt.roof))
		})
	}
}

func TestEngine_HarvestableLiters(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name       string
		rainfallMm float64
		areaSqM    float64
		roof       RoofType
		want       int64
	}{
		{"rcc roof", 850, 100, RoofRCC, 76500},
		{"metal roof", 1200, 200, RoofMetal, 204000},
		{"tile roof rounds", 933, 47.5, RoofTile, 33238}, // 933*47.5*0.75 = 33238.125
		{"zero area", 850, 0, RoofRCC, 0},
		{"zero rainfall", 0, 100, RoofRCC, 0},
		{"unknown material uses other coefficient", 1000, 100, RoofType("canvas"), 60000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.HarvestableLiters(tt.rainfallMm, tt.areaSqM, tt.roof))
		})
	}
}

func TestEngine_Scenarios_Band(t *testing.T) {
	e := NewEngine()

	s := e.Scenarios(1000, 120, RoofTile)

	assert.Equal(t, 700.0, s.Low.RainfallMm)
	assert.Equal(t, 1000.0, s.Actual.RainfallMm)
	assert.Equal(t, 1300.0, s.High.RainfallMm)

	// Each point runs through the same harvest formula with its own rainfall.
	assert.Equal(t, e.HarvestableLiters(700, 120, RoofTile), s.Low.HarvestableLiters)
	assert.Equal(t, e.HarvestableLiters(1000, 120, RoofTile), s.Actual.HarvestableLiters)
	assert.Equal(t, e.HarvestableLiters(1300, 120, RoofTile), s.High.HarvestableLiters)
}

func TestEngine_Scenarios_LowFloor(t *testing.T) {
	e := NewEngine()

	// 400 * 0.7 = 280, floored at 500 mm for arid climates.
	s := e.Scenarios(400, 100, RoofRCC)
	assert.Equal(t, 500.0, s.Low.RainfallMm)
	assert.Equal(t, int64(45000), s.Low.HarvestableLiters)

	// The floor can push the low bound above the actual rainfall; ordering
	// holds for any positive rainfall at or above the floor.
	s = e.Scenarios(850, 100, RoofRCC)
	assert.LessOrEqual(t, s.Low.RainfallMm, s.Actual.RainfallMm)
	assert.LessOrEqual(t, s.Actual.RainfallMm, s.High.RainfallMm)
	assert.GreaterOrEqual(t, s.Low.RainfallMm, 500.0)
}
