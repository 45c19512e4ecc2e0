package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngine_Classify_Boundary(t *testing.T) {
	e := NewEngine()

	// Strict greater-than: exactly 150,000 L is still moderate.
	assert.Equal(t, TierModeratelySuitable, e.Classify(150_000))
	assert.Equal(t, TierHighlySuitable, e.Classify(150_001))
	assert.Equal(t, TierModeratelySuitable, e.Classify(0))
}

func TestEngine_Classify_CustomThresholds(t *testing.T) {
	e := NewEngine(WithThresholds(Thresholds{HighlySuitable: 1000}))

	assert.Equal(t, TierHighlySuitable, e.Classify(1001))
	assert.Equal(t, TierModeratelySuitable, e.Classify(1000))
}

func TestEngine_Recommend(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name    string
		purpose Purpose
		well    WellType
		want    StructureType
	}{
		{"storage without well", PurposeStorage, WellNone, StructureStorageTank},
		{"storage overrides well", PurposeStorage, WellBorewell, StructureStorageTank},
		{"recharge with borewell", PurposeRecharge, WellBorewell, StructureRechargeShaft},
		{"recharge with openwell", PurposeRecharge, WellOpenWell, StructureRechargeShaft},
		{"recharge with both", PurposeRecharge, WellBoth, StructureRechargeShaft},
		{"recharge without well", PurposeRecharge, WellNone, StructureRechargePit},
		{"mixed purpose falls through", PurposeBoth, WellBoth, StructureRechargePit},
		{"consultation falls through", PurposeConsultation, WellNone, StructureRechargePit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Recommend(tt.purpose, tt.well))
		})
	}
}
