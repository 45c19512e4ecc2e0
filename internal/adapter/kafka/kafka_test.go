package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diyakohli02/rwh-assessment-service/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	event := domain.AssessmentEvent{
		AssessmentID:           "a1b2c3",
		UserID:                 "u-9",
		Location:               "Pune, Maharashtra",
		FeasibilityTier:        domain.TierHighlySuitable,
		RecommendedStructure:   domain.StructureRechargeShaft,
		HarvestableWaterLiters: 204000,
		RainfallSource:         domain.RainfallSourceLive,
		CompletedAt:            now,
	}

	msg, err := serializeToMessage(event)
	require.NoError(t, err)

	assert.Equal(t, []byte("a1b2c3"), msg.Key)
	assert.Contains(t, string(msg.Value), `"feasibility_tier":"HIGHLY SUITABLE"`)
	assert.Contains(t, string(msg.Value), `"harvestable_water_liters":204000`)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "feasibility_tier", msg.Headers[0].Key)
	assert.Equal(t, []byte("HIGHLY SUITABLE"), msg.Headers[0].Value)
	assert.Equal(t, "completed_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)
}
