package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "en", Normalize("en"))
	assert.Equal(t, "hi", Normalize("hi"))
	assert.Equal(t, "hi", Normalize("  HI "))
	assert.Equal(t, "en", Normalize(""))
	assert.Equal(t, "en", Normalize("fr"))
}

func TestStrings(t *testing.T) {
	en := Strings("en")
	assert.Equal(t, "JAL SANRAKSHAN: Your Personalized Water Security Report", en.Title)
	assert.Equal(t, "Executive Summary", en.SectionExecutiveSummary)

	hi := Strings("hi")
	assert.Equal(t, "जल संरक्षण: आपकी व्यक्तिगत जल सुरक्षा रिपोर्ट", hi.Title)
	assert.NotEmpty(t, hi.DisclaimerAssumptions)

	// Unknown languages fall back to English.
	assert.Equal(t, en, Strings("de"))
}
