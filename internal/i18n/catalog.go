// Package i18n holds the bilingual string catalog for rendered reports.
// Only report chrome is translated; computed figures and structure
// specifications render identically in every language.
package i18n

import "strings"

const (
	LangEnglish = "en"
	LangHindi   = "hi"
)

// ReportStrings is the full set of translatable report chrome.
type ReportStrings struct {
	Title    string
	Subtitle string

	SectionExecutiveSummary    string
	SectionSiteAssessment      string
	SectionHarvestingPotential string
	SectionHydroProfile        string
	SectionStructure           string
	SectionLimitations         string

	DisclaimerDataSource  string
	DisclaimerValidation  string
	DisclaimerAssumptions string
}

var catalog = map[string]ReportStrings{
	LangEnglish: {
		Title:    "JAL SANRAKSHAN: Your Personalized Water Security Report",
		Subtitle: "Empowering You to Harvest Every Drop",

		SectionExecutiveSummary:    "Executive Summary",
		SectionSiteAssessment:      "Site Assessment",
		SectionHarvestingPotential: "Harvesting Potential",
		SectionHydroProfile:        "Hydrogeological Profile",
		SectionStructure:           "Recommended Structure & Design",
		SectionLimitations:         "Limitations & Assumptions",

		DisclaimerDataSource:  "Data is based on open-source rainfall APIs and user-provided values.",
		DisclaimerValidation:  "Ground validation by qualified professionals is recommended.",
		DisclaimerAssumptions: "Calculations assume typical conditions and may vary based on local factors.",
	},
	LangHindi: {
		Title:    "जल संरक्षण: आपकी व्यक्तिगत जल सुरक्षा रिपोर्ट",
		Subtitle: "हर बूंद का संरक्षण सशक्त बनाए",

		SectionExecutiveSummary:    "कार्यकारी सारांश",
		SectionSiteAssessment:      "साइट मूल्यांकन",
		SectionHarvestingPotential: "जल संचयन क्षमता",
		SectionHydroProfile:        "हाइड्रोजियोलॉजिकल प्रोफ़ाइल",
		SectionStructure:           "अनुशंसित संरचना और डिज़ाइन",
		SectionLimitations:         "सीमाएं और मान्यताएं",

		DisclaimerDataSource:  "डेटा ओपन-सोर्स वर्षा API और उपयोगकर्ता-प्रदत्त मूल्यों पर आधारित है।",
		DisclaimerValidation:  "योग्य पेशेवरों द्वारा भूमि सत्यापन की सिफारिश की जाती है।",
		DisclaimerAssumptions: "गणनाएं सामान्य परिस्थितियों पर आधारित हैं और स्थानीय कारकों के आधार पर भिन्न हो सकती हैं।",
	},
}

// Normalize maps a requested language code onto a supported one. Unknown or
// empty codes fall back to English rather than erroring, so a bad query
// parameter never blocks a report.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := catalog[lang]; ok {
		return lang
	}
	return LangEnglish
}

// Strings returns the report chrome for a language, falling back to English.
func Strings(lang string) ReportStrings {
	return catalog[Normalize(lang)]
}

// Supported lists the language codes the catalog carries.
func Supported() []string {
	return []string{LangEnglish, LangHindi}
}
