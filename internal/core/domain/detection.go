package domain

// DetectionMethod describes how a location mention was attributed to an
// article by the remote API.
type DetectionMethod string

// Available detection methods.
const (
	// DetectionDedicatedSource means the article came from an outlet
	// dedicated to that location.
	DetectionDedicatedSource DetectionMethod = "dedicated_source"

	// DetectionStandardFormat means the location appeared in a standard
	// dateline or byline format.
	DetectionStandardFormat DetectionMethod = "standard_format"

	// DetectionProximityMention means the location was mentioned near the
	// subject of the article.
	DetectionProximityMention DetectionMethod = "proximity_mention"

	// DetectionAIExtracted means the location was extracted by a model.
	DetectionAIExtracted DetectionMethod = "ai_extracted"
)

// DetectionMethods lists every recognised detection method.
var DetectionMethods = []DetectionMethod{
	DetectionDedicatedSource,
	DetectionStandardFormat,
	DetectionProximityMention,
	DetectionAIExtracted,
}

// IsValid returns true if the detection method is recognised.
func (m DetectionMethod) IsValid() bool {
	for _, known := range DetectionMethods {
		if m == known {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (m DetectionMethod) String() string {
	return string(m)
}
