package model

// Job type codes accepted from the quote form.
const (
	JobTypeLawnCare    = "lawn-care"
	JobTypeLandscaping = "landscaping"
	JobTypeSnowRemoval = "snow-removal"
	JobTypeLeafRemoval = "leaf-removal"
)

var jobTypeLabels = map[string]string{
	JobTypeLawnCare:    "Lawn Care",
	JobTypeLandscaping: "Landscaping",
	JobTypeSnowRemoval: "Snow Removal",
	JobTypeLeafRemoval: "Leaf Removal",
}

// FormatJobType returns the display label for a job type code.
// Unknown codes are returned unchanged.
func FormatJobType(code string) string {
	if label, ok := jobTypeLabels[code]; ok {
		return label
	}
	return code
}
