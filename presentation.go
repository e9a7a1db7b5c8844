package emotion

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Display tables used by callers that render a result. They are not part of
// scoring.
var (
	categoryColors = map[Category]string{
		Joy:       "warning",
		Sadness:   "info",
		Anger:     "danger",
		Fear:      "secondary",
		Surprise:  "primary",
		Love:      "danger",
		Hope:      "success",
		Gratitude: "success",
	}
	categoryHexColors = map[Category]string{
		Joy:       "#ffc107",
		Sadness:   "#0dcaf0",
		Anger:     "#dc3545",
		Fear:      "#6c757d",
		Surprise:  "#0d6efd",
		Love:      "#e91e63",
		Hope:      "#198754",
		Gratitude: "#20c997",
	}
	statusLabels = map[Category]string{
		Joy:       "Joyful & Happy",
		Sadness:   "Feeling Sad",
		Anger:     "Feeling Angry",
		Fear:      "Anxious & Worried",
		Surprise:  "Surprised",
		Love:      "Feeling Loved",
		Hope:      "Hopeful & Optimistic",
		Gratitude: "Grateful & Thankful",
	}
)

const (
	defaultColor    = "secondary"
	defaultHexColor = "#6c757d"
	neutralStatus   = "Neutral Mood"
)

// Title returns the category name with its first letter capitalized.
func (c Category) Title() string {
	return cases.Title(language.English).String(string(c))
}

// Color returns the badge color class for c.
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return defaultColor
}

// HexColor returns the chart color for c.
func (c Category) HexColor() string {
	if color, ok := categoryHexColors[c]; ok {
		return color
	}
	return defaultHexColor
}

// StatusLabel returns the mood status text shown for a dominant category.
func StatusLabel(c Category) string {
	if label, ok := statusLabels[c]; ok {
		return label
	}
	return neutralStatus
}
