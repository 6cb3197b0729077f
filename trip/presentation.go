package trip

// Display metadata lookups. These mirror the frontend's icon and color
// scheme; every function is total, with an explicit default arm.

const defaultColor = "#4ecdc4"

var activityIcons = map[IconKind]string{
	IconFood:      "utensils",
	IconCamera:    "camera",
	IconCoffee:    "coffee",
	IconTransport: "train",
	IconDefault:   "map-pin",
}

var activityColors = map[IconKind]string{
	IconFood:      "#ff6b6b",
	IconCamera:    "#f472b6",
	IconCoffee:    "#fb923c",
	IconTransport: "#5b8def",
	IconDefault:   defaultColor,
}

var placeCategoryColors = map[string]string{
	"Heritage":  "#ff6b6b",
	"Shopping":  "#ffe66d",
	"Spiritual": "#a78bfa",
	"Nature":    "#4ade80",
	"Food":      "#fb923c",
	"Culture":   defaultColor,
}

// ActivityIcon returns the icon id for an activity kind.
func ActivityIcon(kind IconKind) string {
	if icon, ok := activityIcons[kind]; ok {
		return icon
	}
	return activityIcons[IconDefault]
}

// ActivityColor returns the accent color for an activity kind.
func ActivityColor(kind IconKind) string {
	if color, ok := activityColors[kind]; ok {
		return color
	}
	return defaultColor
}

// PlaceCategoryColor returns the badge color for a place category.
func PlaceCategoryColor(category string) string {
	if color, ok := placeCategoryColors[category]; ok {
		return color
	}
	return defaultColor
}
