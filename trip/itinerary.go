package trip

// IconKind tags an activity with the pictogram the frontend should draw.
// Unknown wire values collapse to IconDefault so rendering never fails.
type IconKind string

const (
	IconFood      IconKind = "food"
	IconCamera    IconKind = "camera"
	IconCoffee    IconKind = "coffee"
	IconTransport IconKind = "transport"
	IconDefault   IconKind = "default"
)

// ParseIconKind never fails: anything outside the closed set is the
// default kind.
func ParseIconKind(s string) IconKind {
	switch IconKind(s) {
	case IconFood, IconCamera, IconCoffee, IconTransport:
		return IconKind(s)
	}
	return IconDefault
}

// Activity is one scheduled item within a day plan.
type Activity struct {
	Time        string   `json:"time"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        IconKind `json:"icon"`
	Duration    string   `json:"duration"`
}

// DayPlan is one day of a generated itinerary. Day indices are 1-based and
// contiguous; NormalizeDayPlans enforces that regardless of what the
// planner service sent.
type DayPlan struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

// NormalizeDayPlans reindexes plans to a contiguous 1-based sequence in the
// order the planner returned them. Itineraries are replaced wholesale, so
// the indices only need to be consistent within one response.
func NormalizeDayPlans(plans []DayPlan) []DayPlan {
	for i := range plans {
		plans[i].Day = i + 1
	}
	return plans
}
