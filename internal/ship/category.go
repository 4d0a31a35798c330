package ship

import "strings"

// Category classifies a component slot by function. The set is closed;
// content files naming an unknown category are rejected at load time.
type Category string

// Component slot categories.
const (
	CategoryPowerPlant       Category = "PowerPlant"
	CategoryMainThruster     Category = "MainThruster"
	CategoryManeuverThruster Category = "ManeuverThruster"
	CategoryShield           Category = "Shield"
	CategoryWeapon           Category = "Weapon"
	CategorySensor           Category = "Sensor"
	CategorySupport          Category = "Support"
	CategoryCargo            Category = "Cargo"
	CategoryCrewQuarters     Category = "CrewQuarters"
	CategoryIndustrial       Category = "Industrial"
	CategoryHangar           Category = "Hangar"
	CategoryComputer         Category = "Computer"
)

// AllCategories lists every category in canonical declaration order. The
// serializer and subsystem summaries iterate in this order.
var AllCategories = []Category{
	CategoryPowerPlant,
	CategoryMainThruster,
	CategoryManeuverThruster,
	CategoryShield,
	CategoryWeapon,
	CategorySensor,
	CategorySupport,
	CategoryCargo,
	CategoryCrewQuarters,
	CategoryIndustrial,
	CategoryHangar,
	CategoryComputer,
}

var categorySet = func() map[Category]struct{} {
	m := make(map[Category]struct{}, len(AllCategories))
	for _, c := range AllCategories {
		m[c] = struct{}{}
	}
	return m
}()

// Valid reports whether c is one of the closed set of categories.
func (c Category) Valid() bool {
	_, ok := categorySet[c]
	return ok
}

// IsAvionics reports whether components of this category count toward the
// avionics module total (sensor and computer suites).
func (c Category) IsAvionics() bool {
	return c == CategorySensor || c == CategoryComputer
}

// IsThruster reports whether the category contributes thrust.
func (c Category) IsThruster() bool {
	return c == CategoryMainThruster || c == CategoryManeuverThruster
}

// ParseCategory returns the Category for its canonical string form.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}

// ParseCategoryFold matches s against the known categories ignoring case.
// Class catalog entries accept "powerplant"; component and hull files go
// through the strict ParseCategory.
func ParseCategoryFold(s string) (Category, bool) {
	for _, c := range AllCategories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}
