package ruleengine

import "strings"

// activityCategories is the curated CNAE→category lookup required by
// ACTIVITY_MISMATCH (spec §4.2). Contents are not fixed by the spec; this is
// a representative seed covering the categories government procurement most
// commonly touches. Operators extend it as new CNAE codes are observed.
var activityCategories = map[string]string{
	"6201-5": "TECHNOLOGY", "6202-3": "TECHNOLOGY", "6203-1": "TECHNOLOGY",
	"6204-0": "TECHNOLOGY", "6209-1": "TECHNOLOGY", "6311-9": "TECHNOLOGY",
	"6319-4": "TECHNOLOGY", "6399-2": "TECHNOLOGY",

	"4110-7": "CONSTRUCTION", "4120-4": "CONSTRUCTION", "4211-1": "CONSTRUCTION",
	"4212-0": "CONSTRUCTION", "4213-8": "CONSTRUCTION", "4221-9": "CONSTRUCTION",
	"4222-7": "CONSTRUCTION", "4291-0": "CONSTRUCTION", "4292-8": "CONSTRUCTION",
	"4299-5": "CONSTRUCTION",

	"4711-3": "RETAIL", "4712-1": "RETAIL", "4713-0": "RETAIL",
	"4721-1": "RETAIL", "4722-9": "RETAIL", "4731-8": "RETAIL",
	"4741-5": "RETAIL", "4742-3": "RETAIL", "4744-0": "RETAIL",

	"8610-1": "HEALTH", "8621-6": "HEALTH", "8622-4": "HEALTH",
	"8630-5": "HEALTH", "8640-2": "HEALTH", "8650-0": "HEALTH",
	"8660-7": "HEALTH", "4771-7": "HEALTH", "4773-3": "HEALTH",

	"5611-2": "FOOD_SERVICE", "5612-1": "FOOD_SERVICE",

	"8121-4": "CLEANING", "8122-2": "CLEANING",

	"8011-1": "SECURITY", "8020-0": "SECURITY",

	"7020-4": "CONSULTING", "6920-6": "CONSULTING",

	"8591-1": "EDUCATION", "8592-9": "EDUCATION", "8593-7": "EDUCATION",
}

// serviceCategories identifies which categories describe a labor/service
// offering rather than goods or construction works. Used by LOW_CAPITAL to
// pick the service-sector capital threshold.
var serviceCategories = map[string]bool{
	"TECHNOLOGY": true, "HEALTH": true, "CLEANING": true,
	"SECURITY": true, "CONSULTING": true, "EDUCATION": true, "FOOD_SERVICE": true,
}

// incompatibleCombos lists category pairs considered a clear mismatch for
// ACTIVITY_MISMATCH, rather than flagging every non-identical pair — a
// construction firm billed for IT consulting is a stronger signal than a
// general "consulting" firm billed for "education" services.
var incompatibleCombos = map[string]map[string]bool{
	"CONSTRUCTION": {"TECHNOLOGY": true, "HEALTH": true, "FOOD_SERVICE": true, "EDUCATION": true},
	"RETAIL":       {"CONSTRUCTION": true, "HEALTH": true, "SECURITY": true},
	"FOOD_SERVICE": {"CONSTRUCTION": true, "TECHNOLOGY": true, "SECURITY": true},
	"TECHNOLOGY":   {"CONSTRUCTION": true, "FOOD_SERVICE": true, "CLEANING": true},
}

// ActivityCategory resolves a CNAE code to its curated category, ok=false
// when the code is not in the lookup.
func ActivityCategory(code string) (category string, ok bool) {
	category, ok = activityCategories[code]
	return category, ok
}

// IsServiceCategory reports whether category describes a labor/service
// offering.
func IsServiceCategory(category string) bool {
	return serviceCategories[category]
}

// CategoriesIncompatible reports whether a and b are a curated mismatched
// pair, checked symmetrically.
func CategoriesIncompatible(a, b string) bool {
	if a == b {
		return false
	}
	if incompatibleCombos[a][b] {
		return true
	}
	return incompatibleCombos[b][a]
}

var objectKeywords = map[string][]string{
	"TECHNOLOGY":   {"software", "system", "it services", "computer", "network", "data processing"},
	"CONSTRUCTION": {"construction", "renovation", "paving", "civil works", "building"},
	"HEALTH":       {"medication", "hospital", "medical", "pharmac", "laboratory"},
	"FOOD_SERVICE": {"catering", "meal", "food supply", "cafeteria"},
	"CLEANING":     {"cleaning", "janitorial", "sanitation"},
	"SECURITY":     {"surveillance", "security guard", "electronic monitoring"},
	"CONSULTING":   {"consulting", "advisory", "audit"},
	"EDUCATION":    {"training", "coursework", "instruction", "capacity building"},
}

// InferContractObjectCategory infers a category from free-text contract
// subject keywords, ok=false when nothing matches.
func InferContractObjectCategory(objectText string) (category string, ok bool) {
	lower := strings.ToLower(objectText)
	for cat, keywords := range objectKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return cat, true
			}
		}
	}
	return "", false
}
