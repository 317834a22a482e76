package outreach

import "strings"

type industryRule struct {
	name     string
	keywords []string
}

// Ordered so more specific trades match before broad categories.
var industryRules = []industryRule{
	{"Auto", []string{"auto", "repair", "transmission", "tire", "car", "automotive", "ford", "toyota", "lincoln", "chevrolet"}},
	{"HVAC", []string{"hvac", "heating", "cooling", "air conditioning"}},
	{"Plumbing", []string{"plumbing", "drain", "pipe", "water"}},
	{"Electrical", []string{"electric", "electrical", "electrician"}},
	{"Construction", []string{"construction", "roofing", "concrete", "paving", "landscaping", "contractor"}},
	{"Retail", []string{"retail", "antique", "gallery", "mall", "store", "shop", "boutique"}},
	{"Food", []string{"restaurant", "cafe", "coffee", "pizza", "steakhouse", "diner", "smoothie", "creamery", "bakery"}},
	{"Professional", []string{"law", "lawyer", "attorney", "cpa", "accounting", "tax", "consulting", "consultant"}},
	{"Healthcare", []string{"medical", "clinic", "dentist", "dental", "physical therapy", "chiropractic", "wellness", "health", "doctor"}},
	{"Hospitality", []string{"hotel", "motel", "inn", "resort", "venue"}},
	{"Education", []string{"school", "training", "academy", "institute", "bootcamp", "learning"}},
	{"Fitness", []string{"fitness", "gym", "yoga", "crossfit", "tennis", "aquatic", "recreation"}},
	{"Real Estate", []string{"realty", "realtor", "property", "real estate", "appraisal"}},
}

// GuessIndustry classifies a business from keywords in its name, falling
// back to a generic label.
func GuessIndustry(companyName string) string {
	lower := strings.ToLower(companyName)
	for _, rule := range industryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.name
			}
		}
	}
	return "Business"
}
