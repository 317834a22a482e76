package scoring

// DefaultExcludeKeywords lists obvious non-targets: national brands, banks,
// government terms, and companies that hire in-house instead of contracting.
// Deployments override the list through configuration.
func DefaultExcludeKeywords() []string {
	return []string{
		"verizon", "at&t", "tmobile", "t-mobile",
		"google", "amazon", "microsoft", "apple", "facebook", "meta",
		"dell", "hp", "lenovo", "cisco", "ibm",
		"fortune 500", "multinational", "nasdaq", "nyse",
		"bank", "bank of", "capital one", "chase", "wells fargo",
		"mcdonalds", "walmart", "target", "costco",
		"federal", "government", "military", "defense",
		"tesla", "uber", "lyft", "airbnb",
	}
}
