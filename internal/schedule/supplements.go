package schedule

// Supplement is the static content behind a task's info reference.
type Supplement struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Dosage      string `json:"dosage"`
}

var supplements = map[string]Supplement{
	"zma": {
		Key:         "zma",
		Name:        "ZMA",
		Description: "Zinc, magnesium and vitamin B6. Supports recovery, sleep quality and hormone balance.",
		Dosage:      "3 capsules in the morning",
	},
	"collagen": {
		Key:         "collagen",
		Name:        "Collagen",
		Description: "Structural protein for skin, joints and ligaments.",
		Dosage:      "1 scoop in the morning",
	},
	"vitamin-c": {
		Key:         "vitamin-c",
		Name:        "Vitamin C",
		Description: "Antioxidant, needed for collagen synthesis and immune function.",
		Dosage:      "1 tablet in the morning",
	},
	"apple-vinegar": {
		Key:         "apple-vinegar",
		Name:        "Apple cider vinegar",
		Description: "Taken before meals to soften the post-meal glucose spike.",
		Dosage:      "1 capsule 15 minutes before lunch and dinner",
	},
	"berberin": {
		Key:         "berberin",
		Name:        "Berberine",
		Description: "Plant alkaloid that supports insulin sensitivity.",
		Dosage:      "1 capsule 15 minutes before lunch and dinner",
	},
	"omega-3": {
		Key:         "omega-3",
		Name:        "Omega-3",
		Description: "EPA and DHA fatty acids for the heart, brain and inflammation control.",
		Dosage:      "4 capsules with lunch",
	},
	"d3-k2": {
		Key:         "d3-k2",
		Name:        "Vitamin D3 + K2",
		Description: "D3 for bones and immunity, K2 directs calcium to the bones.",
		Dosage:      "As scheduled by the coach, with a fatty meal",
	},
	"women-complex": {
		Key:         "women-complex",
		Name:        "Women's complex",
		Description: "Multivitamin and mineral complex for women.",
		Dosage:      "3 capsules with lunch",
	},
	"fat-burner": {
		Key:         "fat-burner",
		Name:        "Fat burner",
		Description: "Evening formula supporting fat metabolism during sleep.",
		Dosage:      "2 capsules at 21:00",
	},
}

// LookupSupplement returns the content for an info key.
func LookupSupplement(key string) (Supplement, bool) {
	s, ok := supplements[key]
	return s, ok
}
