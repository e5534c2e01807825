package content

import "misterMoAPI/internal/tier"

const author = "Nikita Morachkovsky"

// Default returns the content library shipped with the app.
func Default() *Catalog {
	return NewCatalog(defaultBooks, defaultVideos, defaultDownloads, defaultPanels)
}

var defaultBooks = []Book{
	{
		ID:           "1",
		Title:        "Foundations of genetic nutrition",
		Author:       author,
		Description:  "A complete guide to personalised nutrition based on genetic data.",
		Type:         "pdf",
		PreviewPages: 3,
		TotalPages:   120,
		RequiredTier: tier.Basic,
	},
	{
		ID:           "2",
		Title:        "Metabolism and health",
		Author:       author,
		Description:  "Understanding metabolic processes to optimise health.",
		Type:         "pdf",
		PreviewPages: 5,
		TotalPages:   200,
		RequiredTier: tier.Advanced,
	},
	{
		ID:           "3",
		Title:        "Advanced nutrigenetics",
		Author:       author,
		Description:  "A professional guide to applying genetic data in practice.",
		Type:         "word",
		PreviewPages: 2,
		TotalPages:   180,
		RequiredTier: tier.Premium,
	},
}

const themeVideo = "ZU2yWlpmjNA"

var defaultVideos = []Video{
	{ID: "1", Title: "Basics of genetic health", Description: "Introduction to the system and its core principles.", YouTubeID: themeVideo, RequiredTier: tier.Basic},
	{ID: "2", Title: "Eating for your genotype", Description: "Building a personal diet from genetic data.", YouTubeID: themeVideo, RequiredTier: tier.Advanced},
	{ID: "3", Title: "Metabolism and hormones", Description: "Regulating metabolism through food and lifestyle.", YouTubeID: themeVideo, RequiredTier: tier.Advanced},
	{ID: "4", Title: "Detox", Description: "Natural ways to clear toxins.", YouTubeID: themeVideo, RequiredTier: tier.Advanced},
	{ID: "5", Title: "Sport and genetics", Description: "Choosing training load from genetic traits.", YouTubeID: themeVideo, RequiredTier: tier.Premium},
	{ID: "6", Title: "Sleep and recovery", Description: "Optimising sleep for full recovery.", YouTubeID: themeVideo, RequiredTier: tier.Premium},
	{ID: "7", Title: "Stress and psychosomatics", Description: "Managing stress through genetic predispositions.", YouTubeID: themeVideo, RequiredTier: tier.Premium},
	{ID: "8", Title: "Longevity and anti-ageing", Description: "Genetic factors of ageing and how to correct them.", YouTubeID: themeVideo, RequiredTier: tier.Premium},
}

var defaultDownloads = []Download{
	{ID: "1", Title: "Core principles checklist", Description: "PDF guide to the basics of healthy eating.", FileURL: "/downloads/checklist.pdf", RequiredTier: tier.Basic},
	{ID: "2", Title: "Glycemic index table", Description: "Detailed glycemic index table of common foods.", FileURL: "/downloads/gi-table.pdf", RequiredTier: tier.Advanced},
	{ID: "3", Title: "Healthy recipes", Description: "50 recipes for a healthy lifestyle.", FileURL: "/downloads/recipes.pdf", RequiredTier: tier.Advanced},
	{ID: "4", Title: "Personal detox plan", Description: "A 30 day detox programme.", FileURL: "/downloads/detox-plan.pdf", RequiredTier: tier.Premium},
}

var defaultPanels = []Panel{
	{ID: "schedule", Title: "Daily schedule", MinTier: tier.Basic},
	{ID: "weight", Title: "Weight", MinTier: tier.Basic},
	{ID: "water", Title: "Water tracker", MinTier: tier.Basic},
	{ID: "daily-stats", Title: "Daily stats", MinTier: tier.Advanced},
	{ID: "food-scanner", Title: "Food scanner", MinTier: tier.Advanced},
	{ID: "fitness-facebuilding", Title: "Fitness and face building", MinTier: tier.Premium},
	{ID: "club-membership", Title: "Join the MisterMo club", MinTier: tier.Basic, MaxTier: tier.Basic},
}
