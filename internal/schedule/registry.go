package schedule

import "sort"

// RegistryVersion is bumped whenever a task id is added, renamed or retired.
// Completed task lists are stored by id, so ids must never be reused for a
// different task.
const RegistryVersion = 1

// TaskID is the stable key a task is stored under in completed_tasks.
type TaskID string

// Morning.
const (
	WakeUp             TaskID = "wake-up"
	Weigh              TaskID = "weigh"
	Shower             TaskID = "shower"
	Workout            TaskID = "workout"
	SupplementsMorning TaskID = "supplements-morning"
	ZMA                TaskID = "zma"
	Collagen           TaskID = "collagen"
	VitaminC           TaskID = "vitamin-c"
	Motivation         TaskID = "motivation"
	Reflection         TaskID = "reflection"
	Breathing          TaskID = "breathing"
	WorkTime           TaskID = "work-time"
)

// Day.
const (
	SocialShare        TaskID = "social-share"
	LunchFasting       TaskID = "lunch-fasting"
	WalkLunch          TaskID = "walk-lunch"
	LunchPrep          TaskID = "lunch-prep"
	AppleVinegarLunch  TaskID = "apple-vinegar-lunch"
	BerberinLunch      TaskID = "berberin-lunch"
	LunchTime          TaskID = "lunch-time"
	Omega3Lunch        TaskID = "omega3-lunch"
	VitaminD3Lunch     TaskID = "vitamin-d3-lunch"
	WomenComplexLunch  TaskID = "women-complex-lunch"
	MindfulEatingLunch TaskID = "mindful-eating-lunch"
	SlowEatingLunch    TaskID = "slow-eating-lunch"
	WalkAfterLunch     TaskID = "walk-after-lunch"

	EveningReflection   TaskID = "evening-reflection"
	WalkEveningFasting  TaskID = "walk-evening-fasting"
	DinnerPrep          TaskID = "dinner-prep"
	AppleVinegarDinner  TaskID = "apple-vinegar-dinner"
	BerberinDinner      TaskID = "berberin-dinner"
	DinnerTime          TaskID = "dinner-time"
	MindfulEatingDinner TaskID = "mindful-eating-dinner"
	SlowEatingDinner    TaskID = "slow-eating-dinner"
	WalkAfterDinner     TaskID = "walk-after-dinner"
)

// Evening.
const (
	FatBurner        TaskID = "fat-burner"
	EveningBreathing TaskID = "evening-breathing"
	GoodHabits       TaskID = "good-habits"
	English          TaskID = "english"
	Wikipedia        TaskID = "wikipedia"
	Morachkovsky     TaskID = "morachkovsky"
	Sleep            TaskID = "sleep"
)

// Definition is the registered shape of a task.
type Definition struct {
	ID       TaskID
	Title    string
	Video    string
	Audio    string
	Info     string
	Subtasks []TaskID
}

var registry = map[TaskID]Definition{
	WakeUp:  {ID: WakeUp, Title: "Wake up before 7 am"},
	Weigh:   {ID: Weigh, Title: "Weigh yourself"},
	Shower:  {ID: Shower, Title: "Contrast shower", Video: "/videos/contrast-shower.mp4"},
	Workout: {ID: Workout, Title: "5 minute warm-up", Video: "/videos/workout.mp4"},
	SupplementsMorning: {
		ID:       SupplementsMorning,
		Title:    "Morning supplements",
		Subtasks: []TaskID{ZMA, Collagen, VitaminC},
	},
	ZMA:        {ID: ZMA, Title: "ZMA, 3 capsules", Info: "zma"},
	Collagen:   {ID: Collagen, Title: "Collagen, one scoop", Info: "collagen"},
	VitaminC:   {ID: VitaminC, Title: "Vitamin C, 1 tablet", Info: "vitamin-c"},
	Motivation: {ID: Motivation, Title: "Morning voice message from the coach", Audio: "/audio/motivation-morning.mp3"},
	Reflection: {ID: Reflection, Title: "Two minutes: this is one more day of your life, live it fully"},
	Breathing:  {ID: Breathing, Title: "Breathing exercises, 10-15 minutes", Video: "/videos/breathing.mp4"},
	WorkTime:   {ID: WorkTime, Title: "Get ready and go to work"},

	SocialShare:  {ID: SocialShare, Title: "Share your progress on social media: take a screenshot and motivate your friends", Video: "/videos/social-sharing.mp4"},
	LunchFasting: {ID: LunchFasting, Title: "At lunch: you can easily go two days without food"},
	WalkLunch:    {ID: WalkLunch, Title: "20 minute walk", Audio: "/audio/walk-motivation.mp3"},
	LunchPrep:    {ID: LunchPrep, Title: "Get ready for lunch, rate your tiredness", Video: "/videos/inner-child.mp4"},
	AppleVinegarLunch: {
		ID: AppleVinegarLunch, Title: "15 minutes before the meal: apple cider vinegar, 1 capsule", Info: "apple-vinegar",
	},
	BerberinLunch: {ID: BerberinLunch, Title: "15 minutes before the meal: berberine, 1 capsule", Info: "berberin"},
	LunchTime: {
		ID:       LunchTime,
		Title:    "Meal time",
		Video:    "/videos/plate-setup.mp4",
		Subtasks: []TaskID{Omega3Lunch, VitaminD3Lunch, WomenComplexLunch},
	},
	Omega3Lunch:        {ID: Omega3Lunch, Title: "Omega-3, 4 capsules", Info: "omega-3"},
	VitaminD3Lunch:     {ID: VitaminD3Lunch, Title: "D3 as scheduled", Info: "d3-k2"},
	WomenComplexLunch:  {ID: WomenComplexLunch, Title: "Women's complex, 3 capsules", Info: "women-complex"},
	MindfulEatingLunch: {ID: MindfulEatingLunch, Title: "Look at your portion mindfully and rate it"},
	SlowEatingLunch:    {ID: SlowEatingLunch, Title: "Eat slowly: no new spoonful until you have swallowed"},
	WalkAfterLunch:     {ID: WalkAfterLunch, Title: "5 minute walk after the meal", Audio: "/audio/walk-motivation.mp3"},

	EveningReflection:  {ID: EveningReflection, Title: "In the evening, compare your tiredness with eating days"},
	WalkEveningFasting: {ID: WalkEveningFasting, Title: "20 minute walk", Audio: "/audio/evening-motivation.mp3"},
	DinnerPrep:         {ID: DinnerPrep, Title: "Get ready for dinner, rate your tiredness"},
	AppleVinegarDinner: {
		ID: AppleVinegarDinner, Title: "15 minutes before the meal: apple cider vinegar, 1 capsule", Info: "apple-vinegar",
	},
	BerberinDinner:      {ID: BerberinDinner, Title: "15 minutes before the meal: berberine, 1 capsule", Info: "berberin"},
	DinnerTime:          {ID: DinnerTime, Title: "Meal time", Video: "/videos/plate-setup.mp4"},
	MindfulEatingDinner: {ID: MindfulEatingDinner, Title: "Look at your portion mindfully and rate it"},
	SlowEatingDinner:    {ID: SlowEatingDinner, Title: "Eat slowly: no new spoonful until you have swallowed"},
	WalkAfterDinner:     {ID: WalkAfterDinner, Title: "5 minute walk after the meal", Audio: "/audio/evening-motivation.mp3"},

	FatBurner:        {ID: FatBurner, Title: "21:00 fat burner, 2 capsules", Info: "fat-burner"},
	EveningBreathing: {ID: EveningBreathing, Title: "Breathing exercises, 10-15 minutes", Video: "/videos/breathing.mp4"},
	GoodHabits: {
		ID:       GoodHabits,
		Title:    "Good habits before sleep",
		Subtasks: []TaskID{English, Wikipedia, Morachkovsky},
	},
	English:      {ID: English, Title: "15 minutes of English (Memrise)"},
	Wikipedia:    {ID: Wikipedia, Title: "Read a random Wikipedia article"},
	Morachkovsky: {ID: Morachkovsky, Title: "Watch one Morachkovsky topic"},
	Sleep:        {ID: Sleep, Title: "Lights out by 23:00"},
}

// Lookup returns the registered definition for id.
func Lookup(id TaskID) (Definition, bool) {
	def, ok := registry[id]
	return def, ok
}

// Registered reports whether id belongs to the registry.
func Registered(id string) bool {
	_, ok := registry[TaskID(id)]
	return ok
}

// IDs returns every registered id in lexical order.
func IDs() []TaskID {
	ids := make([]TaskID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
