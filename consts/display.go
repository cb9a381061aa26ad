package consts

// Placeholder display data. These values are rendered verbatim by the
// frontend and are not derived from stored records.

type QuickStat struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
	Color string `json:"color"`
}

type Achievement struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
}

// Categories is the allow-list presented on the requests and add-request
// pages. "All" is a sentinel meaning no filter; it is not a real category.
var Categories = []string{
	"All", "Loneliness", "Stress Handling", "Communication", "Weight Lifting",
	"Ride Sharing", "Electrical", "Cleaning", "Pet Care", "Tutoring", "Shopping", "Moving",
}

var QuickStats = []QuickStat{
	{Key: "contrib", Label: "Your Contributions", Value: "47", Color: "text-rose-500"},
	{Key: "people", Label: "People Helped", Value: "35", Color: "text-blue-500"},
	{Key: "chats", Label: "Active Chats", Value: "3", Color: "text-purple-500"},
	{Key: "month", Label: "This Month", Value: "+12", Color: "text-green-500"},
}

var Achievements = []Achievement{
	{Name: "First Helper", Description: "Completed your first request", Icon: "🎉", Unlocked: true},
	{Name: "Community Star", Description: "Helped 10 different people", Icon: "⭐", Unlocked: true},
	{Name: "Consistent Helper", Description: "Helped someone 7 days in a row", Icon: "🔥", Unlocked: false},
}
