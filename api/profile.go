package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/handup/handup-api/consts"
	"github.com/handup/handup-api/store"
)

type profileStat struct {
	Label string      `json:"label"`
	Value interface{} `json:"value"`
	Color string      `json:"color"`
	Icon  string      `json:"icon"`
}

type categoryProgress struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Progress int    `json:"progress"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
}

type activityEntry struct {
	Action   string `json:"action"`
	Person   string `json:"person"`
	Category string `json:"category"`
	Time     string `json:"time"`
}

// myProfileRedirect sends the caller to their own profile page.
func (s *Server) myProfileRedirect(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+account.Username+"/")
}

// profileView is the API for the profile page of any account. The profile
// record is created on the fly when missing; everything else here is a
// read-only aggregation.
func (s *Server) profileView(c *gin.Context) {
	username := c.Param("username")

	account, err := s.store.GetAccount(username)
	if err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	profile, err := s.store.EnsureProfile(account)
	if shouldInterupt(err, c) {
		return
	}

	requestCount, err := s.store.CountAccountRequests(account.ID)
	if shouldInterupt(err, c) {
		return
	}

	stats := []profileStat{
		{Label: "Total Helps", Value: profile.TotalHelps, Color: "text-rose-500", Icon: "❤️"},
		{Label: "Reputation", Value: profile.ReputationPoints, Color: "text-orange-500", Icon: "🔥"},
		{Label: "Requests Posted", Value: requestCount, Color: "text-purple-500", Icon: "📢"},
		{Label: "Member Since", Value: profile.JoinedDate.Format("Jan 2006"), Color: "text-green-500", Icon: "📅"},
	}

	counts, err := s.store.CountRequestsByCategory(account.ID)
	if shouldInterupt(err, c) {
		return
	}

	recent, err := s.store.ListAccountRequests(account.ID, 5)
	if shouldInterupt(err, c) {
		return
	}

	recentActivity := make([]activityEntry, 0, len(recent))
	for _, r := range recent {
		recentActivity = append(recentActivity, activityEntry{
			Action:   r.Title,
			Person:   r.Account.Username,
			Category: r.CategoryName(),
			Time:     r.CreatedAt.Format("Jan 02 2006"),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"profile_user":      account,
		"profile":           profile,
		"stats":             stats,
		"category_progress": progressByCategory(counts),
		"recent_activity":   recentActivity,
		"achievements":      consts.Achievements,
	})
}

// progressByCategory turns per-category request counts into the progress
// bars shown on the profile page. Each request is worth 10 points, capped
// at a full bar.
func progressByCategory(counts []store.CategoryCount) []categoryProgress {
	progress := make([]categoryProgress, 0, len(counts))
	for _, cc := range counts {
		p := cc.Count * 10
		if p > 100 {
			p = 100
		}
		progress = append(progress, categoryProgress{
			Category: cc.Category,
			Count:    cc.Count,
			Progress: p,
			Color:    "from-blue-500 to-cyan-500",
			Icon:     "💪",
		})
	}
	return progress
}
