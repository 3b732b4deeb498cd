package rest

import (
	"time"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
)

type leaderboardEntryResponse struct {
	Name        string `json:"name"`
	Count       int    `json:"count"`
	AvgDuration string `json:"avgDuration"`
	IssuesFound int    `json:"issuesFound"`
	Trend       int    `json:"trend"`
}

type leaderboardStatsResponse struct {
	TotalPaths          int     `json:"totalPaths"`
	AvgPathsPerEmployee float64 `json:"avgPathsPerEmployee"`
	MostActiveDay       string  `json:"mostActiveDay"`
}

type dailyStatsResponse struct {
	CompletedToday          int    `json:"completedToday"`
	CompletedTodayChange    int    `json:"completedTodayChange"`
	AvgCompletionTime       string `json:"avgCompletionTime"`
	AvgCompletionTimeChange int    `json:"avgCompletionTimeChange"`
	IssuesReported          int    `json:"issuesReported"`
	IssuesReportedChange    int    `json:"issuesReportedChange"`
	ActiveUsers             int    `json:"activeUsers"`
	ActiveUsersChange       int    `json:"activeUsersChange"`
}

type locationIssuesResponse struct {
	Date           string         `json:"date"`
	TotalIssues    int            `json:"totalIssues"`
	LocationCounts map[string]int `json:"locationCounts"`
}

type recentReportResponse struct {
	ID          string `json:"id"`
	User        string `json:"user"`
	Time        string `json:"time"`
	IssuesCount int    `json:"issuesCount"`
	Duration    string `json:"duration"`
}

type reportListItemResponse struct {
	ID               string    `json:"id"`
	User             string    `json:"user"`
	UserEmail        string    `json:"userEmail"`
	Time             string    `json:"time"`
	CreatedAt        time.Time `json:"createdAt"`
	Date             string    `json:"date"`
	IssuesCount      int       `json:"issuesCount"`
	Duration         string    `json:"duration"`
	LocationsVisited int       `json:"locationsVisited"`
	TotalLocations   int       `json:"totalLocations"`
}

type reportPageResponse struct {
	Reports    []reportListItemResponse `json:"reports"`
	Total      int                      `json:"total"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"pageSize"`
	TotalPages int                      `json:"totalPages"`
}

type checkItemResponse struct {
	ID       string  `json:"id"`
	Question string  `json:"question"`
	Result   bool    `json:"result"`
	Action   *string `json:"action"`
}

type locationResponse struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	CheckItems []checkItemResponse `json:"checkItems"`
}

type reportOwnerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type reportResponse struct {
	ID        string               `json:"id"`
	UserID    string               `json:"userId"`
	StartTime time.Time            `json:"startTime"`
	EndTime   time.Time            `json:"endTime"`
	Duration  string               `json:"duration"`
	CreatedAt time.Time            `json:"createdAt"`
	User      *reportOwnerResponse `json:"user,omitempty"`
	Locations []locationResponse   `json:"locations"`
}

type accountResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Store      *string   `json:"store"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toLeaderboardResponse(entries []domain.LeaderboardEntry) []leaderboardEntryResponse {
	out := make([]leaderboardEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, leaderboardEntryResponse{
			Name:        e.Name,
			Count:       e.Count,
			AvgDuration: e.AvgDuration,
			IssuesFound: e.IssuesFound,
			Trend:       e.Trend,
		})
	}
	return out
}

func toDailyStatsResponse(s *domain.DailyStats) dailyStatsResponse {
	return dailyStatsResponse{
		CompletedToday:          s.CompletedToday,
		CompletedTodayChange:    s.CompletedTodayChange,
		AvgCompletionTime:       s.AvgCompletionTime,
		AvgCompletionTimeChange: s.AvgCompletionTimeChange,
		IssuesReported:          s.IssuesReported,
		IssuesReportedChange:    s.IssuesReportedChange,
		ActiveUsers:             s.ActiveUsers,
		ActiveUsersChange:       s.ActiveUsersChange,
	}
}

func toRecentResponse(items []domain.RecentReport) []recentReportResponse {
	out := make([]recentReportResponse, 0, len(items))
	for _, it := range items {
		out = append(out, recentReportResponse{
			ID:          it.ID.String(),
			User:        it.User,
			Time:        it.Time,
			IssuesCount: it.IssuesCount,
			Duration:    it.Duration,
		})
	}
	return out
}

func toReportPageResponse(p *domain.ReportPage) reportPageResponse {
	items := make([]reportListItemResponse, 0, len(p.Reports))
	for _, it := range p.Reports {
		items = append(items, reportListItemResponse{
			ID:               it.ID.String(),
			User:             it.User,
			UserEmail:        it.UserEmail,
			Time:             it.Time,
			CreatedAt:        it.CreatedAt,
			Date:             it.Date,
			IssuesCount:      it.IssuesCount,
			Duration:         it.Duration,
			LocationsVisited: it.LocationsVisited,
			TotalLocations:   it.TotalLocations,
		})
	}
	return reportPageResponse{
		Reports:    items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}

func toReportResponse(r *domain.Report) reportResponse {
	resp := reportResponse{
		ID:        r.ID.String(),
		UserID:    r.UserID.String(),
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Duration:  r.Duration,
		CreatedAt: r.CreatedAt,
		Locations: make([]locationResponse, 0, len(r.Locations)),
	}
	if r.UserName != "" || r.UserEmail != "" {
		resp.User = &reportOwnerResponse{Name: r.UserName, Email: r.UserEmail}
	}
	for _, loc := range r.Locations {
		lr := locationResponse{
			ID:         loc.ID.String(),
			Name:       loc.Name,
			CheckItems: make([]checkItemResponse, 0, len(loc.CheckItems)),
		}
		for _, item := range loc.CheckItems {
			lr.CheckItems = append(lr.CheckItems, checkItemResponse{
				ID:       item.ID.String(),
				Question: item.Question,
				Result:   item.Result,
				Action:   item.Action,
			})
		}
		resp.Locations = append(resp.Locations, lr)
	}
	return resp
}

func toReportsResponse(reports []domain.Report) []reportResponse {
	out := make([]reportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, toReportResponse(&reports[i]))
	}
	return out
}

func toAccountResponse(u *domain.User) accountResponse {
	resp := accountResponse{
		ID:         u.ID.String(),
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role.String(),
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
	if u.Store != nil {
		s := u.Store.String()
		resp.Store = &s
	}
	return resp
}
