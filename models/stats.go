package models

// UserStats represents a user's performance over their completed follows.
// A follow counts as completed once its profit column is populated.
type UserStats struct {
	TotalProfit float64 `json:"totalProfit"`
	WinRate     float64 `json:"winRate"`
	TotalBets   int     `json:"totalBets"`
	ROI         float64 `json:"roi"`
}

// WeeklyStats represents settlement results over the trailing seven days
type WeeklyStats struct {
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Profit float64 `json:"profit"`
}

// TipsterStats represents the site-wide aggregate shown on public pages
type TipsterStats struct {
	WinRate      float64     `json:"winRate"`
	TotalTips    int         `json:"totalTips"`
	TotalMembers int         `json:"totalMembers"`
	WeeklyStats  WeeklyStats `json:"weeklyStats"`
}
