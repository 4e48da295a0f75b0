package entity

// GrowthPoint is one bucket of a time series on the admin dashboard charts.
type GrowthPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// AdminStats is the aggregate snapshot behind the admin dashboard.
type AdminStats struct {
	TotalUsers        int           `json:"totalUsers"`
	TotalPublicArts   int           `json:"totalPublicArts"`
	TotalReportedArts int           `json:"totalReportedArts"`
	TodayArts         int           `json:"todayArts"`
	ArtGrowth         []GrowthPoint `json:"artGrowth,omitempty"`
	UserGrowth        []GrowthPoint `json:"userGrowth,omitempty"`
}

// DashboardStats summarizes a single principal's corner of the site.
type DashboardStats struct {
	TotalArtworks  int `json:"totalArtworks"`
	TotalFavorites int `json:"totalFavorites"`
	NewToday       int `json:"newToday"`
	TotalLikes     int `json:"totalLikes"`
}
