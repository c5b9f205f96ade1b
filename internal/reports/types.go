package reports

// Purchase-like event names. The wider set marks revenue-bearing events; the
// narrower set is what the product/trend groupings use.
var (
	purchaseEventNames = []string{"purchase", "purchase_completed", "payment_success"}
	productEventNames  = []string{"purchase", "purchase_completed"}
)

// BusinessOverview is the GET /api/reports/overview payload.
type BusinessOverview struct {
	TotalRevenue      float64          `json:"totalRevenue"`
	TotalOrders       int              `json:"totalOrders"`
	TotalCustomers    int              `json:"totalCustomers"`
	ConversionRate    float64          `json:"conversionRate"`
	AverageOrderValue float64          `json:"averageOrderValue"`
	TopProducts       []ProductRevenue `json:"topProducts"`
	RevenueByMonth    []MonthlyRevenue `json:"revenueByMonth"`
}

// ProductRevenue is one product's revenue and unit count.
type ProductRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Units   int     `json:"units"`
}

// MonthlyRevenue is one month of the revenue trend.
type MonthlyRevenue struct {
	Month     string  `json:"month"`
	Revenue   float64 `json:"revenue"`
	Customers int     `json:"customers"`
	Orders    int     `json:"orders"`
}

// UserActivityReport is the GET /api/reports/user-activity payload.
// AverageSessionTime is null until session-duration tracking exists.
type UserActivityReport struct {
	TotalSessions       int           `json:"totalSessions"`
	TotalUniqueUsers    int           `json:"totalUniqueUsers"`
	PageViews           int           `json:"pageViews"`
	AverageSessionTime  *string       `json:"averageSessionTime"`
	BounceRate          float64       `json:"bounceRate"`
	PageViewsPerSession float64       `json:"pageViewsPerSession"`
	TopPages            []PageStats   `json:"topPages"`
	UsersByDevice       []DeviceStats `json:"usersByDevice"`
}

// PageStats is one page's view counts. AvgTime is null until computed.
type PageStats struct {
	Page        string  `json:"page"`
	Views       int     `json:"views"`
	UniqueViews int     `json:"uniqueViews"`
	AvgTime     *string `json:"avgTime"`
}

// DeviceStats is the distinct-user count for one device category with its
// share of total unique users.
type DeviceStats struct {
	Device     string  `json:"device"`
	Users      int     `json:"users"`
	Percentage float64 `json:"percentage"`
}

// FunnelStage is one computed step of the conversion funnel.
type FunnelStage struct {
	Step       string  `json:"step"`
	Users      int     `json:"users"`
	Percentage float64 `json:"percentage"`
}

// BusinessRaw holds the unshaped aggregation output for the business overview.
type BusinessRaw struct {
	TotalRevenue  float64
	TotalOrders   int
	AvgOrderValue float64
	Customers     int
	Visitors      int
	Purchasers    int
	TopProducts   []ProductRevenue
	Monthly       []MonthlyRevenue
}

// ActivityRaw holds the unshaped aggregation output for the user activity report.
type ActivityRaw struct {
	Sessions       int
	PageViews      int
	UniqueUsers    int
	BounceSessions int
	TopPages       []PageStats
	Devices        []DeviceStats
}
