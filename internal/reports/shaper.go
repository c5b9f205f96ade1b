package reports

import "math"

// Round1 rounds to 1 decimal place. Percentages and averages are rounded
// server-side once; clients must not re-round.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildBusinessOverview shapes raw aggregation output into the business
// overview contract. Arrays stay non-nil and ratios default to 0 when their
// denominator is 0.
func BuildBusinessOverview(raw BusinessRaw) *BusinessOverview {
	out := &BusinessOverview{
		TotalRevenue:      raw.TotalRevenue,
		TotalOrders:       raw.TotalOrders,
		TotalCustomers:    raw.Customers,
		AverageOrderValue: Round2(raw.AvgOrderValue),
		TopProducts:       raw.TopProducts,
		RevenueByMonth:    raw.Monthly,
	}
	if raw.Visitors > 0 {
		out.ConversionRate = Round2(float64(raw.Purchasers) / float64(raw.Visitors) * 100)
	}
	if out.TopProducts == nil {
		out.TopProducts = []ProductRevenue{}
	}
	if out.RevenueByMonth == nil {
		out.RevenueByMonth = []MonthlyRevenue{}
	}
	return out
}

// BuildUserActivity shapes raw aggregation output into the user activity
// contract. Session-duration fields stay null: they are not yet computed.
func BuildUserActivity(raw ActivityRaw) *UserActivityReport {
	out := &UserActivityReport{
		TotalSessions:    raw.Sessions,
		TotalUniqueUsers: raw.UniqueUsers,
		PageViews:        raw.PageViews,
		TopPages:         raw.TopPages,
		UsersByDevice:    raw.Devices,
	}
	if raw.Sessions > 0 {
		out.BounceRate = Round1(float64(raw.BounceSessions) / float64(raw.Sessions) * 100)
		out.PageViewsPerSession = Round1(float64(raw.PageViews) / float64(raw.Sessions))
	}
	if raw.UniqueUsers > 0 {
		for i := range out.UsersByDevice {
			out.UsersByDevice[i].Percentage = Round1(float64(out.UsersByDevice[i].Users) / float64(raw.UniqueUsers) * 100)
		}
	}
	if out.TopPages == nil {
		out.TopPages = []PageStats{}
	}
	if out.UsersByDevice == nil {
		out.UsersByDevice = []DeviceStats{}
	}
	return out
}
