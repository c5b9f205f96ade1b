package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRounding(t *testing.T) {
	assert.Equal(t, 33.3, Round1(33.333333))
	assert.Equal(t, 66.7, Round1(66.666666))
	assert.Equal(t, 0.0, Round1(0))
	assert.Equal(t, 2.86, Round2(2.857142))
	assert.Equal(t, 100.0, Round2(100))
}

func TestBuildBusinessOverview(t *testing.T) {
	raw := BusinessRaw{
		TotalRevenue:  1234.5,
		TotalOrders:   10,
		AvgOrderValue: 123.456,
		Customers:     70,
		Visitors:      70,
		Purchasers:    2,
		TopProducts:   []ProductRevenue{{Name: "Product A", Revenue: 500, Units: 4}},
		Monthly:       []MonthlyRevenue{{Month: "May", Revenue: 600, Customers: 5, Orders: 6}},
	}

	out := BuildBusinessOverview(raw)

	assert.Equal(t, 1234.5, out.TotalRevenue)
	assert.Equal(t, 10, out.TotalOrders)
	assert.Equal(t, 70, out.TotalCustomers)
	assert.Equal(t, 123.46, out.AverageOrderValue)
	// 2/70 = 2.857...%, rounded to 2 decimals.
	assert.Equal(t, 2.86, out.ConversionRate)
	assert.Len(t, out.TopProducts, 1)
	assert.Len(t, out.RevenueByMonth, 1)
}

func TestBuildBusinessOverview_NoVisitors(t *testing.T) {
	out := BuildBusinessOverview(BusinessRaw{Purchasers: 5})

	assert.Equal(t, 0.0, out.ConversionRate)
	assert.NotNil(t, out.TopProducts)
	assert.NotNil(t, out.RevenueByMonth)
	assert.Empty(t, out.TopProducts)
	assert.Empty(t, out.RevenueByMonth)
}

func TestBuildUserActivity(t *testing.T) {
	raw := ActivityRaw{
		Sessions:       30,
		PageViews:      100,
		UniqueUsers:    40,
		BounceSessions: 10,
		TopPages:       []PageStats{{Page: "/home", Views: 50, UniqueViews: 20}},
		Devices: []DeviceStats{
			{Device: "desktop", Users: 25},
			{Device: "mobile", Users: 15},
		},
	}

	out := BuildUserActivity(raw)

	assert.Equal(t, 30, out.TotalSessions)
	assert.Equal(t, 40, out.TotalUniqueUsers)
	assert.Equal(t, 100, out.PageViews)
	// 10/30 = 33.33...%, rounded to 1 decimal.
	assert.Equal(t, 33.3, out.BounceRate)
	assert.Equal(t, 3.3, out.PageViewsPerSession)
	assert.Equal(t, 62.5, out.UsersByDevice[0].Percentage)
	assert.Equal(t, 37.5, out.UsersByDevice[1].Percentage)
	assert.Nil(t, out.AverageSessionTime)
	assert.Nil(t, out.TopPages[0].AvgTime)
}

func TestBuildUserActivity_Empty(t *testing.T) {
	out := BuildUserActivity(ActivityRaw{})

	assert.Equal(t, 0.0, out.BounceRate)
	assert.Equal(t, 0.0, out.PageViewsPerSession)
	assert.NotNil(t, out.TopPages)
	assert.NotNil(t, out.UsersByDevice)
	assert.Empty(t, out.TopPages)
	assert.Empty(t, out.UsersByDevice)
}
