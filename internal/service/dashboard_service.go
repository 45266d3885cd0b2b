package service

import (
	"github.com/shopspring/decimal"

	"solarhub-backend/internal/model"
	"solarhub-backend/pkg/money"
)

// RevenueChart is the admin revenue overview: the monthly points plus the
// series total formatted for the headline ("₹3.5M").
type RevenueChart struct {
	Points []model.RevenuePoint `json:"points"`
	Total  string               `json:"total"`
}

// AdminOverview is the admin dashboard payload.
type AdminOverview struct {
	Cards      []model.StatCard `json:"cards"`
	Revenue    RevenueChart     `json:"revenue"`
	Activities []model.Activity `json:"activities"`
}

type DashboardService interface {
	Overview() AdminOverview
}

type dashboardService struct {
	revenue    []model.RevenuePoint
	activities []model.Activity
}

func NewDashboardService(revenue []model.RevenuePoint, activities []model.Activity) DashboardService {
	return &dashboardService{revenue: revenue, activities: activities}
}

func (s *dashboardService) Overview() AdminOverview {
	total := decimal.Zero
	for _, p := range s.revenue {
		total = total.Add(decimal.NewFromInt(p.Revenue))
	}

	return AdminOverview{
		Cards: []model.StatCard{
			{Label: "Total Projects", Value: "156", Detail: "12% increase from last month"},
			{Label: "Active Plants", Value: "89", Detail: "5 new this week"},
			{Label: "Total Revenue", Value: money.FormatCompact(total, "₹"), Detail: "18% increase from last quarter"},
		},
		Revenue: RevenueChart{
			Points: append([]model.RevenuePoint(nil), s.revenue...),
			Total:  money.FormatCompact(total, "₹"),
		},
		Activities: append([]model.Activity(nil), s.activities...),
	}
}
