// Package dashboard assembles the console landing page from several
// backend reads.
package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/servidz/console/internal/domain/profile"
)

// Number decodes from a JSON number or a numeric string.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parsing number %q: %w", s, err)
	}
	*n = Number(f)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

// Metric is a day-over-day figure with its growth percentage.
type Metric struct {
	Growth    Number `json:"growth"`
	Today     Number `json:"today"`
	Yesterday Number `json:"yesterday"`
}

// Analytics is the headline summary from /dashboard/analytics.
type Analytics struct {
	TotalUsers     Number `json:"totalUsers"`
	TotalTaskers   Number `json:"totalTaskers"`
	TodaysBookings Number `json:"todaysBookings"`
	TodaysEarnings Number `json:"todaysEarnings"`
	Analytics      struct {
		Users    Metric `json:"users"`
		Taskers  Metric `json:"taskers"`
		Bookings Metric `json:"bookings"`
		Earnings Metric `json:"earnings"`
	} `json:"analytics"`
}

// Point is one labelled value in a chart series.
type Point struct {
	Name  string `json:"name"`
	Value Number `json:"value"`
}

// Activity is one row of the recent activity feed.
type Activity struct {
	ID       string `json:"id"`
	Activity string `json:"activity"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}

// Trend classifies growth.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// Card is one formatted headline figure.
type Card struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Growth string `json:"growth"`
	Trend  Trend  `json:"trend"`
	Note   string `json:"note,omitempty"`
}

// Overview is everything the dashboard shows.
type Overview struct {
	Cards               []Card           `json:"cards"`
	Admin               *profile.Profile `json:"admin"`
	RecentActivities    []Activity       `json:"recent_activities"`
	MonthlyEarnings     []Point          `json:"monthly_earnings"`
	TaskersDistribution []Point          `json:"taskers_distribution"`
	Warnings            []string         `json:"warnings,omitempty"`
}
