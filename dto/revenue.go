package dto

// RevenueItem is one hotel's revenue line. Net revenue is the booked total
// minus everything refunded.
type RevenueItem struct {
	HotelID      uint    `json:"hotelId"`
	HotelName    string  `json:"hotelName"`
	Bookings     int     `json:"bookings"`
	GrossRevenue float64 `json:"grossRevenue"`
	Refunded     float64 `json:"refunded"`
	NetRevenue   float64 `json:"netRevenue"`
}

// RevenueSummary aggregates the lines for a period
type RevenueSummary struct {
	From         string        `json:"from"`
	To           string        `json:"to"`
	GrossRevenue float64       `json:"grossRevenue"`
	Refunded     float64       `json:"refunded"`
	NetRevenue   float64       `json:"netRevenue"`
	Items        []RevenueItem `json:"items"`
}
