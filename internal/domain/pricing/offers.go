// internal/domain/pricing/offers.go
package pricing

import "time"

// UniversalOffer is redeemable on any day with no minimum
var UniversalOffer = Offer{
	Code:        "SAVE10",
	Kind:        DiscountPercentage,
	Value:       10,
	Description: "10% off on any order",
}

// DailyOffers assigns one offer per weekday. Any day's code is redeemable
// regardless of today's date; the weekday only decides lookup priority.
var DailyOffers = map[time.Weekday]Offer{
	time.Monday: {
		Code:               "MON20",
		Kind:               DiscountPercentage,
		Value:              20,
		MinimumOrderAmount: 100000, // ₹1000
		Description:        "Monday special: 20% off on orders above ₹1000",
	},
	time.Tuesday: {
		Code:               "TUE15",
		Kind:               DiscountPercentage,
		Value:              15,
		MinimumOrderAmount: 80000, // ₹800
		Description:        "Tuesday treat: 15% off on orders above ₹800",
	},
	time.Wednesday: {
		Code:               "WED10",
		Kind:               DiscountPercentage,
		Value:              10,
		MinimumOrderAmount: 50000, // ₹500
		Description:        "Midweek saver: 10% off on orders above ₹500",
	},
	time.Thursday: {
		Code:               "THU12",
		Kind:               DiscountPercentage,
		Value:              12,
		MinimumOrderAmount: 70000, // ₹700
		Description:        "Thursday deal: 12% off on orders above ₹700",
	},
	time.Friday: {
		Code:               "FRI25",
		Kind:               DiscountPercentage,
		Value:              25,
		MinimumOrderAmount: 150000, // ₹1500
		Description:        "Friday feast: 25% off on orders above ₹1500",
	},
	time.Saturday: {
		Code:               "SAT50",
		Kind:               DiscountFixed,
		Value:              5000, // ₹50 flat
		MinimumOrderAmount: 60000,
		Description:        "Saturday flat ₹50 off on orders above ₹600",
	},
	time.Sunday: {
		Code:               "SUN40",
		Kind:               DiscountFixed,
		Value:              4000, // ₹40 flat
		MinimumOrderAmount: 50000,
		Description:        "Sunday flat ₹40 off on orders above ₹500",
	},
}

// weekdayOrder fixes the fallback scan so off-day lookups are deterministic
var weekdayOrder = []time.Weekday{
	time.Sunday,
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}
