package store

// UpdateResult reports how many documents a partial update touched.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

// BookingView selects whose bookings a listing returns.
type BookingView int

const (
	// BookingViewTourist lists bookings made by the tourist email.
	BookingViewTourist BookingView = iota
	// BookingViewGuide lists bookings assigned to the guide email.
	BookingViewGuide
)

func (v BookingView) String() string {
	if v == BookingViewGuide {
		return "guide"
	}
	return "tourist"
}

// BookingFilter narrows a booking listing. Canceled bookings are always
// excluded. A zero Limit means no limit.
type BookingFilter struct {
	View  BookingView
	Email string
	Skip  int64
	Limit int64
}
