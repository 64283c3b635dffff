package response

import (
	"github.com/rahma103/calendrier-reservation-v2/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// ReserveResponse is the booking outcome in the shape the front-end expects.
type ReserveResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func ReserveOK() ReserveResponse {
	return ReserveResponse{Success: true}
}

func ReserveFailed(message string) ReserveResponse {
	return ReserveResponse{Success: false, Message: message}
}

type BookingListItem struct {
	DisplayDate string `json:"displayDate"`
	Nom         string `json:"nom"`
	Prenom      string `json:"prenom"`
	Telephone   string `json:"telephone"`
}

func FromBookingViews(views []queries.BookingView) []BookingListItem {
	items := make([]BookingListItem, 0, len(views))
	if err := copier.Copy(&items, &views); err != nil {
		// Field sets are identical; a copy failure is a programming error.
		panic(err)
	}
	return items
}
