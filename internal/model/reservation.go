package model

// Reservation statuses. The only transition is pending to confirmed.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
)

// Reservation is a table booking.
type Reservation struct {
	ID              string          `json:"_id"`
	ReservationData ReservationData `json:"reservationData"`
}

// ReservationData holds the booking details entered by the guest.
type ReservationData struct {
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Guests    int    `json:"guests"`
	Status    string `json:"status"`
}

// ConfirmReservationRequest is the payload of PATCH /confirmReservation.
type ConfirmReservationRequest struct {
	ItemID string `json:"itemId"`
}
