package httpapi

import (
	"time"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/entity"
)

// BookingRequest is the POST /api/v2/booking body. Unknown variants are
// rejected by the service; a variant payload for the wrong variant is
// dropped.
type BookingRequest struct {
	BookingType   string                `json:"bookingType" validate:"required"`
	PackageID     string                `json:"packageId"`
	PackageTitle  string                `json:"packageTitle"`
	PersonCount   int                   `json:"personCount"`
	Date          string                `json:"date"`
	PersonDetails []entity.PersonDetail `json:"personDetails"`
	ArrivalPlace  string                `json:"arrivalPlace"`
	PickupNeeded  bool                  `json:"pickupNeeded"`
	IsMember      bool                  `json:"isMember"`
	MembershipID  string                `json:"membershipId"`
	FinalAmount   float64               `json:"finalAmount"`
	HealthDetails *entity.HealthDetail  `json:"healthDetails,omitempty"`
	BikeDetails   *entity.BikeDetail    `json:"bikeDetails,omitempty"`
}

func (r *BookingRequest) toEntity() *entity.Booking {
	return &entity.Booking{
		BookingType:   r.BookingType,
		PackageID:     r.PackageID,
		PackageTitle:  r.PackageTitle,
		PersonCount:   r.PersonCount,
		Date:          r.Date,
		PersonDetails: r.PersonDetails,
		ArrivalPlace:  r.ArrivalPlace,
		PickupNeeded:  r.PickupNeeded,
		IsMember:      r.IsMember,
		MembershipID:  r.MembershipID,
		FinalAmount:   r.FinalAmount,
		HealthDetails: r.HealthDetails,
		BikeDetails:   r.BikeDetails,
	}
}

// AdminEmailRequest is the POST /api/v2/send-admin-email body
type AdminEmailRequest struct {
	Subject       string                `json:"subject" validate:"required"`
	Recipient     string                `json:"recipient" validate:"required,email"`
	PackageTitle  string                `json:"packageTitle"`
	PersonCount   int                   `json:"personCount"`
	Date          string                `json:"date"`
	ArrivalPlace  string                `json:"arrivalPlace"`
	PickupNeeded  bool                  `json:"pickupNeeded"`
	PersonDetails []entity.PersonDetail `json:"personDetails"`
}

// MembershipRequest is the POST /api/membership body
type MembershipRequest struct {
	Name           string    `json:"name"`
	DOB            string    `json:"dob"`
	Mobile         string    `json:"mobile"`
	Email          string    `json:"email" validate:"required,email"`
	Occupation     string    `json:"occupation"`
	Address        string    `json:"address"`
	MembershipPlan string    `json:"membershipPlan"`
	Amount         float64   `json:"amount"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
}

func (r *MembershipRequest) toEntity() *entity.Membership {
	return &entity.Membership{
		Name:           r.Name,
		DOB:            r.DOB,
		Mobile:         r.Mobile,
		Email:          r.Email,
		Occupation:     r.Occupation,
		Address:        r.Address,
		MembershipPlan: r.MembershipPlan,
		Amount:         r.Amount,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
	}
}

// ValidateMembershipRequest is the POST /api/validate-membership body.
// membershipId carries the unique code issued at registration.
type ValidateMembershipRequest struct {
	Email        string `json:"email" validate:"required"`
	MembershipID string `json:"membershipId" validate:"required"`
}

// CreateOrderRequest is the POST /api/payment/order body; amount is in rupees
type CreateOrderRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

// VerifyPaymentRequest is the POST /api/payment/verify body
type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}
