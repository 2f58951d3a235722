package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking types
const (
	BookingTypeTour = "tour"
	BookingTypeTrek = "trek"
	BookingTypeBike = "bike"
)

// PersonDetail holds one traveler's information as submitted on the form
type PersonDetail struct {
	Name       string `bson:"name" json:"name"`
	Age        string `bson:"age" json:"age"`
	Relation   string `bson:"relation" json:"relation"`
	Occupation string `bson:"occupation" json:"occupation"`
	Phone      string `bson:"phone" json:"phone"`
	Email      string `bson:"email" json:"email"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
}

// HealthDetail carries the medical questionnaire attached to trek bookings
type HealthDetail struct {
	HeartConditions   string `bson:"heartConditions" json:"heartConditions"`
	RespiratoryIssues string `bson:"respiratoryIssues" json:"respiratoryIssues"`
	PastInjuries      string `bson:"pastInjuries" json:"pastInjuries"`
	OtherConcerns     string `bson:"otherConcerns" json:"otherConcerns"`
}

// BikeDetail carries the rider questionnaire attached to bike bookings
type BikeDetail struct {
	Type       string `bson:"type" json:"type"`
	Name       string `bson:"name" json:"name"`
	CC         string `bson:"cc" json:"cc"`
	Experience string `bson:"experience" json:"experience"`
}

// Booking is a tour, trek or bike booking. BookingType decides which of the
// optional variant payloads is populated; the other stays nil. Records are
// immutable once saved.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BookingType   string             `bson:"bookingType" json:"bookingType"`
	PackageID     string             `bson:"packageId" json:"packageId"`
	PackageTitle  string             `bson:"packageTitle" json:"packageTitle"`
	PersonCount   int                `bson:"personCount" json:"personCount"`
	Date          string             `bson:"date" json:"date"`
	PersonDetails []PersonDetail     `bson:"personDetails" json:"personDetails"`
	ArrivalPlace  string             `bson:"arrivalPlace" json:"arrivalPlace"`
	PickupNeeded  bool               `bson:"pickupNeeded" json:"pickupNeeded"`
	IsMember      bool               `bson:"isMember" json:"isMember"`
	MembershipID  string             `bson:"membershipId" json:"membershipId"`
	FinalAmount   float64            `bson:"finalAmount" json:"finalAmount"`
	HealthDetails *HealthDetail      `bson:"healthDetails,omitempty" json:"healthDetails,omitempty"`
	BikeDetails   *BikeDetail        `bson:"bikeDetails,omitempty" json:"bikeDetails,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// ValidBookingType reports whether t is one of the supported variants
func ValidBookingType(t string) bool {
	switch t {
	case BookingTypeTour, BookingTypeTrek, BookingTypeBike:
		return true
	}
	return false
}
