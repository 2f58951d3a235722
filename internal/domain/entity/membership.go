package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Membership is a registered member record. UniqueCode is issued once at
// registration and used for later validation lookups together with the
// email. ExpirationNotified flips from false to true exactly once, by the
// expiration scanner.
type Membership struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name               string             `bson:"name" json:"name"`
	DOB                string             `bson:"dob" json:"dob"`
	Mobile             string             `bson:"mobile" json:"mobile"`
	Email              string             `bson:"email" json:"email"`
	Occupation         string             `bson:"occupation" json:"occupation"`
	Address            string             `bson:"address" json:"address"`
	MembershipPlan     string             `bson:"membershipPlan" json:"membershipPlan"`
	Amount             float64            `bson:"amount" json:"amount"`
	StartDate          time.Time          `bson:"startDate" json:"startDate"`
	EndDate            time.Time          `bson:"endDate" json:"endDate"`
	UniqueCode         string             `bson:"uniqueCode" json:"uniqueCode"`
	ExpirationNotified bool               `bson:"expirationNotified" json:"expirationNotified"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}
