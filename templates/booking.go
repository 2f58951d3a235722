package templates

import (
	"fmt"
	"strings"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/entity"
)

// BookingConfirmation builds the HTML summary mailed to the submitter and
// the administrator after a booking is saved
func BookingConfirmation(b *entity.Booking) string {
	var sb strings.Builder

	sb.WriteString("<h1>Booking Details</h1>")
	fmt.Fprintf(&sb, "<p>Package: %s</p>", b.PackageTitle)
	fmt.Fprintf(&sb, "<p>Date: %s</p>", b.Date)
	fmt.Fprintf(&sb, "<p>Persons: %d</p>", b.PersonCount)
	fmt.Fprintf(&sb, "<p>Arrival Place: %s</p>", b.ArrivalPlace)
	fmt.Fprintf(&sb, "<p>Pickup Needed: %s</p>", yesNo(b.PickupNeeded))
	sb.WriteString("<h3>Person Details:</h3>")
	writePersonList(&sb, b.PersonDetails)

	return sb.String()
}

// AdminBookingNotice builds the pickup-request notice body for the
// send-admin-email endpoint
func AdminBookingNotice(subject, packageTitle string, personCount int, date, arrivalPlace string, pickupNeeded bool, persons []entity.PersonDetail) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<h1>%s</h1>", subject)
	sb.WriteString("<p>A new booking has been made with a pickup request.</p>")
	sb.WriteString("<h2>Booking Details:</h2>")
	sb.WriteString("<ul>")
	fmt.Fprintf(&sb, "<li>Package: %s</li>", packageTitle)
	fmt.Fprintf(&sb, "<li>Persons: %d</li>", personCount)
	fmt.Fprintf(&sb, "<li>Date: %s</li>", date)
	fmt.Fprintf(&sb, "<li>Arrival Place: %s</li>", arrivalPlace)
	fmt.Fprintf(&sb, "<li>Pickup Needed: %s</li>", yesNo(pickupNeeded))
	sb.WriteString("</ul>")
	sb.WriteString("<h3>Person Details:</h3>")
	writePersonList(&sb, persons)

	return sb.String()
}

func writePersonList(sb *strings.Builder, persons []entity.PersonDetail) {
	for _, person := range persons {
		sb.WriteString("<ul>")
		fmt.Fprintf(sb, "<li>Name: %s</li>", person.Name)
		fmt.Fprintf(sb, "<li>Age: %s</li>", person.Age)
		fmt.Fprintf(sb, "<li>Relation: %s</li>", person.Relation)
		fmt.Fprintf(sb, "<li>Occupation: %s</li>", person.Occupation)
		fmt.Fprintf(sb, "<li>Phone: %s</li>", person.Phone)
		fmt.Fprintf(sb, "<li>Email: %s</li>", person.Email)
		fmt.Fprintf(sb, "<li>City: %s</li>", person.City)
		fmt.Fprintf(sb, "<li>State: %s</li>", person.State)
		sb.WriteString("</ul>")
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
