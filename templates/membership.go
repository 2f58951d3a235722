package templates

import (
	"fmt"
	"strings"
	"time"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/entity"
)

const dateLayout = "02/01/2006"

// PlanDetails builds the plan description block shared by the admin
// notification and the member welcome email. rawPlan is the plan string as
// submitted; the bucket decides which canonical description is used.
func PlanDetails(bucket entity.PlanBucket, rawPlan string, startDate, endDate time.Time) string {
	switch bucket {
	case entity.PlanTwoYear:
		var sb strings.Builder
		sb.WriteString("<h3>Selected Plan: 2 Years Membership</h3>")
		sb.WriteString("<p><strong>Amount:</strong> ₹299</p>")
		sb.WriteString("<ul>")
		sb.WriteString("<li>Valid for 2 years</li>")
		sb.WriteString("<li>Exclusive trek and bike ride offers</li>")
		sb.WriteString("<li>Priority booking for popular treks</li>")
		sb.WriteString("<li>Access to member-only events and webinars</li>")
		sb.WriteString("<li>Personalized gear consultation</li>")
		sb.WriteString("<li>Digital membership card</li>")
		sb.WriteString("</ul>")
		if !startDate.IsZero() && !endDate.IsZero() {
			fmt.Fprintf(&sb, "<p><strong>Start Date:</strong> %s</p>", startDate.Format(dateLayout))
			fmt.Fprintf(&sb, "<p><strong>End Date:</strong> %s</p>", endDate.Format(dateLayout))
		}
		return sb.String()

	case entity.PlanLifetime:
		var sb strings.Builder
		sb.WriteString("<h3>Selected Plan: Lifetime Membership</h3>")
		sb.WriteString("<p><strong>Amount:</strong> ₹999</p>")
		sb.WriteString("<ul>")
		sb.WriteString("<li>Lifetime exclusive discounts on all treks</li>")
		sb.WriteString("<li>Free annual trek (one per year)</li>")
		sb.WriteString("<li>Dedicated trek consultant for planning</li>")
		sb.WriteString("<li>VIP access to member events and expeditions</li>")
		sb.WriteString("<li>Physical and digital membership card</li>")
		sb.WriteString("<li>Special recognition in our community</li>")
		sb.WriteString("</ul>")
		return sb.String()

	case entity.PlanCustom:
		return fmt.Sprintf("<h3>Selected Plan: %s</h3>", rawPlan)
	}

	return "<p><strong>No plan was selected.</strong></p>"
}

// AdminMembershipNotice builds the registration notification sent to the
// administrator
func AdminMembershipNotice(m *entity.Membership, planDetails string) string {
	var sb strings.Builder

	sb.WriteString("<h1>New Membership Registration</h1>")
	sb.WriteString("<p>A new user has registered with the following details:</p>")
	sb.WriteString("<ul>")
	fmt.Fprintf(&sb, "<li>Name: %s</li>", m.Name)
	fmt.Fprintf(&sb, "<li>Date of Birth: %s</li>", m.DOB)
	fmt.Fprintf(&sb, "<li>Mobile: %s</li>", m.Mobile)
	fmt.Fprintf(&sb, "<li>Email: %s</li>", m.Email)
	fmt.Fprintf(&sb, "<li>Occupation: %s</li>", m.Occupation)
	fmt.Fprintf(&sb, "<li>Address: %s</li>", m.Address)
	fmt.Fprintf(&sb, "<li>Unique Code: %s</li>", m.UniqueCode)
	sb.WriteString("</ul>")
	sb.WriteString("<h2>Selected Membership Plan</h2>")
	sb.WriteString(planDetails)

	return sb.String()
}

// MemberWelcome builds the welcome email sent to the registrant. The amount
// line reuses the same classification as planDetails.
func MemberWelcome(m *entity.Membership, planDetails, amountLabel string) string {
	var sb strings.Builder

	sb.WriteString("<h1>Welcome to wetreck membership plan!</h1>")
	sb.WriteString("<p>Thank you for registering for our membership.</p>")
	fmt.Fprintf(&sb, "<p>Your Unique Membership Code is: <strong>%s</strong></p>", m.UniqueCode)
	sb.WriteString("<h2>Your Selected Plan</h2>")
	sb.WriteString(planDetails)
	fmt.Fprintf(&sb, "<p>Your chosen plan amount is: %s.</p>", amountLabel)
	sb.WriteString("<p>We are excited to have you on board.</p>")

	return sb.String()
}

// MembershipExpiredUser builds the expiration notice sent to the member
func MembershipExpiredUser(m *entity.Membership) string {
	return fmt.Sprintf(
		"<h1>Your Membership Has Expired</h1><p>Hi %s, your %s has expired on %s. Please renew to continue enjoying the benefits.</p>",
		m.Name, m.MembershipPlan, m.EndDate.Format(dateLayout))
}

// MembershipExpiredAdmin builds the expiration notice sent to the administrator
func MembershipExpiredAdmin(m *entity.Membership) string {
	return fmt.Sprintf(
		"<h1>Membership Expired</h1><p>The membership for %s (%s) has expired on %s.</p>",
		m.Name, m.Email, m.EndDate.Format(dateLayout))
}
