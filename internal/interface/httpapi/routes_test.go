package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/entity"
	"github.com/AbdurRahman-05/wetreck-backend/internal/usecase"
	"github.com/AbdurRahman-05/wetreck-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type stubBookingRepo struct {
	saved []*entity.Booking
	err   error
}

func (s *stubBookingRepo) Save(ctx context.Context, booking *entity.Booking) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, booking)
	return nil
}

type stubMembershipRepo struct {
	members []*entity.Membership
	saveErr error
}

func (s *stubMembershipRepo) Save(ctx context.Context, member *entity.Membership) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.members = append(s.members, member)
	return nil
}

func (s *stubMembershipRepo) FindAll(ctx context.Context) ([]*entity.Membership, error) {
	return s.members, nil
}

func (s *stubMembershipRepo) FindByEmailAndCode(ctx context.Context, email, uniqueCode string) (*entity.Membership, error) {
	for _, m := range s.members {
		if m.Email == email && m.UniqueCode == uniqueCode {
			return m, nil
		}
	}
	return nil, nil
}

func (s *stubMembershipRepo) FindExpired(ctx context.Context, cutoff time.Time) ([]*entity.Membership, error) {
	return nil, nil
}

func (s *stubMembershipRepo) MarkExpirationNotified(ctx context.Context, id string) error {
	return nil
}

type stubMailer struct {
	sent int
	err  error
}

func (s *stubMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if s.err != nil {
		return s.err
	}
	s.sent++
	return nil
}

type stubGateway struct {
	order    *entity.PaymentOrder
	orderErr error
	verifyOK bool
}

func (s *stubGateway) CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*entity.PaymentOrder, error) {
	if s.orderErr != nil {
		return nil, s.orderErr
	}
	return s.order, nil
}

func (s *stubGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return s.verifyOK
}

type testDeps struct {
	bookingRepo    *stubBookingRepo
	membershipRepo *stubMembershipRepo
	mail           *stubMailer
	gateway        *stubGateway
}

func newTestApp(deps testDeps) *fiber.App {
	log := logger.NewNop()
	if deps.bookingRepo == nil {
		deps.bookingRepo = &stubBookingRepo{}
	}
	if deps.membershipRepo == nil {
		deps.membershipRepo = &stubMembershipRepo{}
	}
	if deps.mail == nil {
		deps.mail = &stubMailer{}
	}
	if deps.gateway == nil {
		deps.gateway = &stubGateway{}
	}

	bookingService := usecase.NewBookingService(deps.bookingRepo, deps.mail, "admin@wetreck.in", log, nil)
	membershipService := usecase.NewMembershipService(deps.membershipRepo, deps.mail, "admin@wetreck.in", log, nil)

	app := fiber.New()
	SetupRoutes(app, bookingService, membershipService, deps.gateway, log)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var decoded map[string]interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("invalid JSON response %q: %v", raw, err)
		}
	}
	return resp.StatusCode, decoded
}

func TestCreateBookingEndpoint(t *testing.T) {
	repo := &stubBookingRepo{}
	mail := &stubMailer{}
	app := newTestApp(testDeps{bookingRepo: repo, mail: mail})

	body := `{
		"bookingType": "trek",
		"packageTitle": "Kedarkantha Trek",
		"personCount": 1,
		"date": "2026-10-04",
		"personDetails": [{"name": "Asha", "email": "asha@example.com"}],
		"healthDetails": {"pastInjuries": "none"}
	}`

	status, resp := postJSON(t, app, "/api/v2/booking", body)
	if status != fiber.StatusOK {
		t.Fatalf("status %d, body %v", status, resp)
	}
	if resp["message"] != "Booking info received, saved, and emails sent." {
		t.Errorf("unexpected message %q", resp["message"])
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected one saved booking, got %d", len(repo.saved))
	}
	if mail.sent != 2 {
		t.Errorf("expected 2 emails, got %d", mail.sent)
	}
}

func TestCreateBookingEndpointInvalidType(t *testing.T) {
	repo := &stubBookingRepo{}
	app := newTestApp(testDeps{bookingRepo: repo})

	status, resp := postJSON(t, app, "/api/v2/booking", `{"bookingType": "cruise"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status %d, body %v", status, resp)
	}
	if resp["error"] != "Invalid booking type" {
		t.Errorf("unexpected error %q", resp["error"])
	}
	if len(repo.saved) != 0 {
		t.Error("invalid booking must not be persisted")
	}
}

func TestCreateBookingEndpointEmailFailure(t *testing.T) {
	repo := &stubBookingRepo{}
	app := newTestApp(testDeps{bookingRepo: repo, mail: &stubMailer{err: errors.New("provider down")}})

	status, resp := postJSON(t, app, "/api/v2/booking",
		`{"bookingType": "tour", "packageTitle": "Goa Getaway"}`)
	if status != fiber.StatusOK {
		t.Fatalf("status %d, body %v", status, resp)
	}
	if resp["message"] != "Booking info saved, but failed to send emails." {
		t.Errorf("unexpected message %q", resp["message"])
	}
	if len(repo.saved) != 1 {
		t.Error("booking must persist despite email failure")
	}
}

func TestRegisterMembershipEndpoint(t *testing.T) {
	repo := &stubMembershipRepo{}
	app := newTestApp(testDeps{membershipRepo: repo})

	body := `{
		"name": "Meera Joshi",
		"email": "meera@example.com",
		"membershipPlan": "299",
		"startDate": "2026-09-01T00:00:00Z",
		"endDate": "2028-09-01T00:00:00Z"
	}`

	status, resp := postJSON(t, app, "/api/membership", body)
	if status != fiber.StatusOK {
		t.Fatalf("status %d, body %v", status, resp)
	}
	if resp["message"] != "Membership info received, saved, and emails sent." {
		t.Errorf("unexpected message %q", resp["message"])
	}
	if len(repo.members) != 1 || repo.members[0].UniqueCode == "" {
		t.Fatalf("membership not saved with a code: %+v", repo.members)
	}
}

func TestRegisterMembershipEndpointRejectsBadEmail(t *testing.T) {
	repo := &stubMembershipRepo{}
	app := newTestApp(testDeps{membershipRepo: repo})

	status, _ := postJSON(t, app, "/api/membership", `{"name": "Meera", "email": "not-an-email"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if len(repo.members) != 0 {
		t.Error("invalid request must not be persisted")
	}
}

func TestValidateMembershipEndpoint(t *testing.T) {
	repo := &stubMembershipRepo{members: []*entity.Membership{{
		Name:       "Meera Joshi",
		Email:      "meera@example.com",
		UniqueCode: "AB12CD34",
	}}}
	app := newTestApp(testDeps{membershipRepo: repo})

	status, resp := postJSON(t, app, "/api/validate-membership",
		`{"email": "meera@example.com", "membershipId": "AB12CD34"}`)
	if status != fiber.StatusOK {
		t.Fatalf("status %d, body %v", status, resp)
	}
	if resp["isValid"] != true {
		t.Fatalf("expected a valid membership, got %v", resp)
	}

	status, resp = postJSON(t, app, "/api/validate-membership",
		`{"email": "meera@example.com", "membershipId": "WRONGCOD"}`)
	if status != fiber.StatusOK {
		t.Fatalf("status %d, body %v", status, resp)
	}
	if resp["isValid"] != false || resp["message"] != "Invalid membership ID or email" {
		t.Errorf("unexpected miss response %v", resp)
	}
}

func TestListUsersEndpoint(t *testing.T) {
	repo := &stubMembershipRepo{members: []*entity.Membership{
		{Name: "Meera Joshi", Email: "meera@example.com"},
		{Name: "Arun Nair", Email: "arun@example.com"},
	}}
	app := newTestApp(testDeps{membershipRepo: repo})

	req := httptest.NewRequest("GET", "/api/users", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var members []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&members); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	gateway := &stubGateway{order: &entity.PaymentOrder{
		OrderID:  "order_Nf2qPz8XkTmAbC",
		Amount:   29900,
		Currency: "INR",
		Status:   "created",
	}}
	app := newTestApp(testDeps{gateway: gateway})

	status, resp := postJSON(t, app, "/api/payment/order", `{"amount": 299}`)
	if status != fiber.StatusOK {
		t.Fatalf("status %d, body %v", status, resp)
	}
	if resp["id"] != "order_Nf2qPz8XkTmAbC" {
		t.Errorf("unexpected order id %v", resp["id"])
	}

	status, _ = postJSON(t, app, "/api/payment/order", `{"amount": 0}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("zero amount must be rejected, got %d", status)
	}
}

func TestVerifyPaymentEndpoint(t *testing.T) {
	app := newTestApp(testDeps{gateway: &stubGateway{verifyOK: true}})

	body := `{"order_id": "order_a", "payment_id": "pay_b", "signature": "deadbeef"}`
	status, resp := postJSON(t, app, "/api/payment/verify", body)
	if status != fiber.StatusOK {
		t.Fatalf("status %d, body %v", status, resp)
	}
	if resp["success"] != true || resp["message"] != "Payment has been verified" {
		t.Errorf("unexpected response %v", resp)
	}

	rejecting := newTestApp(testDeps{gateway: &stubGateway{verifyOK: false}})
	status, resp = postJSON(t, rejecting, "/api/payment/verify", body)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status %d, body %v", status, resp)
	}
	if resp["success"] != false {
		t.Errorf("unexpected response %v", resp)
	}

	status, _ = postJSON(t, rejecting, "/api/payment/verify", `{"order_id": "order_a"}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("missing fields must be rejected, got %d", status)
	}
}

func TestSendAdminEmailEndpoint(t *testing.T) {
	mail := &stubMailer{}
	app := newTestApp(testDeps{mail: mail})

	body := `{
		"subject": "Pickup Request",
		"recipient": "ops@wetreck.in",
		"packageTitle": "Valley of Flowers",
		"personCount": 1,
		"pickupNeeded": true
	}`
	status, resp := postJSON(t, app, "/api/v2/send-admin-email", body)
	if status != fiber.StatusOK {
		t.Fatalf("status %d, body %v", status, resp)
	}
	if resp["message"] != "Admin email sent successfully" {
		t.Errorf("unexpected message %q", resp["message"])
	}
	if mail.sent != 1 {
		t.Errorf("expected one email, got %d", mail.sent)
	}

	status, _ = postJSON(t, app, "/api/v2/send-admin-email", `{"subject": "no recipient"}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("missing recipient must be rejected, got %d", status)
	}
}
