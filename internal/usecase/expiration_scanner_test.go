package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/entity"
	"github.com/AbdurRahman-05/wetreck-backend/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newScanner(repo *fakeMembershipRepo, mail *fakeMailer) *ExpirationScanner {
	return NewExpirationScanner(repo, mail, adminAddr, logger.NewNop(), nil)
}

func member(email string, endDate time.Time, notified bool) *entity.Membership {
	return &entity.Membership{
		ID:                 primitive.NewObjectID(),
		Name:               "Member " + email,
		Email:              email,
		MembershipPlan:     "2 Years Membership",
		EndDate:            endDate,
		ExpirationNotified: notified,
	}
}

func TestRunOnceNotifiesAndMarksExpired(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	nextMonth := time.Now().AddDate(0, 1, 0)

	expired := member("lapsed@example.com", yesterday, false)
	active := member("active@example.com", nextMonth, false)
	alreadyNotified := member("done@example.com", yesterday.AddDate(0, -1, 0), true)

	repo := &fakeMembershipRepo{members: []*entity.Membership{expired, active, alreadyNotified}}
	mail := &fakeMailer{}
	scanner := newScanner(repo, mail)

	if err := scanner.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := repo.lastCutoff, startOfDay(time.Now()); !got.Equal(want) {
		t.Errorf("cutoff %v, want local midnight %v", got, want)
	}

	// One user notice plus one admin notice, for the single eligible record
	if len(mail.sent) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(mail.sent))
	}
	if mail.sent[0].to != "lapsed@example.com" || mail.sent[0].subject != "Your Membership Has Expired" {
		t.Errorf("unexpected user notice %+v", mail.sent[0])
	}
	if mail.sent[1].to != adminAddr || mail.sent[1].subject != "Membership Expired for Member lapsed@example.com" {
		t.Errorf("unexpected admin notice %+v", mail.sent[1])
	}

	if len(repo.marked) != 1 || repo.marked[0] != expired.ID.Hex() {
		t.Fatalf("expected only the expired record marked, got %v", repo.marked)
	}
	if !expired.ExpirationNotified {
		t.Error("expired record flag not flipped")
	}
}

func TestRunOnceIdempotentForNotifiedRecords(t *testing.T) {
	expired := member("lapsed@example.com", time.Now().AddDate(0, 0, -2), false)
	repo := &fakeMembershipRepo{members: []*entity.Membership{expired}}
	mail := &fakeMailer{}
	scanner := newScanner(repo, mail)

	if err := scanner.RunOnce(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := scanner.RunOnce(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	// The second run must not re-select the record
	if len(mail.sent) != 2 {
		t.Fatalf("expected 2 emails across both runs, got %d", len(mail.sent))
	}
	if len(repo.marked) != 1 {
		t.Fatalf("expected a single mark, got %v", repo.marked)
	}
}

func TestRunOnceContinuesAfterSendFailure(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	broken := member("bounce@example.com", yesterday, false)
	healthy := member("ok@example.com", yesterday, false)

	repo := &fakeMembershipRepo{members: []*entity.Membership{broken, healthy}}
	mail := &fakeMailer{failTo: map[string]error{"bounce@example.com": errors.New("mailbox unavailable")}}
	scanner := newScanner(repo, mail)

	if err := scanner.RunOnce(context.Background()); err != nil {
		t.Fatalf("a single failed record must not abort the scan: %v", err)
	}

	// The failed record is left unmarked so the next run retries it
	if broken.ExpirationNotified {
		t.Error("failed record must stay un-notified")
	}
	if !healthy.ExpirationNotified {
		t.Error("healthy record should have been notified and marked")
	}
	if len(repo.marked) != 1 || repo.marked[0] != healthy.ID.Hex() {
		t.Fatalf("expected only the healthy record marked, got %v", repo.marked)
	}
}

func TestRunOnceContinuesAfterMarkFailure(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	first := member("first@example.com", yesterday, false)
	second := member("second@example.com", yesterday, false)

	repo := &fakeMembershipRepo{
		members:   []*entity.Membership{first, second},
		markErrOn: map[string]error{first.ID.Hex(): errors.New("write conflict")},
	}
	mail := &fakeMailer{}
	scanner := newScanner(repo, mail)

	if err := scanner.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both records were emailed; only the second was marked
	if len(mail.sent) != 4 {
		t.Fatalf("expected 4 emails, got %d", len(mail.sent))
	}
	if len(repo.marked) != 1 || repo.marked[0] != second.ID.Hex() {
		t.Fatalf("expected only the second record marked, got %v", repo.marked)
	}
}

func TestRunOncePropagatesQueryFailure(t *testing.T) {
	repo := &fakeMembershipRepo{findErr: errors.New("cursor timeout")}
	scanner := newScanner(repo, &fakeMailer{})

	err := scanner.RunOnce(context.Background())
	if !errors.Is(err, entity.ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
}

func TestNextMidnight(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 42, 7, 0, time.Local)
	next := nextMidnight(now)

	want := time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local)
	if !next.Equal(want) {
		t.Errorf("nextMidnight(%v) = %v, want %v", now, next, want)
	}
	if got := startOfDay(now); !got.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)) {
		t.Errorf("startOfDay(%v) = %v", now, got)
	}
}
