package usecase

import (
	"context"
	"time"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/entity"
)

type fakeBookingRepo struct {
	saved []*entity.Booking
	err   error
}

func (f *fakeBookingRepo) Save(ctx context.Context, booking *entity.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, booking)
	return nil
}

type fakeMembershipRepo struct {
	members    []*entity.Membership
	saveErr    error
	findErr    error
	markErrOn  map[string]error
	marked     []string
	lastCutoff time.Time
}

func (f *fakeMembershipRepo) Save(ctx context.Context, member *entity.Membership) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.members = append(f.members, member)
	return nil
}

func (f *fakeMembershipRepo) FindAll(ctx context.Context) ([]*entity.Membership, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.members, nil
}

func (f *fakeMembershipRepo) FindByEmailAndCode(ctx context.Context, email, uniqueCode string) (*entity.Membership, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, m := range f.members {
		if m.Email == email && m.UniqueCode == uniqueCode {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMembershipRepo) FindExpired(ctx context.Context, cutoff time.Time) ([]*entity.Membership, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.lastCutoff = cutoff
	var expired []*entity.Membership
	for _, m := range f.members {
		if m.EndDate.Before(cutoff) && !m.ExpirationNotified {
			expired = append(expired, m)
		}
	}
	return expired, nil
}

func (f *fakeMembershipRepo) MarkExpirationNotified(ctx context.Context, id string) error {
	if err, ok := f.markErrOn[id]; ok {
		return err
	}
	f.marked = append(f.marked, id)
	for _, m := range f.members {
		if m.ID.Hex() == id {
			m.ExpirationNotified = true
		}
	}
	return nil
}

type sentEmail struct {
	to      string
	subject string
	html    string
}

type fakeMailer struct {
	sent   []sentEmail
	err    error
	failTo map[string]error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if f.err != nil {
		return f.err
	}
	if err, ok := f.failTo[to]; ok {
		return err
	}
	f.sent = append(f.sent, sentEmail{to: to, subject: subject, html: htmlBody})
	return nil
}
