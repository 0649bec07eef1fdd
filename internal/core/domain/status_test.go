package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

func withStatus(s domain.PropertyStatus) domain.Property {
	return approved("x", func(p *domain.Property) { p.Status = s })
}

func TestPropertyTransitions(t *testing.T) {
	all := []domain.PropertyStatus{domain.StatusPending, domain.StatusApproved, domain.StatusRejected, domain.StatusArchived}

	type action struct {
		name    string
		run     func(p *domain.Property) error
		allowed map[domain.PropertyStatus]domain.PropertyStatus
	}
	actions := []action{
		{
			name:    "approve",
			run:     (*domain.Property).Approve,
			allowed: map[domain.PropertyStatus]domain.PropertyStatus{domain.StatusPending: domain.StatusApproved},
		},
		{
			name:    "reject",
			run:     func(p *domain.Property) error { return p.Reject("Blurry photos") },
			allowed: map[domain.PropertyStatus]domain.PropertyStatus{domain.StatusPending: domain.StatusRejected},
		},
		{
			name: "archive",
			run:  (*domain.Property).Archive,
			allowed: map[domain.PropertyStatus]domain.PropertyStatus{
				domain.StatusPending:  domain.StatusArchived,
				domain.StatusApproved: domain.StatusArchived,
				domain.StatusRejected: domain.StatusArchived,
			},
		},
		{
			name: "resubmit",
			run:  (*domain.Property).Resubmit,
			allowed: map[domain.PropertyStatus]domain.PropertyStatus{
				domain.StatusRejected: domain.StatusPending,
				domain.StatusArchived: domain.StatusPending,
			},
		},
	}

	for _, a := range actions {
		for _, from := range all {
			t.Run(a.name+" from "+string(from), func(t *testing.T) {
				p := withStatus(from)
				err := a.run(&p)

				to, ok := a.allowed[from]
				if !ok {
					require.Error(t, err)
					assert.ErrorIs(t, err, domain.ErrInvalidTransition)
					assert.Equal(t, from, p.Status, "status must not change on a failed transition")
					return
				}
				require.NoError(t, err)
				assert.Equal(t, to, p.Status)
			})
		}
	}
}

func TestReject_RequiresReason(t *testing.T) {
	p := withStatus(domain.StatusPending)

	err := p.Reject("   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRejectionReasonRequired)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.StatusPending, p.Status)

	require.NoError(t, p.Reject("  Missing documents "))
	assert.Equal(t, "Missing documents", p.RejectionReason)

	var te *domain.TransitionError
	err = p.Reject("again")
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "rejected", te.From)
	assert.Equal(t, domain.ActionReject, te.Action)
}

func TestRejectionReasonClearedOnLeavingRejected(t *testing.T) {
	p := withStatus(domain.StatusPending)
	require.NoError(t, p.Reject("Wrong price"))
	require.NoError(t, p.Resubmit())
	assert.Empty(t, p.RejectionReason)

	require.NoError(t, p.Reject("Wrong price"))
	require.NoError(t, p.Archive())
	assert.Empty(t, p.RejectionReason)
}

func TestInquiryAdvance(t *testing.T) {
	tests := []struct {
		from, to domain.InquiryStatus
		ok       bool
	}{
		{domain.InquiryNew, domain.InquiryContacted, true},
		{domain.InquiryNew, domain.InquiryClosed, true},
		{domain.InquiryContacted, domain.InquiryClosed, true},
		{domain.InquiryContacted, domain.InquiryNew, false},
		{domain.InquiryClosed, domain.InquiryContacted, false},
		{domain.InquiryNew, domain.InquiryNew, false},
		{domain.InquiryNew, domain.InquiryStatus("spam"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			inq := domain.Inquiry{Status: tt.from}
			err := inq.Advance(tt.to)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.to, inq.Status)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			assert.Equal(t, tt.from, inq.Status)
		})
	}
}

func TestInquiryInputValidate(t *testing.T) {
	valid := domain.InquiryInput{PropertyID: "1", Name: "Ravi", Email: "ravi@example.com", Phone: "+91 98765 43210", Message: "Is it available?"}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Email = "not-an-email"
	bad.Message = " "
	err := bad.Validate()
	require.ErrorIs(t, err, domain.ErrValidation)

	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "email")
	assert.Contains(t, verrs, "message")
	assert.NotContains(t, verrs, "name")
}
