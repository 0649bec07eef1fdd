package domain

import "strings"

const (
	ActionApprove  = "approve"
	ActionReject   = "reject"
	ActionArchive  = "archive"
	ActionResubmit = "resubmit"
)

func (p *Property) transitionError(action string, cause error) error {
	return &TransitionError{Entity: "property", From: string(p.Status), Action: action, Cause: cause}
}

// Approve: pending -> approved
func (p *Property) Approve() error {
	if p.Status != StatusPending {
		return p.transitionError(ActionApprove, nil)
	}
	p.Status = StatusApproved
	p.RejectionReason = ""
	return nil
}

// Reject: pending -> rejected, причина обязательна и сохраняется в объявлении.
func (p *Property) Reject(reason string) error {
	if p.Status != StatusPending {
		return p.transitionError(ActionReject, nil)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return p.transitionError(ActionReject, ErrRejectionReasonRequired)
	}
	p.Status = StatusRejected
	p.RejectionReason = reason
	return nil
}

// Archive: pending/approved/rejected -> archived
func (p *Property) Archive() error {
	switch p.Status {
	case StatusPending, StatusApproved, StatusRejected:
	default:
		return p.transitionError(ActionArchive, nil)
	}
	p.Status = StatusArchived
	p.RejectionReason = ""
	return nil
}

// Resubmit - явный возврат отклоненного или архивного объявления на модерацию.
// Автоматически в pending объявление не возвращается никогда.
func (p *Property) Resubmit() error {
	if p.Status != StatusRejected && p.Status != StatusArchived {
		return p.transitionError(ActionResubmit, nil)
	}
	p.Status = StatusPending
	p.RejectionReason = ""
	return nil
}
