package domain

import (
	"net/mail"
	"strings"
	"time"
)

type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "new"
	InquiryContacted InquiryStatus = "contacted"
	InquiryClosed    InquiryStatus = "closed"
)

var inquiryStatusRank = map[InquiryStatus]int{
	InquiryNew:       0,
	InquiryContacted: 1,
	InquiryClosed:    2,
}

func (s InquiryStatus) IsValid() bool {
	_, ok := inquiryStatusRank[s]
	return ok
}

// Inquiry - заявка покупателя по объявлению.
type Inquiry struct {
	ID         string        `json:"id"`
	PropertyID string        `json:"propertyId"`
	BuyerID    string        `json:"buyerId,omitempty"`
	BuyerName  string        `json:"buyerName"`
	BuyerEmail string        `json:"buyerEmail"`
	BuyerPhone string        `json:"buyerPhone"`
	Message    string        `json:"message"`
	Status     InquiryStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// Advance переводит заявку вперед: new -> contacted -> closed (можно и сразу в closed).
func (i *Inquiry) Advance(to InquiryStatus) error {
	if !to.IsValid() || inquiryStatusRank[to] <= inquiryStatusRank[i.Status] {
		return &TransitionError{Entity: "inquiry", From: string(i.Status), Action: "move to " + string(to)}
	}
	i.Status = to
	return nil
}

// InquiryInput - данные формы обратной связи.
type InquiryInput struct {
	PropertyID string
	BuyerID    string
	Name       string
	Email      string
	Phone      string
	Message    string
}

func (in InquiryInput) Validate() error {
	errs := ValidationErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(in.Email) == "" {
		errs["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		errs["email"] = "Invalid email address"
	}
	if strings.TrimSpace(in.Phone) == "" {
		errs["phone"] = "Phone is required"
	}
	if strings.TrimSpace(in.Message) == "" {
		errs["message"] = "Message is required"
	}
	return errs.OrNil()
}
