// Package entity contains the core business objects of the project.
package entity

import "time"

// FormType discriminates the contact submission payload.
type FormType string

const (
	// FormTypeOrder is a product order placed through the contact form.
	FormTypeOrder FormType = "order"
	// FormTypePartner is a boutique partnership application.
	FormTypePartner FormType = "partner"
	// FormTypeGeneral is a plain contact message.
	FormTypeGeneral FormType = "general"
)

// String returns the string representation of the FormType.
func (f FormType) String() string {
	return string(f)
}

// IsValid checks if the FormType is a known tag.
func (f FormType) IsValid() bool {
	switch f {
	case FormTypeOrder, FormTypePartner, FormTypeGeneral:
		return true
	default:
		return false
	}
}

// SubmissionBase holds the fields shared by every form type.
type SubmissionBase struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Message     string    `json:"message,omitempty"`
	Newsletter  bool      `json:"newsletter"`
	Locale      string    `json:"locale"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// OrderDetails is the extension payload of an order submission.
type OrderDetails struct {
	ProductName     string `json:"productName"`
	ProductPrice    string `json:"productPrice"`
	ProductImage    string `json:"productImage"`
	Size            string `json:"size"`
	Color           string `json:"color"`
	Quantity        int    `json:"quantity"`
	ShopSlug        string `json:"shopSlug"`
	ProductSlug     string `json:"productSlug"`
	DeliveryAddress string `json:"deliveryAddress"`
	Phone           string `json:"phone"`
	WhatsApp        string `json:"whatsapp,omitempty"`
	Instagram       string `json:"instagram,omitempty"`
}

// PartnerDetails is the extension payload of a partnership application.
type PartnerDetails struct {
	ShopName     string `json:"shopName"`
	ShopCity     string `json:"shopCity"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	WhatsApp     string `json:"whatsapp,omitempty"`
	Instagram    string `json:"instagram,omitempty"`
	Website      string `json:"website,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Submission is a validated contact submission. The tag fully determines
// which extension is present: exactly one of Order/Partner is non-nil
// for the order and partner tags, both are nil for general. A Submission
// is only constructed after its tag validator passes.
type Submission struct {
	FormType FormType `json:"formType"`
	SubmissionBase
	Order   *OrderDetails   `json:"order,omitempty"`
	Partner *PartnerDetails `json:"partner,omitempty"`
}

// Collection returns the content-store collection submissions of this
// form type are written into. General messages have no collection;
// their store write is skipped.
func (f FormType) Collection() string {
	switch f {
	case FormTypeOrder:
		return "orders"
	case FormTypePartner:
		return "partners"
	default:
		return ""
	}
}

// Collection returns the content-store collection the submission is
// written into. General messages have no collection; their store write
// is skipped.
func (s Submission) Collection() string {
	return s.FormType.Collection()
}
