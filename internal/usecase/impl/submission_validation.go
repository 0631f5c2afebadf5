package impl

import (
	"strconv"
	"strings"
	"time"

	"caftan/internal/domain/entity"
	domainerrors "caftan/internal/domain/errors"
)

// buildSubmission turns the untyped request payload into a validated,
// fully tagged record. The tag decides the validator; a payload that
// fails its validator never becomes a Submission at all.
func buildSubmission(raw map[string]any, submittedAt time.Time) (*entity.Submission, error) {
	formType := entity.FormType(stringField(raw, "formType"))
	if !formType.IsValid() {
		return nil, domainerrors.ErrInvalidFormType
	}

	base := entity.SubmissionBase{
		FirstName:   strings.TrimSpace(stringField(raw, "firstName")),
		LastName:    strings.TrimSpace(stringField(raw, "lastName")),
		Email:       strings.TrimSpace(stringField(raw, "email")),
		Message:     stringField(raw, "message"),
		Newsletter:  booleanField(raw, "newsletter"),
		Locale:      stringField(raw, "locale"),
		SubmittedAt: submittedAt,
	}

	sub := &entity.Submission{FormType: formType, SubmissionBase: base}

	var missing []string
	switch formType {
	case entity.FormTypeOrder:
		sub.Order = orderDetails(raw)
		missing = validateOrder(sub)
	case entity.FormTypePartner:
		sub.Partner = partnerDetails(raw)
		missing = validatePartner(sub)
	case entity.FormTypeGeneral:
		missing = validateGeneral(sub)
	}

	if len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			string(formType) + " form is missing required fields: " + strings.Join(missing, ", "),
		)
	}

	return sub, nil
}

// validateGeneral requires the shared base fields.
func validateGeneral(sub *entity.Submission) []string {
	var missing []string
	if sub.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if sub.LastName == "" {
		missing = append(missing, "lastName")
	}
	if sub.Email == "" {
		missing = append(missing, "email")
	}

	return missing
}

// validateOrder shares the base requirements with general.
func validateOrder(sub *entity.Submission) []string {
	return validateGeneral(sub)
}

// validatePartner additionally requires the shop name and city.
func validatePartner(sub *entity.Submission) []string {
	missing := validateGeneral(sub)
	if sub.Partner.ShopName == "" {
		missing = append(missing, "shopName")
	}
	if sub.Partner.ShopCity == "" {
		missing = append(missing, "shopCity")
	}

	return missing
}

func orderDetails(raw map[string]any) *entity.OrderDetails {
	return &entity.OrderDetails{
		ProductName:     stringField(raw, "productName"),
		ProductPrice:    stringField(raw, "productPrice"),
		ProductImage:    stringField(raw, "productImage"),
		Size:            stringField(raw, "size"),
		Color:           stringField(raw, "color"),
		Quantity:        quantityField(raw),
		ShopSlug:        stringField(raw, "shopSlug"),
		ProductSlug:     stringField(raw, "productSlug"),
		DeliveryAddress: stringField(raw, "deliveryAddress"),
		Phone:           stringField(raw, "phone"),
		WhatsApp:        stringField(raw, "whatsapp"),
		Instagram:       stringField(raw, "instagram"),
	}
}

func partnerDetails(raw map[string]any) *entity.PartnerDetails {
	return &entity.PartnerDetails{
		ShopName:     strings.TrimSpace(stringField(raw, "shopName")),
		ShopCity:     strings.TrimSpace(stringField(raw, "shopCity")),
		Neighborhood: stringField(raw, "neighborhood"),
		Address:      stringField(raw, "address"),
		Phone:        stringField(raw, "phone"),
		WhatsApp:     stringField(raw, "whatsapp"),
		Instagram:    stringField(raw, "instagram"),
		Website:      stringField(raw, "website"),
		Description:  stringField(raw, "description"),
	}
}

// stringField coerces an optional field to string; anything that is not
// a string is treated as absent.
func stringField(raw map[string]any, key string) string {
	v, _ := raw[key].(string)

	return v
}

func booleanField(raw map[string]any, key string) bool {
	v, _ := raw[key].(bool)

	return v
}

// quantityField accepts a JSON number or a numeric string, defaulting
// to one.
func quantityField(raw map[string]any) int {
	switch v := raw["quantity"].(type) {
	case float64:
		if v >= 1 {
			return int(v)
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			return n
		}
	}

	return 1
}
