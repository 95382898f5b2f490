package service

import (
	"regexp"
	"sort"
	"strings"

	"github.com/bloomshine/storefront/internal/models"
)

// The intake endpoint enforces the same field rules as the purchase form.
// The form check runs in an untrusted client, so it cannot be relied on.
var (
	phonePattern = regexp.MustCompile(`^\d{10,}$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// ValidationError reports every field that failed its rule.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return strings.Join(parts, "; ")
}

// validateOrder checks an incoming order payload. Quantity and price are
// range-checked explicitly rather than treated as present/absent, so a
// quantity of 0 is reported as out of range, never as a missing field.
func validateOrder(req models.OrderRequest) *ValidationError {
	errs := map[string]string{}

	if req.FirstName == "" {
		errs["firstName"] = "first name required"
	}
	if req.SecondName == "" {
		errs["secondName"] = "second name required"
	}
	if !phonePattern.MatchString(req.Phone) {
		errs["phone"] = "valid phone required"
	}
	if !emailPattern.MatchString(req.Email) {
		errs["email"] = "valid email required"
	}
	if req.City == "" {
		errs["city"] = "city required"
	}
	if req.Town == "" {
		errs["town"] = "town required"
	}
	if req.Address1 == "" {
		errs["address1"] = "address line 1 required"
	}
	if req.Quantity < 1 {
		errs["quantity"] = "quantity must be at least 1"
	}
	if req.Price <= 0 {
		errs["price"] = "price must be positive"
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: errs}
}
