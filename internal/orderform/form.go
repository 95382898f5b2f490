// Package orderform holds the purchase form state machine: a mutable draft
// of the order, local field validation, a quantity stepper, and a single
// submit against the intake endpoint. It backs the storefront's purchase
// drawer and can be driven from any frontend or test harness.
package orderform

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"time"

	"github.com/bloomshine/storefront/internal/models"
)

const (
	minQuantity = 1

	// DefaultSuccessNotice is how long the success notice stays visible
	// before the form resets and closes.
	DefaultSuccessNotice = 2 * time.Second
)

// ErrInvalidDraft is returned by Submit when validation fails; the per-field
// messages are available via Errors(). No network call is made.
var ErrInvalidDraft = errors.New("draft has validation errors")

var (
	phonePattern = regexp.MustCompile(`^\d{10,}$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// Form is the purchase drawer state for a single buyer session. It is not
// safe for concurrent use from multiple goroutines, with the one exception
// of the delayed reset that follows a successful submit.
type Form struct {
	// Draft is the order being edited. Mutate fields directly; they are
	// only checked on Submit.
	Draft models.OrderRequest

	client       *Client
	defaultPrice float64
	notice       time.Duration
	onClose      func()

	mu          sync.Mutex
	errors      map[string]string
	success     bool
	lastOrderID int64
}

// Option configures a Form.
type Option func(*Form)

// WithSuccessNotice overrides how long the success notice is shown before
// the form resets.
func WithSuccessNotice(d time.Duration) Option {
	return func(f *Form) { f.notice = d }
}

// WithOnClose registers a callback fired when the form closes itself after
// a successful order.
func WithOnClose(fn func()) Option {
	return func(f *Form) { f.onClose = fn }
}

// NewForm creates a form with an empty draft, quantity 1 and the catalog
// price pre-filled.
func NewForm(client *Client, catalogPrice float64, opts ...Option) *Form {
	f := &Form{
		client:       client,
		defaultPrice: catalogPrice,
		notice:       DefaultSuccessNotice,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.Draft = f.defaults()
	return f
}

func (f *Form) defaults() models.OrderRequest {
	return models.OrderRequest{
		Quantity: minQuantity,
		Price:    f.defaultPrice,
	}
}

// Validate checks the draft and returns a map from field name to error
// message, empty when every rule passes. Address2 and price are never
// validated here.
func (f *Form) Validate() map[string]string {
	errs := map[string]string{}

	if f.Draft.FirstName == "" {
		errs["firstName"] = "First name required"
	}
	if f.Draft.SecondName == "" {
		errs["secondName"] = "Second name required"
	}
	if !phonePattern.MatchString(f.Draft.Phone) {
		errs["phone"] = "Valid phone required"
	}
	if !emailPattern.MatchString(f.Draft.Email) {
		errs["email"] = "Valid email required"
	}
	if f.Draft.City == "" {
		errs["city"] = "City required"
	}
	if f.Draft.Town == "" {
		errs["town"] = "Town required"
	}
	if f.Draft.Address1 == "" {
		errs["address1"] = "Address line 1 required"
	}
	if f.Draft.Quantity < minQuantity {
		errs["quantity"] = "Quantity must be at least 1"
	}

	return errs
}

// IncrementQuantity steps the quantity up by one.
func (f *Form) IncrementQuantity() {
	f.stepQuantity(1)
}

// DecrementQuantity steps the quantity down by one, never below 1.
func (f *Form) DecrementQuantity() {
	f.stepQuantity(-1)
}

func (f *Form) stepQuantity(delta int) {
	q := f.Draft.Quantity + delta
	if q < minQuantity {
		q = minQuantity
	}
	f.Draft.Quantity = q
}

// Total is the price shown next to the stepper.
func (f *Form) Total() float64 {
	return f.Draft.Total()
}

// Errors returns the field errors from the last Validate/Submit, plus the
// submit error under "submit" when the network call itself failed.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors
}

// Success reports whether the success notice is currently showing.
func (f *Form) Success() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.success
}

// LastOrderID returns the order ID from the most recent accepted
// submission, for display in the success notice.
func (f *Form) LastOrderID() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastOrderID
}

// Submit validates the draft and, if it is clean, issues exactly one POST to
// the intake endpoint.
//
// On validation failure the draft is left intact for correction and
// ErrInvalidDraft is returned. On a rejected order or a transport failure
// the draft is likewise kept so the buyer can resubmit; there is no retry.
// On success the notice shows for the configured duration, then the draft
// resets to defaults and the form closes.
func (f *Form) Submit(ctx context.Context) error {
	errs := f.Validate()
	if len(errs) > 0 {
		f.mu.Lock()
		f.errors = errs
		f.mu.Unlock()
		return ErrInvalidDraft
	}

	resp, err := f.client.PlaceOrder(ctx, f.Draft)
	if err != nil {
		f.mu.Lock()
		f.errors = map[string]string{"submit": err.Error()}
		f.mu.Unlock()
		return err
	}

	f.mu.Lock()
	f.errors = nil
	f.success = true
	f.lastOrderID = resp.OrderID
	f.mu.Unlock()

	time.AfterFunc(f.notice, f.close)

	return nil
}

func (f *Form) close() {
	f.mu.Lock()
	f.success = false
	f.Draft = f.defaults()
	f.mu.Unlock()

	if f.onClose != nil {
		f.onClose()
	}
}
