package orderform

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bloomshine/storefront/internal/models"
	"github.com/bloomshine/storefront/pkg/logger"
)

const catalogPrice = 500.00

func fillValid(f *Form) {
	f.Draft.FirstName = "Jane"
	f.Draft.SecondName = "Doe"
	f.Draft.Phone = "0712345678"
	f.Draft.Email = "jane@x.com"
	f.Draft.City = "Nairobi"
	f.Draft.Town = "Westlands"
	f.Draft.Address1 = "12 Rose Ave"
}

func TestForm_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Form)
		wantFields []string
	}{
		{
			name:       "valid draft",
			mutate:     func(f *Form) {},
			wantFields: nil,
		},
		{
			name:       "missing first name",
			mutate:     func(f *Form) { f.Draft.FirstName = "" },
			wantFields: []string{"firstName"},
		},
		{
			name:       "missing second name",
			mutate:     func(f *Form) { f.Draft.SecondName = "" },
			wantFields: []string{"secondName"},
		},
		{
			name:       "short phone",
			mutate:     func(f *Form) { f.Draft.Phone = "071234" },
			wantFields: []string{"phone"},
		},
		{
			name:       "phone with letters",
			mutate:     func(f *Form) { f.Draft.Phone = "07a2345678" },
			wantFields: []string{"phone"},
		},
		{
			name:       "email without domain",
			mutate:     func(f *Form) { f.Draft.Email = "jane@x" },
			wantFields: []string{"email"},
		},
		{
			name:       "missing city",
			mutate:     func(f *Form) { f.Draft.City = "" },
			wantFields: []string{"city"},
		},
		{
			name:       "missing town",
			mutate:     func(f *Form) { f.Draft.Town = "" },
			wantFields: []string{"town"},
		},
		{
			name:       "missing address line 1",
			mutate:     func(f *Form) { f.Draft.Address1 = "" },
			wantFields: []string{"address1"},
		},
		{
			name:       "zero quantity",
			mutate:     func(f *Form) { f.Draft.Quantity = 0 },
			wantFields: []string{"quantity"},
		},
		{
			name: "several fields at once",
			mutate: func(f *Form) {
				f.Draft.FirstName = ""
				f.Draft.Email = "nope"
				f.Draft.Quantity = -1
			},
			wantFields: []string{"firstName", "email", "quantity"},
		},
		{
			name: "address2 never validated",
			mutate: func(f *Form) {
				f.Draft.Address2 = ""
			},
			wantFields: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm(nil, catalogPrice)
			fillValid(f)
			tt.mutate(f)

			errs := f.Validate()

			if len(errs) != len(tt.wantFields) {
				t.Errorf("Validate() = %v, want %d errors", errs, len(tt.wantFields))
			}
			for _, field := range tt.wantFields {
				if _, ok := errs[field]; !ok {
					t.Errorf("Validate() missing error for %q: %v", field, errs)
				}
			}
		})
	}
}

func TestForm_Defaults(t *testing.T) {
	f := NewForm(nil, catalogPrice)

	if f.Draft.Quantity != 1 {
		t.Errorf("default quantity = %d, want 1", f.Draft.Quantity)
	}
	if f.Draft.Price != catalogPrice {
		t.Errorf("default price = %f, want %f", f.Draft.Price, catalogPrice)
	}
}

func TestForm_QuantityStepper(t *testing.T) {
	f := NewForm(nil, catalogPrice)

	// The stepper never drives quantity below 1.
	for i := 0; i < 5; i++ {
		f.DecrementQuantity()
	}
	if f.Draft.Quantity != 1 {
		t.Errorf("quantity after repeated decrements = %d, want 1", f.Draft.Quantity)
	}

	f.IncrementQuantity()
	f.IncrementQuantity()
	if f.Draft.Quantity != 3 {
		t.Errorf("quantity after two increments = %d, want 3", f.Draft.Quantity)
	}

	if f.Total() != 3*catalogPrice {
		t.Errorf("Total() = %f, want %f", f.Total(), 3*catalogPrice)
	}

	// Direct entry is not clamped eagerly; Validate catches it on submit.
	f.Draft.Quantity = 0
	if errs := f.Validate(); errs["quantity"] == "" {
		t.Error("expected quantity error for direct zero entry")
	}
}

func TestForm_SubmitInvalidDraftSkipsNetwork(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	f := NewForm(NewClient(srv.URL, logger.New("error")), catalogPrice)
	fillValid(f)
	f.Draft.Email = "not-an-email"

	err := f.Submit(context.Background())

	if !errors.Is(err, ErrInvalidDraft) {
		t.Errorf("Submit() error = %v, want ErrInvalidDraft", err)
	}
	if got := requests.Load(); got != 0 {
		t.Errorf("network calls = %d, want 0 on validation failure", got)
	}
	if f.Errors()["email"] == "" {
		t.Error("expected email error to be surfaced")
	}
	// Draft stays intact for correction.
	if f.Draft.FirstName != "Jane" {
		t.Errorf("draft was reset: firstName = %q", f.Draft.FirstName)
	}
}

func TestForm_SubmitSuccess(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		var req models.OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("server failed to decode order: %v", err)
		}
		if req.Quantity != 2 || req.Price != catalogPrice {
			t.Errorf("submitted draft = %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "orderId": 1757000000000})
	}))
	defer srv.Close()

	closed := make(chan struct{})
	f := NewForm(
		NewClient(srv.URL, logger.New("error")),
		catalogPrice,
		WithSuccessNotice(20*time.Millisecond),
		WithOnClose(func() { close(closed) }),
	)
	fillValid(f)
	f.IncrementQuantity()

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() unexpected error = %v", err)
	}

	if got := requests.Load(); got != 1 {
		t.Errorf("network calls = %d, want exactly 1", got)
	}
	if !f.Success() {
		t.Error("success notice should be showing")
	}
	if f.LastOrderID() != 1757000000000 {
		t.Errorf("LastOrderID() = %d", f.LastOrderID())
	}

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("form did not close after the success notice")
	}

	if f.Success() {
		t.Error("success notice should be gone after the notice window")
	}
	if f.Draft.FirstName != "" || f.Draft.Quantity != 1 || f.Draft.Price != catalogPrice {
		t.Errorf("draft not reset to defaults: %+v", f.Draft)
	}
}

func TestForm_SubmitServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to process order"})
	}))
	defer srv.Close()

	f := NewForm(NewClient(srv.URL, logger.New("error")), catalogPrice)
	fillValid(f)

	err := f.Submit(context.Background())
	if err == nil {
		t.Fatal("Submit() expected error")
	}

	if f.Success() {
		t.Error("success notice must not show on failure")
	}
	if f.Errors()["submit"] == "" {
		t.Error("expected submit error to be surfaced")
	}
	// Draft intact, resubmission allowed.
	if f.Draft.FirstName != "Jane" {
		t.Errorf("draft was reset: firstName = %q", f.Draft.FirstName)
	}
}

func TestForm_SubmitUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // endpoint is gone

	f := NewForm(NewClient(srv.URL, logger.New("error")), catalogPrice)
	fillValid(f)

	if err := f.Submit(context.Background()); err == nil {
		t.Fatal("Submit() expected transport error")
	}

	if f.Draft.Email != "jane@x.com" {
		t.Error("draft must survive a transport failure")
	}
}
