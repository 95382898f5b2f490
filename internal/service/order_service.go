package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bloomshine/storefront/internal/mail"
	"github.com/bloomshine/storefront/internal/models"
)

var (
	// ErrCustomerMail means the relay rejected the customer confirmation;
	// nothing was sent.
	ErrCustomerMail = errors.New("customer confirmation mail failed")
	// ErrOwnerMail means the customer confirmation was already accepted but
	// the owner notification failed. There is no compensating action.
	ErrOwnerMail = errors.New("owner notification mail failed")
)

// ProductRepository interface for product data access
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// OrderService validates order submissions and dispatches the two
// notification emails. Orders are never stored: an accepted order exists
// only in the two emails and the response.
type OrderService struct {
	productRepo ProductRepository
	mailer      mail.Sender
	productID   string
	ownerEmail  string
	log         *slog.Logger
}

// NewOrderService creates a new order service selling the given catalog
// product.
func NewOrderService(productRepo ProductRepository, mailer mail.Sender, productID, ownerEmail string, log *slog.Logger) *OrderService {
	return &OrderService{
		productRepo: productRepo,
		mailer:      mailer,
		productID:   productID,
		ownerEmail:  ownerEmail,
		log:         log,
	}
}

// PlaceOrder runs one order submission through validation and notification
// dispatch and returns the generated order ID.
//
// The two sends are strictly sequential: the owner notification is not
// attempted unless the customer confirmation was accepted. A failure on
// either send fails the whole order even though the customer mail may
// already be on its way; the log records which step failed.
func (s *OrderService) PlaceOrder(ctx context.Context, req models.OrderRequest) (int64, error) {
	if verr := validateOrder(req); verr != nil {
		return 0, verr
	}

	product, err := s.productRepo.GetByID(ctx, s.productID)
	if err != nil {
		return 0, fmt.Errorf("looking up catalog product %q: %w", s.productID, err)
	}

	orderID := time.Now().UnixMilli()
	details := mail.OrderDetails{
		OrderID:     orderID,
		FirstName:   req.FirstName,
		SecondName:  req.SecondName,
		Phone:       req.Phone,
		Email:       req.Email,
		City:        req.City,
		Town:        req.Town,
		Address1:    req.Address1,
		Address2:    req.Address2,
		ProductName: product.Name,
		Quantity:    req.Quantity,
		Total:       req.Total(),
	}

	confirmation, err := mail.CustomerConfirmation(details)
	if err != nil {
		return 0, err
	}
	if err := s.mailer.Send(ctx, confirmation); err != nil {
		s.log.Error("customer confirmation not sent",
			"order_id", orderID,
			"error", err,
		)
		return 0, fmt.Errorf("%w: %v", ErrCustomerMail, err)
	}

	notification, err := mail.OwnerNotification(details, s.ownerEmail)
	if err != nil {
		return 0, err
	}
	if err := s.mailer.Send(ctx, notification); err != nil {
		// The customer confirmation was already accepted by the relay.
		s.log.Error("owner notification not sent after customer confirmation was accepted",
			"order_id", orderID,
			"error", err,
		)
		return 0, fmt.Errorf("%w: %v", ErrOwnerMail, err)
	}

	s.log.Info("order notifications dispatched",
		"order_id", orderID,
		"quantity", req.Quantity,
		"total", details.Total,
	)

	return orderID, nil
}
