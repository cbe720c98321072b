package test

import (
	"context"
	"time"

	domainErrors "github.com/printeasy/printeasy/internal/domain/errors"
	"github.com/printeasy/printeasy/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, name, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, Name: name, PasswordHash: passwordHash}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderTransitionCall records one Transition invocation.
type OrderTransitionCall struct {
	OrderID int64
	From    model.OrderStatus
	To      model.OrderStatus
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	ListByUserFn   func(context.Context, int64) ([]model.Order, error)
	ListByStatusFn func(context.Context, model.OrderStatus, int) ([]model.Order, error)
	TransitionFn   func(context.Context, int64, model.OrderStatus, model.OrderStatus, time.Time) error

	Orders          []model.Order
	Transitions     []OrderTransitionCall
	Payments        map[int64]string
	PaymentErrors   map[int64]string
	GatewayOrders   map[int64]string
	Cancellations   map[int64]string
	RefundsOpened   map[int64]bool
	RefundSettled   map[int64]string
	Notes           map[int64][]model.OrderNote
	TransitionErr   error
	SetPaymentErr   error
	CancellationErr error
}

// NewOrderRepositoryStub constructs a stub with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Payments:      make(map[int64]string),
		PaymentErrors: make(map[int64]string),
		GatewayOrders: make(map[int64]string),
		Cancellations: make(map[int64]string),
		RefundsOpened: make(map[int64]bool),
		RefundSettled: make(map[int64]string),
		Notes:         make(map[int64][]model.OrderNote),
	}
}

// Create returns configured response or stores the order with ID 1.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	created := *order
	created.ID = int64(len(s.Orders) + 1)
	created.StatusLog = []model.StatusLogEntry{{Status: created.Status, Timestamp: time.Now()}}
	s.Orders = append(s.Orders, created)
	return &created, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns stored orders belonging to the user.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var out []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// ListByStatus filters stored orders by status. Empty status matches all.
func (s *OrderRepositoryStub) ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	if s.ListByStatusFn != nil {
		return s.ListByStatusFn(ctx, status, limit)
	}
	var out []model.Order
	for _, o := range s.Orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

// Transition records the call and applies the status change in-memory.
func (s *OrderRepositoryStub) Transition(ctx context.Context, orderID int64, from, to model.OrderStatus, at time.Time) error {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, orderID, from, to, at)
	}
	if s.TransitionErr != nil {
		return s.TransitionErr
	}
	s.Transitions = append(s.Transitions, OrderTransitionCall{OrderID: orderID, From: from, To: to})
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			if s.Orders[i].Status != from {
				return domainErrors.ErrStatusConflict
			}
			s.Orders[i].Status = to
			s.Orders[i].StatusLog = append(s.Orders[i].StatusLog, model.StatusLogEntry{Status: to, Timestamp: at})
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// SetPayment records the payment reference.
func (s *OrderRepositoryStub) SetPayment(ctx context.Context, orderID int64, paymentID string, paidAt time.Time) error {
	if s.SetPaymentErr != nil {
		return s.SetPaymentErr
	}
	s.Payments[orderID] = paymentID
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].PaymentID = paymentID
			at := paidAt
			s.Orders[i].PaymentTime = &at
		}
	}
	return nil
}

// SetPaymentError records the gateway failure message.
func (s *OrderRepositoryStub) SetPaymentError(ctx context.Context, orderID int64, message string) error {
	s.PaymentErrors[orderID] = message
	return nil
}

// SetGatewayOrder records the gateway order identifier.
func (s *OrderRepositoryStub) SetGatewayOrder(ctx context.Context, orderID int64, gatewayOrderID string) error {
	s.GatewayOrders[orderID] = gatewayOrderID
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].GatewayOrderID = gatewayOrderID
		}
	}
	return nil
}

// SetCancellation records the cancellation reason and refund flag.
func (s *OrderRepositoryStub) SetCancellation(ctx context.Context, orderID int64, reason string, openRefund bool) error {
	if s.CancellationErr != nil {
		return s.CancellationErr
	}
	s.Cancellations[orderID] = reason
	s.RefundsOpened[orderID] = openRefund
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].CancellationReason = reason
			if openRefund {
				s.Orders[i].Refund = &model.Refund{Status: model.RefundStatusPending}
			}
		}
	}
	return nil
}

// ProcessRefund settles a pending refund in-memory.
func (s *OrderRepositoryStub) ProcessRefund(ctx context.Context, orderID int64, transactionID string, at time.Time) error {
	for i := range s.Orders {
		if s.Orders[i].ID != orderID {
			continue
		}
		if s.Orders[i].Refund == nil {
			return domainErrors.ErrNotFound
		}
		if s.Orders[i].Refund.Status == model.RefundStatusProcessed {
			return domainErrors.ErrRefundProcessed
		}
		processed := at
		s.Orders[i].Refund.Status = model.RefundStatusProcessed
		s.Orders[i].Refund.TransactionID = transactionID
		s.Orders[i].Refund.ProcessedAt = &processed
		s.RefundSettled[orderID] = transactionID
		return nil
	}
	return domainErrors.ErrNotFound
}

// AddNote appends a note to the stored order.
func (s *OrderRepositoryStub) AddNote(ctx context.Context, orderID int64, note model.OrderNote) error {
	s.Notes[orderID] = append(s.Notes[orderID], note)
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Notes = append(s.Orders[i].Notes, note)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// CartRepositoryStub keeps carts in-memory.
type CartRepositoryStub struct {
	GetFn   func(context.Context, int64) (*model.Cart, error)
	PutFn   func(context.Context, int64, []model.LineItem) (*model.Cart, error)
	ClearFn func(context.Context, int64) error

	Carts   map[int64][]model.LineItem
	Cleared []int64
}

// NewCartRepositoryStub constructs a stub with initialized storage.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{Carts: make(map[int64][]model.LineItem)}
}

// Get returns the stored cart, empty when absent.
func (s *CartRepositoryStub) Get(ctx context.Context, userID int64) (*model.Cart, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID)
	}
	return &model.Cart{UserID: userID, Items: s.Carts[userID]}, nil
}

// Put replaces the stored cart contents.
func (s *CartRepositoryStub) Put(ctx context.Context, userID int64, items []model.LineItem) (*model.Cart, error) {
	if s.PutFn != nil {
		return s.PutFn(ctx, userID, items)
	}
	s.Carts[userID] = items
	return &model.Cart{UserID: userID, Items: items, UpdatedAt: time.Now()}, nil
}

// Clear drops the stored cart and records the call.
func (s *CartRepositoryStub) Clear(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	delete(s.Carts, userID)
	s.Cleared = append(s.Cleared, userID)
	return nil
}

// ComplaintRepositoryStub keeps complaints in-memory.
type ComplaintRepositoryStub struct {
	CreateFn func(context.Context, *model.Complaint) (*model.Complaint, error)

	Complaints []model.Complaint
	Next       int64
}

// NewComplaintRepositoryStub constructs an empty stub.
func NewComplaintRepositoryStub() *ComplaintRepositoryStub {
	return &ComplaintRepositoryStub{Next: 1}
}

// Create stores the complaint with status open.
func (s *ComplaintRepositoryStub) Create(ctx context.Context, complaint *model.Complaint) (*model.Complaint, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, complaint)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	created := *complaint
	created.ID = s.Next
	created.Status = model.ComplaintStatusOpen
	created.CreatedAt = time.Now()
	s.Next++
	s.Complaints = append(s.Complaints, created)
	return &created, nil
}

// GetByID fetches a stored complaint.
func (s *ComplaintRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Complaint, error) {
	for _, c := range s.Complaints {
		if c.ID == id {
			complaint := c
			return &complaint, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns the user's complaints.
func (s *ComplaintRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Complaint, error) {
	var out []model.Complaint
	for _, c := range s.Complaints {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

// ListByStatus filters complaints by status. Empty status matches all.
func (s *ComplaintRepositoryStub) ListByStatus(ctx context.Context, status model.ComplaintStatus, limit int) ([]model.Complaint, error) {
	var out []model.Complaint
	for _, c := range s.Complaints {
		if status == "" || c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

// AddResponse appends the response and applies the new status.
func (s *ComplaintRepositoryStub) AddResponse(ctx context.Context, id int64, response model.ComplaintResponse, status model.ComplaintStatus) error {
	for i := range s.Complaints {
		if s.Complaints[i].ID == id {
			s.Complaints[i].Responses = append(s.Complaints[i].Responses, response)
			s.Complaints[i].Status = status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// SetStatus updates the complaint status.
func (s *ComplaintRepositoryStub) SetStatus(ctx context.Context, id int64, status model.ComplaintStatus) error {
	for i := range s.Complaints {
		if s.Complaints[i].ID == id {
			s.Complaints[i].Status = status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// SetRating stores the rating with the closed-only, once-only guard.
func (s *ComplaintRepositoryStub) SetRating(ctx context.Context, id int64, rating int) error {
	for i := range s.Complaints {
		if s.Complaints[i].ID == id {
			if s.Complaints[i].Status != model.ComplaintStatusClosed || s.Complaints[i].Rating != 0 {
				return domainErrors.ErrRatingNotAllowed
			}
			s.Complaints[i].Rating = rating
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// MediaDeletionRepositoryStub is the in-memory retry queue for tests.
type MediaDeletionRepositoryStub struct {
	EnqueueFn     func(context.Context, []string) error
	SelectBatchFn func(context.Context, int) ([]model.MediaDeletion, error)

	Queue  []model.MediaDeletion
	Done   []int64
	Failed map[int64]string
	Next   int64
}

// NewMediaDeletionRepositoryStub constructs an empty queue stub.
func NewMediaDeletionRepositoryStub() *MediaDeletionRepositoryStub {
	return &MediaDeletionRepositoryStub{Failed: make(map[int64]string), Next: 1}
}

// Enqueue appends one entry per remote identifier.
func (s *MediaDeletionRepositoryStub) Enqueue(ctx context.Context, remoteIDs []string) error {
	if s.EnqueueFn != nil {
		return s.EnqueueFn(ctx, remoteIDs)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	for _, id := range remoteIDs {
		s.Queue = append(s.Queue, model.MediaDeletion{ID: s.Next, RemoteID: id})
		s.Next++
	}
	return nil
}

// SelectBatch returns up to limit queued entries.
func (s *MediaDeletionRepositoryStub) SelectBatch(ctx context.Context, limit int) ([]model.MediaDeletion, error) {
	if s.SelectBatchFn != nil {
		return s.SelectBatchFn(ctx, limit)
	}
	if limit > len(s.Queue) {
		limit = len(s.Queue)
	}
	out := make([]model.MediaDeletion, limit)
	copy(out, s.Queue[:limit])
	return out, nil
}

// MarkDone removes the entry from the queue.
func (s *MediaDeletionRepositoryStub) MarkDone(ctx context.Context, id int64) error {
	s.Done = append(s.Done, id)
	for i, d := range s.Queue {
		if d.ID == id {
			s.Queue = append(s.Queue[:i], s.Queue[i+1:]...)
			return nil
		}
	}
	return nil
}

// MarkFailed records the failure message.
func (s *MediaDeletionRepositoryStub) MarkFailed(ctx context.Context, id int64, message string) error {
	s.Failed[id] = message
	return nil
}
