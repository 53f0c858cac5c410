package memstore

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"gurukul/backend/models"
	"gurukul/backend/store"
)

func (s *Store) CreateOrder(userID string, input models.CreateOrderInput) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.batches[input.BatchID]; !ok {
		return models.Order{}, store.ErrNotFound
	}

	now := s.now()
	order := models.Order{
		ID:             s.nextID(),
		UserID:         userID,
		BatchID:        input.BatchID,
		Amount:         input.Amount,
		Status:         models.OrderPending,
		GatewayOrderID: "order_" + uuid.NewString(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.orders[order.ID] = order
	return order, nil
}

func (s *Store) GetOrder(id uint) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if order, ok := s.orders[id]; ok {
		return order, nil
	}
	return models.Order{}, store.ErrNotFound
}

func (s *Store) ListUserOrders(userID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, 0)
	for _, order := range s.orders {
		if order.UserID != userID {
			continue
		}
		if batch, ok := s.batches[order.BatchID]; ok {
			order.Batch = s.withCourse(batch)
		}
		orders = append(orders, order)
	}
	sortCreatedDesc(orders,
		func(o models.Order) time.Time { return o.CreatedAt },
		func(o models.Order) uint { return o.ID })
	return orders, nil
}

func (s *Store) UpdateOrderStatus(id uint, status, paymentID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, store.ErrNotFound
	}
	order.Status = status
	if paymentID != "" {
		order.PaymentID = paymentID
	}
	order.UpdatedAt = s.now()
	s.orders[id] = order
	return order, nil
}

// CompleteOrder creates the matching active enrollment and flips the
// order to completed under one write lock. The enrollment goes first:
// if it fails, the order row is left untouched, so a reader can never
// observe a completed order without its enrollment.
func (s *Store) CompleteOrder(id uint, paymentID string) (models.Order, models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, models.Enrollment{}, store.ErrNotFound
	}

	enr, err := s.createEnrollment(order.UserID, order.BatchID)
	if errors.Is(err, store.ErrDuplicate) {
		// Retried completion: reuse the existing enrollment, reactivating
		// it if it had been cancelled in the meantime.
		for eid, existing := range s.enrollments {
			if existing.UserID == order.UserID && existing.BatchID == order.BatchID {
				existing.Status = models.EnrollmentActive
				s.enrollments[eid] = existing
				enr, err = existing, nil
				break
			}
		}
	}
	if err != nil {
		return models.Order{}, models.Enrollment{}, err
	}

	order.Status = models.OrderCompleted
	if paymentID != "" {
		order.PaymentID = paymentID
	}
	order.UpdatedAt = s.now()
	s.orders[id] = order
	return order, enr, nil
}
