package dbstore

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gurukul/backend/models"
)

func (s *Store) CreateOrder(userID string, input models.CreateOrderInput) (models.Order, error) {
	if err := s.guard(); err != nil {
		return models.Order{}, err
	}

	if err := s.db.First(&models.Batch{}, input.BatchID).Error; err != nil {
		return models.Order{}, translate(err)
	}

	order := models.Order{
		UserID:         userID,
		BatchID:        input.BatchID,
		Amount:         input.Amount,
		Status:         models.OrderPending,
		GatewayOrderID: "order_" + uuid.NewString(),
	}
	if err := s.db.Create(&order).Error; err != nil {
		return models.Order{}, translate(err)
	}
	return order, nil
}

func (s *Store) GetOrder(id uint) (models.Order, error) {
	if err := s.guard(); err != nil {
		return models.Order{}, err
	}

	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return models.Order{}, translate(err)
	}
	return order, nil
}

func (s *Store) ListUserOrders(userID string) ([]models.Order, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	var orders []models.Order
	err := s.db.Preload("Batch").Preload("Batch.Course").
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&orders).Error
	if err != nil {
		return nil, translate(err)
	}
	return orders, nil
}

func (s *Store) UpdateOrderStatus(id uint, status, paymentID string) (models.Order, error) {
	if err := s.guard(); err != nil {
		return models.Order{}, err
	}

	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return models.Order{}, translate(err)
	}

	updates := map[string]interface{}{"status": status}
	if paymentID != "" {
		updates["payment_id"] = paymentID
	}
	if err := s.db.Model(&order).Updates(updates).Error; err != nil {
		return models.Order{}, translate(err)
	}
	return order, nil
}

// CompleteOrder runs the status flip and the enrollment insert inside
// one transaction. A crash between the two can no longer strand a
// completed order without its enrollment.
func (s *Store) CompleteOrder(id uint, paymentID string) (models.Order, models.Enrollment, error) {
	if err := s.guard(); err != nil {
		return models.Order{}, models.Enrollment{}, err
	}

	var order models.Order
	var enr models.Enrollment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, id).Error; err != nil {
			return translate(err)
		}

		// Look for the (user, batch) row before inserting: letting the
		// insert hit the unique index would abort the whole transaction
		// on the server side, and no later statement could recover it.
		findErr := tx.Where("user_id = ? AND batch_id = ?",
			order.UserID, order.BatchID).First(&enr).Error
		switch {
		case findErr == nil:
			// Retried completion: reuse the existing enrollment,
			// reactivating it if it had been cancelled in the meantime.
			if enr.Status != models.EnrollmentActive {
				if err := tx.Model(&enr).Update("status", models.EnrollmentActive).Error; err != nil {
					return translate(err)
				}
			}
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			var txErr error
			enr, txErr = createEnrollment(tx, order.UserID, order.BatchID)
			if txErr != nil {
				return txErr
			}
		default:
			return translate(findErr)
		}

		updates := map[string]interface{}{"status": models.OrderCompleted}
		if paymentID != "" {
			updates["payment_id"] = paymentID
		}
		return translate(tx.Model(&order).Updates(updates).Error)
	})
	if err != nil {
		return models.Order{}, models.Enrollment{}, err
	}
	return order, enr, nil
}
