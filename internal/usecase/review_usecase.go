package usecase

import (
	"context"

	"souk/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitReviewInput defines the data required to review a completed order.
type SubmitReviewInput struct {
	OrderID uuid.UUID
	Rating  int
	Comment string
}

// ReviewUsecase defines the interface for order reviews and the supplier
// rating aggregate they feed.
type ReviewUsecase interface {
	// SubmitReview records a vendor's review of a completed order and
	// updates the supplier's running rating average in the same
	// transaction.
	SubmitReview(ctx context.Context, vendorID uuid.UUID, input SubmitReviewInput) (*entity.Review, error)

	// ListSupplierReviews retrieves a supplier's reviews, newest first.
	ListSupplierReviews(ctx context.Context, supplierID uuid.UUID) ([]*entity.Review, error)
}
