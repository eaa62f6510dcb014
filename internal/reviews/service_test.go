package reviews

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/db/models"
	pkgerrors "github.com/Rafhi-Arizkia/kenangan-backend/pkg/errors"
)

type stubReviewRepo struct {
	reviews map[uint]*models.Review
	nextID  uint
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: map[uint]*models.Review{}}
}

func (s *stubReviewRepo) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	s.nextID++
	review.ID = s.nextID
	s.reviews[review.ID] = review
	return review, nil
}

func (s *stubReviewRepo) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	review, ok := s.reviews[id]
	if !ok || review.DeletedAt.Valid {
		return nil, gorm.ErrRecordNotFound
	}
	return review, nil
}

func (s *stubReviewRepo) FindByGift(ctx context.Context, giftID uint) ([]models.Review, error) {
	var out []models.Review
	for _, review := range s.reviews {
		if review.GiftID == giftID && !review.DeletedAt.Valid {
			out = append(out, *review)
		}
	}
	return out, nil
}

func (s *stubReviewRepo) SoftDelete(ctx context.Context, id uint) error {
	review, ok := s.reviews[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	review.DeletedAt = gorm.DeletedAt{Valid: true}
	return nil
}

type stubGiftFinder struct {
	known map[uint]bool
}

func (s *stubGiftFinder) GetGift(ctx context.Context, id uint) (*models.Gift, error) {
	if s.known[id] {
		return &models.Gift{ID: id}, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "gift not found")
}

type stubOrderFinder struct {
	known map[string]bool
}

func (s *stubOrderFinder) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	if s.known[id] {
		return &models.Order{ID: id}, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func requireCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	typed := pkgerrors.As(err)
	require.NotNil(t, typed, "expected typed error, got %v", err)
	assert.Equal(t, code, typed.Code())
}

func newTestService(t *testing.T, repo reviewRepository) Service {
	t.Helper()
	svc, err := NewService(repo,
		&stubGiftFinder{known: map[uint]bool{1: true}},
		&stubOrderFinder{known: map[string]bool{"KNaaaaaa": true}},
	)
	require.NoError(t, err)
	return svc
}

func TestCreateReview(t *testing.T) {
	repo := newStubReviewRepo()
	svc := newTestService(t, repo)

	orderID := "KNaaaaaa"
	review, err := svc.Create(context.Background(), CreateReviewInput{
		GiftID:  1,
		OrderID: &orderID,
		UserID:  7,
		Rating:  5,
	})
	require.NoError(t, err)
	assert.NotZero(t, review.ID)
}

func TestCreateReview_ratingBounds(t *testing.T) {
	repo := newStubReviewRepo()
	svc := newTestService(t, repo)

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.Create(context.Background(), CreateReviewInput{GiftID: 1, UserID: 7, Rating: rating})
		requireCode(t, err, pkgerrors.CodeValidation)
	}
	assert.Empty(t, repo.reviews)
}

func TestCreateReview_unknownGift(t *testing.T) {
	repo := newStubReviewRepo()
	svc := newTestService(t, repo)

	_, err := svc.Create(context.Background(), CreateReviewInput{GiftID: 99, UserID: 7, Rating: 3})
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestCreateReview_unknownOrder(t *testing.T) {
	repo := newStubReviewRepo()
	svc := newTestService(t, repo)

	orderID := "KNzzzzzz"
	_, err := svc.Create(context.Background(), CreateReviewInput{GiftID: 1, OrderID: &orderID, UserID: 7, Rating: 3})
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestDeleteReview(t *testing.T) {
	repo := newStubReviewRepo()
	svc := newTestService(t, repo)

	review, err := svc.Create(context.Background(), CreateReviewInput{GiftID: 1, UserID: 7, Rating: 4})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), review.ID))
	err = svc.Delete(context.Background(), review.ID)
	requireCode(t, err, pkgerrors.CodeNotFound)
}
