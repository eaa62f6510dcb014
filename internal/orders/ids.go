package orders

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	orderIDPrefix    = "KN"
	orderIDSuffixLen = 6
	orderIDAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

type orderIDChecker interface {
	OrderIDExists(ctx context.Context, id string) (bool, error)
}

// IDGenerator produces short human-shareable order identifiers: the fixed
// "KN" tag plus six characters drawn from a 62-character alphabet. Candidates
// are checked against the order store (soft-deleted rows included) and
// redrawn on collision; over a 62^6 keyspace the retry loop terminates almost
// immediately in practice.
type IDGenerator struct {
	repo orderIDChecker
}

// NewIDGenerator builds a generator backed by the given order store.
func NewIDGenerator(repo orderIDChecker) (*IDGenerator, error) {
	if repo == nil {
		return nil, fmt.Errorf("order id checker required")
	}
	return &IDGenerator{repo: repo}, nil
}

// Generate returns a fresh order id that does not exist in the store.
// Persistence errors abort the loop and surface to the caller.
func (g *IDGenerator) Generate(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate, err := randomOrderID()
		if err != nil {
			return "", err
		}

		exists, err := g.repo.OrderIDExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

func randomOrderID() (string, error) {
	alphabetLen := big.NewInt(int64(len(orderIDAlphabet)))
	suffix := make([]byte, orderIDSuffixLen)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("draw order id char: %w", err)
		}
		suffix[i] = orderIDAlphabet[n.Int64()]
	}
	return orderIDPrefix + string(suffix), nil
}
