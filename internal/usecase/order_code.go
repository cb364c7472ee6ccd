package usecase

import (
	"context"
	"fmt"
	"time"
)

const (
	orderCodePrefix = "ORD"
	orderCodeSeqPad = 4
)

// CodeCounter is the slice of OrderRepo the generator needs.
type CodeCounter interface {
	CountByCodePrefix(ctx context.Context, prefix string) (int64, error)
}

// OrderCodePrefix returns the date-scoped prefix, e.g. "ORD-20260901-".
func OrderCodePrefix(now time.Time) string {
	return fmt.Sprintf("%s-%s-", orderCodePrefix, now.Format("20060102"))
}

// NextOrderCode derives the next code for the day by counting existing
// rows that share the prefix: "ORD-20260901-0001", "ORD-20260901-0002",
// and so on. Two concurrent callers can observe the same count and
// produce the same code; the unique index on order_code is the only
// arbiter, and the caller retries on ErrDuplicateCode.
func NextOrderCode(ctx context.Context, counter CodeCounter, now time.Time) (string, error) {
	prefix := OrderCodePrefix(now)
	n, err := counter.CountByCodePrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("count order codes: %w", err)
	}
	return fmt.Sprintf("%s%0*d", prefix, orderCodeSeqPad, n+1), nil
}
