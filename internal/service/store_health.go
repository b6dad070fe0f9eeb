package service

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// StoreHealthChecker reports whether the durable store can serve a request
// right now. The answer is re-derived on every call so concurrent requests
// never act on another request's stale probe.
type StoreHealthChecker interface {
	Healthy(ctx context.Context) bool
}

type dbHealthChecker struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewStoreHealthChecker probes the given database handle with a bounded
// ping. A nil handle (connection never established) always reports
// unhealthy.
func NewStoreHealthChecker(db *gorm.DB, timeout time.Duration) StoreHealthChecker {
	return &dbHealthChecker{db: db, timeout: timeout}
}

func (c *dbHealthChecker) Healthy(ctx context.Context) bool {
	if c.db == nil {
		return false
	}

	sqlDB, err := c.db.DB()
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return sqlDB.PingContext(ctx) == nil
}
