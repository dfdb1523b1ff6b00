package cache

import (
	"context"
	"encoding/json"
	"time"

	"library_management_api/models"

	"github.com/redis/go-redis/v9"
)

// ReportCache keeps the hot read paths (catalog listings and the overdue
// report) out of the database. Every mutation that touches books or loans
// invalidates the affected keys; entries also expire on their own TTL.
type ReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{rdb: rdb, ttl: ttl}
}

func booksKey() string     { return "cache:books:all" }
func availableKey() string { return "cache:books:available" }
func overdueKey() string   { return "cache:transactions:overdue" }

func (c *ReportCache) getBooks(ctx context.Context, key string) ([]models.Book, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}
	var books []models.Book
	if err := json.Unmarshal(b, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *ReportCache) setBooks(ctx context.Context, key string, books []models.Book) error {
	b, _ := json.Marshal(books)
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

func (c *ReportCache) Books(ctx context.Context) ([]models.Book, error) {
	return c.getBooks(ctx, booksKey())
}

func (c *ReportCache) SaveBooks(ctx context.Context, books []models.Book) error {
	return c.setBooks(ctx, booksKey(), books)
}

func (c *ReportCache) AvailableBooks(ctx context.Context) ([]models.Book, error) {
	return c.getBooks(ctx, availableKey())
}

func (c *ReportCache) SaveAvailableBooks(ctx context.Context, books []models.Book) error {
	return c.setBooks(ctx, availableKey(), books)
}

func (c *ReportCache) OverdueTransactions(ctx context.Context) ([]models.Transaction, error) {
	b, err := c.rdb.Get(ctx, overdueKey()).Bytes()
	if err != nil {
		return nil, err
	}
	var ts []models.Transaction
	if err := json.Unmarshal(b, &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func (c *ReportCache) SaveOverdueTransactions(ctx context.Context, ts []models.Transaction) error {
	b, _ := json.Marshal(ts)
	return c.rdb.Set(ctx, overdueKey(), b, c.ttl).Err()
}

// InvalidateBooks drops both catalog listings.
func (c *ReportCache) InvalidateBooks(ctx context.Context) error {
	return c.rdb.Del(ctx, booksKey(), availableKey()).Err()
}

// InvalidateLoans drops everything derived from loan state.
func (c *ReportCache) InvalidateLoans(ctx context.Context) error {
	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, booksKey(), availableKey())
	pipe.Del(ctx, overdueKey())
	_, err := pipe.Exec(ctx)
	return err
}
