// Package numerator provides document auto-numbering.
// Numbers follow the pattern PREFIX-YEAR-XXXXX (e.g. DC-2024-00012) and
// are backed by the doc_sequences table.
package numerator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// Strategy selects how numbers are allocated.
type Strategy int

const (
	// StrategyStrict issues one UPDATE ... RETURNING per number.
	// Gap-free, suitable for invoice and challan numbers.
	StrategyStrict Strategy = iota

	// StrategyCached reserves ranges of numbers in memory. Faster, but
	// restarts leave gaps. Suitable for internal documents.
	StrategyCached
)

// Options configures number allocation.
type Options struct {
	Strategy Strategy

	// RangeSize is how many numbers StrategyCached reserves at once.
	// Default 50.
	RangeSize int64
}

// DefaultOptions returns strict allocation.
func DefaultOptions() *Options {
	return &Options{Strategy: StrategyStrict}
}

// Querier is the database dependency.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Config holds the numbering format.
type Config struct {
	// Prefix added to all numbers (e.g. "DC", "INV")
	Prefix string

	// IncludeYear adds the year to the formatted number
	IncludeYear bool

	// PadWidth is the minimum numeric width (default 5)
	PadWidth int

	// ResetPeriod: "year", "month", "never"
	ResetPeriod string
}

// DefaultConfig returns yearly-reset numbering with the given prefix.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		IncludeYear: true,
		PadWidth:    5,
		ResetPeriod: "year",
	}
}

type cachedRange struct {
	current int64
	max     int64
}

// Service allocates document numbers against a database sequence table.
type Service struct {
	querier Querier

	cacheMu sync.Mutex
	ranges  map[string]*cachedRange
}

// New creates a numerator backed by the given querier.
func New(querier Querier) *Service {
	return &Service{
		querier: querier,
		ranges:  make(map[string]*cachedRange),
	}
}

// GetNextNumber allocates and formats the next document number.
func (s *Service) GetNextNumber(ctx context.Context, cfg Config, opts *Options, period time.Time) (string, error) {
	if s == nil {
		return "", fmt.Errorf("numerator service is not initialized")
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	key := buildKey(cfg, period)

	var (
		num int64
		err error
	)
	switch opts.Strategy {
	case StrategyCached:
		num, err = s.getNextCached(ctx, key, opts)
	default:
		num, err = s.getNextStrict(ctx, key)
	}
	if err != nil {
		return "", err
	}

	return formatNumber(cfg, period, num), nil
}

// Next allocates the next number using the default config for prefix.
func (s *Service) Next(ctx context.Context, prefix string) (string, error) {
	return s.GetNextNumber(ctx, DefaultConfig(prefix), nil, time.Now())
}

func (s *Service) getNextStrict(ctx context.Context, key string) (int64, error) {
	var num int64
	err := s.querier.QueryRow(ctx, `
        INSERT INTO doc_sequences (key, current_val)
        VALUES ($1, 1)
        ON CONFLICT (key) DO UPDATE SET current_val = doc_sequences.current_val + 1
        RETURNING current_val
	`, key).Scan(&num)
	if err != nil {
		return 0, fmt.Errorf("strict next: %w", err)
	}
	return num, nil
}

func (s *Service) getNextCached(ctx context.Context, key string, opts *Options) (int64, error) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	rng, exists := s.ranges[key]
	if !exists {
		rng = &cachedRange{}
		s.ranges[key] = rng
	}

	if rng.current >= rng.max {
		size := opts.RangeSize
		if size <= 0 {
			size = 50
		}

		// current_val is the last value handed out; bumping by size
		// reserves (old, old+size].
		var newMax int64
		err := s.querier.QueryRow(ctx, `
            INSERT INTO doc_sequences (key, current_val)
            VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET current_val = doc_sequences.current_val + $2
            RETURNING current_val
		`, key, size).Scan(&newMax)
		if err != nil {
			return 0, fmt.Errorf("reserve range: %w", err)
		}

		rng.current = newMax - size
		rng.max = newMax
	}

	rng.current++
	return rng.current, nil
}

// SetNextNumber overrides the sequence value (for data migration).
func (s *Service) SetNextNumber(ctx context.Context, cfg Config, period time.Time, value int64) error {
	key := buildKey(cfg, period)

	var result int64
	err := s.querier.QueryRow(ctx, `
		INSERT INTO doc_sequences (key, current_val)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET current_val = $2
		RETURNING current_val
	`, key, value).Scan(&result)

	s.cacheMu.Lock()
	delete(s.ranges, key)
	s.cacheMu.Unlock()

	return err
}

func buildKey(cfg Config, period time.Time) string {
	switch cfg.ResetPeriod {
	case "month":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006_01"))
	case "year":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006"))
	default:
		return cfg.Prefix
	}
}

func formatNumber(cfg Config, period time.Time, num int64) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = 5
	}

	if cfg.IncludeYear {
		return fmt.Sprintf("%s-%s-%0*d", cfg.Prefix, period.Format("2006"), padWidth, num)
	}
	return fmt.Sprintf("%s-%0*d", cfg.Prefix, padWidth, num)
}

// ParseNumber extracts the numeric part from a formatted number, or -1.
// The numeric part is the segment after the last dash, so both
// PREFIX-YEAR-NNNNN and PREFIX-NNNNN shapes parse.
func ParseNumber(formatted string) int64 {
	i := strings.LastIndexByte(formatted, '-')
	if i < 0 || i == len(formatted)-1 {
		return -1
	}
	num, err := strconv.ParseInt(formatted[i+1:], 10, 64)
	if err != nil || num < 0 {
		return -1
	}
	return num
}

// InMemory is a process-local numerator for tests and seeding.
type InMemory struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewInMemory creates an in-memory numerator.
func NewInMemory() *InMemory {
	return &InMemory{counters: make(map[string]int64)}
}

// Next allocates the next number for prefix.
func (m *InMemory) Next(_ context.Context, prefix string) (string, error) {
	cfg := DefaultConfig(prefix)
	now := time.Now()

	m.mu.Lock()
	key := buildKey(cfg, now)
	m.counters[key]++
	num := m.counters[key]
	m.mu.Unlock()

	return formatNumber(cfg, now, num), nil
}
