// Package accesslog mirrors a summary of every HTTP request into a capped
// Redis list so recent traffic can be inspected without touching the
// application logs.
package accesslog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/rasel-stacklearner/blogger/internal/observability/metrics"
	"github.com/rasel-stacklearner/blogger/pkg/config"
)

// pushTimeout bounds a single Redis push so a slow cache cannot back up
// the worker indefinitely.
const pushTimeout = 2 * time.Second

// Record is one access log entry. The JSON field names are the wire
// format of the entries stored in Redis.
type Record struct {
	Method       string `json:"method"`
	Path         string `json:"path"`
	StatusCode   int    `json:"statusCode"`
	ResponseTime int64  `json:"responseTime"`
}

// Pusher appends a value to the head of a capped list.
type Pusher interface {
	PushList(ctx context.Context, key string, val []byte, maxLen int64) error
}

// Config holds access log sink settings.
type Config struct {
	// Key is the Redis list the records are pushed to.
	Key string
	// MaxEntries caps the list length. Older entries are trimmed away.
	MaxEntries int64
	// BufferSize is the capacity of the in-memory record queue. When the
	// queue is full new records are dropped, never blocking the request.
	BufferSize int
}

// LoadConfig reads sink settings from environment variables.
func LoadConfig() Config {
	return Config{
		Key:        config.GetEnvString("ACCESSLOG_KEY", "app:request:logs"),
		MaxEntries: int64(config.GetEnvInt("ACCESSLOG_MAX_ENTRIES", 1000)),
		BufferSize: config.GetEnvInt("ACCESSLOG_BUFFER_SIZE", 256),
	}
}

// Sink receives access log records from request handlers and pushes them
// to Redis from a single background worker. Recording never blocks and
// never fails the request: when the buffer is full the record is dropped
// and counted.
type Sink struct {
	pusher  Pusher
	cfg     Config
	records chan Record
	quit    chan struct{}
	done    chan struct{}

	startOnce sync.Once
	closeOnce sync.Once
}

// NewSink creates a Sink. Call Start before recording and Close during
// shutdown to drain buffered records.
func NewSink(pusher Pusher, cfg Config) *Sink {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 256
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = 1000
	}
	return &Sink{
		pusher:  pusher,
		cfg:     cfg,
		records: make(chan Record, cfg.BufferSize),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the background worker. Safe to call once.
func (s *Sink) Start() {
	s.startOnce.Do(func() {
		go s.run()
	})
}

func (s *Sink) run() {
	defer close(s.done)

	for {
		select {
		case rec := <-s.records:
			s.push(rec)
		case <-s.quit:
			s.drain()
			return
		}
	}
}

// drain flushes whatever is still buffered at shutdown.
func (s *Sink) drain() {
	for {
		select {
		case rec := <-s.records:
			s.push(rec)
		default:
			return
		}
	}
}

func (s *Sink) push(rec Record) {
	payload, err := json.Marshal(rec)
	if err != nil {
		slog.Error("failed to marshal access log record", slog.String("error", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()

	if err := s.pusher.PushList(ctx, s.cfg.Key, payload, s.cfg.MaxEntries); err != nil {
		metrics.AccessLogPushFailuresTotal.Inc()
		slog.Warn("failed to push access log record",
			slog.String("key", s.cfg.Key),
			slog.String("error", err.Error()))
		return
	}

	metrics.AccessLogRecordsTotal.Inc()
}

// Record queues an access log entry. It never blocks: when the buffer is
// full or the sink is shutting down the record is dropped.
func (s *Sink) Record(rec Record) {
	select {
	case <-s.quit:
		return
	default:
	}

	select {
	case s.records <- rec:
	default:
		metrics.AccessLogDroppedTotal.Inc()
	}
}

// Close stops accepting records and waits for the worker to drain the
// buffer, or for ctx to expire.
func (s *Sink) Close(ctx context.Context) error {
	s.closeOnce.Do(func() {
		close(s.quit)
	})

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
