package app

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PoolStats снимок состояния пула
type PoolStats struct {
	TotalConns      int32
	AcquiredConns   int32
	IdleConns       int32
	MaxConns        int32
	AcquireCount    int64
	AcquireDuration time.Duration
}

// PgxPoolStats читает статистику из pgxpool
func PgxPoolStats(pool *pgxpool.Pool) func() PoolStats {
	return func() PoolStats {
		stat := pool.Stat()
		return PoolStats{
			TotalConns:      stat.TotalConns(),
			AcquiredConns:   stat.AcquiredConns(),
			IdleConns:       stat.IdleConns(),
			MaxConns:        stat.MaxConns(),
			AcquireCount:    stat.AcquireCount(),
			AcquireDuration: stat.AcquireDuration(),
		}
	}
}

// PoolMonitor периодически пишет в лог состояние пула соединений
type PoolMonitor struct {
	stats    func() PoolStats
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	done     chan struct{}
	started  atomic.Bool
}

// NewPoolMonitor создаёт монитор; interval <= 0 отключает его
func NewPoolMonitor(stats func() PoolStats, interval time.Duration, logger *zap.Logger) *PoolMonitor {
	return &PoolMonitor{
		stats:    stats,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start запускает фоновую задачу
func (m *PoolMonitor) Start(ctx context.Context) {
	if m.interval <= 0 || !m.started.CompareAndSwap(false, true) {
		return
	}

	m.logger.Info("Starting pool monitor", zap.Duration("interval", m.interval))
	go m.run(ctx)
}

// Stop останавливает фоновую задачу и ждёт её завершения
func (m *PoolMonitor) Stop() {
	select {
	case <-m.stopChan:
	default:
		close(m.stopChan)
	}
	if m.started.Load() {
		<-m.done
	}
}

func (m *PoolMonitor) run(ctx context.Context) {
	defer close(m.done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.report()
		case <-m.stopChan:
			m.logger.Info("Pool monitor stopped")
			return
		case <-ctx.Done():
			m.logger.Info("Pool monitor cancelled")
			return
		}
	}
}

func (m *PoolMonitor) report() {
	stat := m.stats()
	m.logger.Info("Database pool stats",
		zap.Int32("total_conns", stat.TotalConns),
		zap.Int32("acquired_conns", stat.AcquiredConns),
		zap.Int32("idle_conns", stat.IdleConns),
		zap.Int32("max_conns", stat.MaxConns),
		zap.Int64("acquire_count", stat.AcquireCount),
		zap.Duration("acquire_duration", stat.AcquireDuration),
	)
}
