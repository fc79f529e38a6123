// Package worker implements the buffered worker pool pattern for async
// box score ingestion. This decouples HTTP request handling from database
// writes, providing:
// - Backpressure handling via load shedding
// - Batch inserts for efficient ClickHouse writes
// - Graceful shutdown with flush guarantees

package worker

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/HTilki/NBAStatsApp/internal/models"
)

// Career milestone thresholds
var (
	pointsThresholds = map[int64]string{
		10000: "10,000 career points",
		20000: "20,000 career points",
		30000: "30,000 career points",
		40000: "40,000 career points",
	}
	reboundsThresholds = map[int64]string{
		5000:  "5,000 career rebounds",
		10000: "10,000 career rebounds",
	}
	assistsThresholds = map[int64]string{
		5000:  "5,000 career assists",
		10000: "10,000 career assists",
	}
)

// Prometheus metrics
var (
	linesIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nba_boxscore_lines_ingested_total",
		Help: "Total number of box score lines accepted for processing",
	})

	linesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nba_boxscore_lines_processed_total",
		Help: "Total number of box score lines written by workers",
	})

	linesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nba_boxscore_lines_failed_total",
		Help: "Total number of box score lines that failed processing",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nba_worker_queue_depth",
		Help: "Current depth of the worker queue",
	})

	batchInsertDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nba_batch_insert_duration_seconds",
		Help:    "Duration of batch inserts to ClickHouse",
		Buckets: prometheus.DefBuckets,
	})

	linesLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nba_boxscore_lines_load_shed_total",
		Help: "Total number of box score lines dropped due to load shedding",
	})
)

// Job represents a unit of work for the worker pool
type Job struct {
	Line       *models.RawBoxscoreLine
	ReceivedAt time.Time
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	ClickHouse    driver.Conn
	Postgres      *pgxpool.Pool
	Redis         *redis.Client
	Logger        *zap.Logger
}

// Pool manages a pool of workers for async box score processing
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 10000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
	)
}

// Stop gracefully shuts down the worker pool. The queue is closed and fully
// drained before the pool context is cancelled, so every accepted line still
// reaches ClickHouse. Cancelling the parent context instead forces an abort
// without draining.
func (p *Pool) Stop() {
	p.logger.Info("Stopping worker pool...")
	close(p.jobQueue)
	p.wg.Wait()
	p.cancel()
	p.logger.Info("Worker pool stopped")
}

// Enqueue adds a line to the queue. Returns false when the queue is full
// (load shedding) or the pool is stopping.
func (p *Pool) Enqueue(line *models.RawBoxscoreLine) bool {
	job := Job{
		Line:       line,
		ReceivedAt: time.Now(),
	}

	// Protect against sending on closed channel
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Failed to enqueue line (pool stopped)", "error", r)
		}
	}()

	select {
	case p.jobQueue <- job:
		linesIngested.Inc()
		return true
	default:
		linesLoadShed.Inc()
		return false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}

// worker processes jobs from the queue in batches
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]Job, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		start := time.Now()
		if err := p.processBatch(batch); err != nil {
			p.logger.Errorw("Batch processing failed",
				"worker", id,
				"batchSize", len(batch),
				"error", err,
			)
			linesFailed.Add(float64(len(batch)))
		} else {
			linesProcessed.Add(float64(len(batch)))
		}
		batchInsertDuration.Observe(time.Since(start).Seconds())

		batch = batch[:0]
	}

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				flush()
				return
			}

			batch = append(batch, job)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()

		case <-p.ctx.Done():
			flush()
			return
		}
	}
}

// processBatch normalizes a batch of raw lines and sends it to ClickHouse.
func (p *Pool) processBatch(batch []Job) error {
	if len(batch) == 0 {
		return nil
	}

	ctx := context.Background()

	chBatch, err := p.config.ClickHouse.PrepareBatch(ctx, `
		INSERT INTO boxscore_lines (
			game_id, date, season, game_type, game_remarks,
			team, opponent, home, win,
			player_id, player_name, starter, team_total,
			seconds_played, played,
			fg, fga, two_p, two_pa, three_p, three_pa, ft, fta,
			orb, drb, trb, ast, stl, blk, tov, pf, pts, plus_minus
		)
	`)
	if err != nil {
		return err
	}

	normalized := make([]*models.BoxscoreLine, 0, len(batch))
	for _, job := range batch {
		line, err := job.Line.Normalize()
		if err != nil {
			p.logger.Warnw("Failed to normalize line", "error", err, "game_id", job.Line.GameID)
			continue
		}

		err = chBatch.Append(
			line.GameID,
			line.Date,
			line.Season,
			line.GameType,
			line.GameRemarks,
			line.Team,
			line.Opponent,
			line.Home,
			line.Win,
			line.PlayerID,
			line.PlayerName,
			line.Starter,
			line.TeamTotal,
			line.SecondsPlayed,
			line.Played,
			line.FG,
			line.FGA,
			line.TwoP,
			line.TwoPA,
			line.ThreeP,
			line.ThreePA,
			line.FT,
			line.FTA,
			line.ORB,
			line.DRB,
			line.TRB,
			line.AST,
			line.STL,
			line.BLK,
			line.TOV,
			line.PF,
			line.PTS,
			line.PlusMinus,
		)
		if err != nil {
			p.logger.Warnw("Failed to append line to batch", "error", err, "game_id", line.GameID)
			continue
		}
		normalized = append(normalized, line)
	}

	// Redis side effects run concurrently with the ClickHouse send
	go p.processBatchSideEffects(ctx, normalized)

	if err := chBatch.Send(); err != nil {
		p.logger.Errorw("Failed to send batch to ClickHouse", "error", err, "batchSize", len(batch))
		return err
	}

	return nil
}

// processBatchSideEffects maintains Redis career counters and detects career
// milestones for a batch of normalized lines.
func (p *Pool) processBatchSideEffects(ctx context.Context, lines []*models.BoxscoreLine) {
	if len(lines) == 0 || p.config.Redis == nil {
		return
	}

	// Phase 1: Segregation & Pipelining
	pipe := p.config.Redis.Pipeline()

	type counterCheck struct {
		player     string
		stat       string
		delta      int64
		thresholds map[int64]string
		cmd        *redis.IntCmd
	}
	var checks []counterCheck

	for _, line := range lines {
		if line.TeamTotal == 1 || line.Played == 0 || line.PlayerName == "" {
			continue
		}

		pipe.SAdd(ctx, "players:index", line.PlayerName)
		pipe.HSet(ctx, "player:"+line.PlayerName+":last_seen",
			"season", int(line.Season), "team", line.Team)

		increments := []struct {
			stat       string
			delta      int64
			thresholds map[int64]string
		}{
			{"pts", int64(line.PTS), pointsThresholds},
			{"trb", int64(line.TRB), reboundsThresholds},
			{"ast", int64(line.AST), assistsThresholds},
		}
		for _, inc := range increments {
			if inc.delta == 0 {
				continue
			}
			cmd := pipe.IncrBy(ctx, "player:"+line.PlayerName+":career:"+inc.stat, inc.delta)
			checks = append(checks, counterCheck{
				player:     line.PlayerName,
				stat:       inc.stat,
				delta:      inc.delta,
				thresholds: inc.thresholds,
				cmd:        cmd,
			})
		}
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		p.logger.Errorw("Redis pipeline failed", "error", err)
		return
	}

	// Phase 2: Milestone Verification
	type potentialUnlock struct {
		player       string
		stat         string
		threshold    int64
		label        string
		sIsMemberCmd *redis.BoolCmd
	}
	var potentialUnlocks []potentialUnlock

	verifyPipe := p.config.Redis.Pipeline()

	for _, check := range checks {
		total, err := check.cmd.Result()
		if err != nil {
			continue
		}
		for threshold, label := range check.thresholds {
			// The counter crossed this threshold within this batch entry
			if total >= threshold && total-check.delta < threshold {
				key := "player:" + check.player + ":milestones"
				member := fmt.Sprintf("%s:%d", check.stat, threshold)
				cmd := verifyPipe.SIsMember(ctx, key, member)
				potentialUnlocks = append(potentialUnlocks, potentialUnlock{
					player:       check.player,
					stat:         check.stat,
					threshold:    threshold,
					label:        label,
					sIsMemberCmd: cmd,
				})
			}
		}
	}

	if len(potentialUnlocks) > 0 {
		if _, err := verifyPipe.Exec(ctx); err != nil && err != redis.Nil {
			p.logger.Errorw("Redis verification pipeline failed", "error", err)
		}
	}

	// Phase 3: Bulk Persistence
	var newUnlocks []potentialUnlock
	for _, check := range potentialUnlocks {
		if !check.sIsMemberCmd.Val() {
			newUnlocks = append(newUnlocks, check)
		}
	}
	if len(newUnlocks) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO player_milestones (player_name, stat, threshold, label, reached_at) VALUES ")
	vals := []interface{}{}
	now := time.Now()

	for i, unlock := range newUnlocks {
		n := i * 5
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5)
		vals = append(vals, unlock.player, unlock.stat, unlock.threshold, unlock.label, now)
	}
	sb.WriteString(" ON CONFLICT (player_name, stat, threshold) DO NOTHING")

	if _, err := p.config.Postgres.Exec(ctx, sb.String(), vals...); err != nil {
		p.logger.Errorw("Failed to bulk insert milestones", "error", err, "count", len(newUnlocks))
	} else {
		for _, unlock := range newUnlocks {
			p.logger.Infow("Milestone reached", "player", unlock.player, "milestone", unlock.label)
		}
	}

	persistPipe := p.config.Redis.Pipeline()
	for _, unlock := range newUnlocks {
		key := "player:" + unlock.player + ":milestones"
		persistPipe.SAdd(ctx, key, fmt.Sprintf("%s:%d", unlock.stat, unlock.threshold))
	}
	if _, err := persistPipe.Exec(ctx); err != nil && err != redis.Nil {
		p.logger.Errorw("Redis persistence pipeline failed", "error", err)
	}
}
