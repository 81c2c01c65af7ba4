package matchlog

import (
	"bytes"
	"encoding/binary"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"matchsim/internal/match"
)

// TickWriter streams a match's ticks to disk as they're produced, instead of
// waiting for the whole MatchLog. Grounded on internal/game's EventLog: a
// bounded circular buffer feeding an async batched writer, rate-limited so a
// runaway tick producer can't turn disk I/O into the bottleneck.
const (
	TickBufferSize    = 256
	MaxTicksPerSecond = 240 // generous headroom over any configured tick rate
	BatchFlushSize    = 32
	BatchFlushInterval = 100 * time.Millisecond
)

// TickWriter's wire framing: each flushed tick is length-prefixed so a reader
// can split the stream back into individual encodeTick payloads without
// re-parsing the whole file.
type TickWriter struct {
	buffer    [TickBufferSize]match.Tick
	writeHead uint64
	readHead  uint64

	limiter *rate.Limiter

	writerWg sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	file   *os.File
	fileMu sync.Mutex

	droppedCount uint64
	totalCount   uint64
}

func NewTickWriter() *TickWriter {
	return &TickWriter{
		limiter:  rate.NewLimiter(MaxTicksPerSecond, MaxTicksPerSecond/10),
		stopChan: make(chan struct{}),
	}
}

// Start opens filePath for append and begins the async flush loop.
func (w *TickWriter) Start(filePath string) error {
	if w.running.Load() {
		return nil
	}
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	w.file = file

	w.running.Store(true)
	w.writerWg.Add(1)
	go w.writerLoop()
	return nil
}

// Stop flushes any remaining buffered ticks and closes the file.
func (w *TickWriter) Stop() {
	w.stopOnce.Do(func() {
		w.running.Store(false)
		close(w.stopChan)
		w.writerWg.Wait()

		w.fileMu.Lock()
		if w.file != nil {
			w.file.Close()
		}
		w.fileMu.Unlock()
	})
}

// Emit buffers t for the next flush. Returns false, dropping t, if the
// writer is not running or is rate-limited. When the buffer is full the
// oldest buffered tick is dropped to make room and t is still accepted — a
// stalled disk must never block the simulation loop.
func (w *TickWriter) Emit(t match.Tick) bool {
	if !w.running.Load() {
		return false
	}
	if !w.limiter.Allow() {
		atomic.AddUint64(&w.droppedCount, 1)
		return false
	}

	head := atomic.AddUint64(&w.writeHead, 1)
	tail := atomic.LoadUint64(&w.readHead)
	if head-tail >= TickBufferSize {
		atomic.AddUint64(&w.readHead, 1)
		atomic.AddUint64(&w.droppedCount, 1)
	}

	idx := (head - 1) % TickBufferSize
	w.buffer[idx] = t
	atomic.AddUint64(&w.totalCount, 1)
	return true
}

func (w *TickWriter) writerLoop() {
	defer w.writerWg.Done()

	ticker := time.NewTicker(BatchFlushInterval)
	defer ticker.Stop()

	batch := make([]match.Tick, 0, BatchFlushSize)
	for {
		select {
		case <-w.stopChan:
			batch = w.collectBatch(batch[:0])
			if len(batch) > 0 {
				w.flushBatch(batch)
			}
			return
		case <-ticker.C:
			batch = w.collectBatch(batch[:0])
			if len(batch) > 0 {
				w.flushBatch(batch)
			}
		}
	}
}

func (w *TickWriter) collectBatch(batch []match.Tick) []match.Tick {
	head := atomic.LoadUint64(&w.writeHead)
	tail := atomic.LoadUint64(&w.readHead)

	for i := tail; i < head && len(batch) < BatchFlushSize; i++ {
		idx := i % TickBufferSize
		batch = append(batch, w.buffer[idx])
	}
	if len(batch) > 0 {
		atomic.AddUint64(&w.readHead, uint64(len(batch)))
	}
	return batch
}

// flushBatch writes each tick as a length-prefixed encodeTick payload.
// Encoding errors drop that single tick rather than stalling the batch.
func (w *TickWriter) flushBatch(batch []match.Tick) {
	w.fileMu.Lock()
	defer w.fileMu.Unlock()

	if w.file == nil {
		return
	}

	for _, t := range batch {
		var buf bytes.Buffer
		if err := encodeTick(&buf, t); err != nil {
			continue
		}
		var lenPrefix [8]byte
		binary.BigEndian.PutUint64(lenPrefix[:], uint64(buf.Len()))
		w.file.Write(lenPrefix[:])
		w.file.Write(buf.Bytes())
	}
}

// Stats reports basic counters for observability wiring.
func (w *TickWriter) Stats() (total, dropped uint64) {
	return atomic.LoadUint64(&w.totalCount), atomic.LoadUint64(&w.droppedCount)
}
