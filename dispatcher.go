package challenge

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"gopkg.in/tomb.v2"

	"github.com/256dpi/challenge/program"
)

// Request is a single instruction submitted to a dispatcher.
type Request struct {
	// The request id. It is generated by the dispatcher if missing.
	ID uuid.UUID

	// The instruction to execute. Results are written to the instruction
	// before the ack is called.
	Instruction program.Instruction

	// The keys that signed the instruction.
	Signers []program.Key
}

var (
	dispatchedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "challenge_dispatched_requests",
		Help: "The executed requests by instruction and result",
	}, []string{"instruction", "result"})

	dispatchTimings = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "challenge_dispatch_seconds",
		Help:    "The time requests spent queued and executing",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"instruction"})
)

type tuple struct {
	queued time.Time
	req    Request
	ack    func(Request, error)
}

// DispatcherConfig is used to configure a dispatcher.
type DispatcherConfig struct {
	// The size of the request queue.
	Queue int

	// The logger used to report executed requests.
	Logger *zap.Logger
}

// Dispatcher executes submitted requests one at a time and in submission
// order against a bank.
type Dispatcher struct {
	bank   *Bank
	config DispatcherConfig
	pipe   chan tuple
	mutex  sync.RWMutex
	closed bool
	once   sync.Once
	tomb   tomb.Tomb
}

// NewDispatcher will create and return a dispatcher.
func NewDispatcher(bank *Bank, config DispatcherConfig) *Dispatcher {
	// check bank
	if bank == nil {
		panic("challenge: missing bank")
	}

	// set defaults
	if config.Queue <= 0 {
		config.Queue = 1
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	// prepare dispatcher
	d := &Dispatcher{
		bank:   bank,
		config: config,
		pipe:   make(chan tuple, config.Queue),
	}

	// run worker
	d.tomb.Go(d.worker)

	return d
}

// Submit will asynchronously execute the specified request and call the
// provided callback with the result. If no error is present the instruction
// has been committed. False is returned if the dispatcher has been closed.
func (d *Dispatcher) Submit(req Request, ack func(Request, error)) bool {
	// check if closed
	select {
	case <-d.tomb.Dying():
		return false
	default:
	}

	// check instruction
	if req.Instruction == nil {
		panic("challenge: missing instruction")
	}

	// ensure id
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	// create tuple
	tpl := tuple{
		queued: time.Now(),
		req:    req,
		ack:    ack,
	}

	// acquire mutex
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	// check if pipe has been closed
	if d.closed {
		return false
	}

	// queue request
	select {
	case d.pipe <- tpl:
		return true
	case <-d.tomb.Dying():
		return false
	}
}

// Close will close the dispatcher. Queued requests that have not yet been
// executed are dropped without calling their acks.
func (d *Dispatcher) Close() {
	// kill tomb
	d.tomb.Kill(nil)

	// close pipe
	d.once.Do(func() {
		d.mutex.Lock()
		d.closed = true
		close(d.pipe)
		d.mutex.Unlock()
	})

	// wait for exit
	_ = d.tomb.Wait()
}

func (d *Dispatcher) worker() error {
	for {
		// await next tuple or close
		var tpl tuple
		select {
		case <-d.tomb.Dying():
			return tomb.ErrDying
		case t, ok := <-d.pipe:
			// return if pipe has been closed
			if !ok {
				return tomb.ErrDying
			}

			tpl = t
		}

		// execute instruction
		name := tpl.req.Instruction.Name()
		err := d.bank.Execute(tpl.req.Instruction, tpl.req.Signers...)

		// observe
		dispatchTimings.WithLabelValues(name).Observe(time.Since(tpl.queued).Seconds())
		dispatchedRequests.WithLabelValues(name, resultLabel(err)).Inc()

		// log result
		if err != nil {
			d.config.Logger.Info("request failed",
				zap.Stringer("id", tpl.req.ID),
				zap.String("instruction", name),
				zap.Error(err))
		} else {
			d.config.Logger.Debug("request executed",
				zap.Stringer("id", tpl.req.ID),
				zap.String("instruction", name))
		}

		// call ack
		if tpl.ack != nil {
			tpl.ack(tpl.req, err)
		}
	}
}

func resultLabel(err error) string {
	// check success
	if err == nil {
		return "ok"
	}

	// check kind
	if kind := program.KindOf(err); kind != 0 {
		return kind.String()
	}

	return "internal"
}
