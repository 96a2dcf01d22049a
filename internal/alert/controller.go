package alert

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultPollInterval bounds how long the playback worker can take to
// notice a stop request.
const defaultPollInterval = 200 * time.Millisecond

// Controller starts and stops the background alarm loop on edges of the
// SOS signal. There is never more than one playback worker. All methods
// are safe for concurrent use; none of them block on the worker except
// Release, which joins it during shutdown.
type Controller struct {
	out  Output
	log  *zap.SugaredLogger
	poll time.Duration

	mu       sync.Mutex
	active   bool
	released bool
	stop     chan struct{}
	incident string

	wg      sync.WaitGroup
	playErr sync.Once
}

// NewController creates a controller around the given audio output. A nil
// output degrades to the silent NopOutput.
func NewController(out Output, log *zap.SugaredLogger) *Controller {
	if out == nil {
		out = NopOutput{}
	}
	return &Controller{
		out:  out,
		log:  log,
		poll: defaultPollInterval,
	}
}

// OnSignal dispatches on edges of the SOS signal: a rising edge starts the
// alarm, a falling edge stops it, stable runs are no-ops.
func (c *Controller) OnSignal(previous, current bool) {
	switch {
	case !previous && current:
		c.StartAlarm()
	case previous && !current:
		c.StopAlarm()
	}
}

// StartAlarm spins up the playback worker and returns immediately. Calling
// it while an alarm is already live is a no-op.
func (c *Controller) StartAlarm() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active || c.released {
		return
	}

	c.active = true
	c.incident = uuid.NewString()
	c.stop = make(chan struct{})

	c.wg.Add(1)
	go c.playLoop(c.stop)

	c.log.Infow("alarm started", "incident", c.incident)
}

// StopAlarm signals the worker to quit and cuts any sounding audio
// immediately. Safe to call when no alarm is active.
func (c *Controller) StopAlarm() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return
	}

	c.active = false
	close(c.stop)
	c.out.StopAll()

	c.log.Infow("alarm stopped", "incident", c.incident)
}

// Active reports whether a playback worker is live.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Release stops the alarm, joins the worker and tears down the audio
// output. It is idempotent and callable even if no alarm ever started.
func (c *Controller) Release() {
	c.StopAlarm()
	c.wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.released {
		return
	}
	c.released = true

	if err := c.out.Close(); err != nil {
		c.log.Warnw("closing audio output", "error", err)
	}
}

// playLoop repeats the alarm clip until stop is closed, checking for the
// stop request between short sleeps so it is honored within one poll
// interval rather than one clip length.
func (c *Controller) playLoop(stop <-chan struct{}) {
	defer c.wg.Done()

	interval := c.out.ClipDuration()
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(c.poll)
	defer ticker.Stop()

	next := time.Now()
	for {
		if !time.Now().Before(next) {
			if err := c.out.PlayOnce(); err != nil {
				// A broken device degrades to a silent alarm.
				c.playErr.Do(func() {
					c.log.Warnw("alarm playback unavailable, continuing silently", "error", err)
				})
			}
			next = time.Now().Add(interval)
		}

		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}
