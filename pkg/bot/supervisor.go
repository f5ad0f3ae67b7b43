package bot

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"texasholdem-server/pkg/table"
)

// Supervisor runs decision cycles for automated seats. At most one cycle
// goroutine exists per table; it snapshots state under the table lock,
// releases it while the decider thinks, then reacquires it to apply the
// action. The cycle exits on its own once a human is up or the hand is over.
type Supervisor struct {
	log     logrus.FieldLogger
	decider Decider
	delay   time.Duration
	notify  func(*table.Table)

	mu      sync.Mutex
	running map[string]bool
}

// NewSupervisor returns a supervisor that paces automated actions by delay
// and calls notify after every applied action
func NewSupervisor(logger logrus.FieldLogger, decider Decider, delay time.Duration, notify func(*table.Table)) *Supervisor {
	if notify == nil {
		notify = func(*table.Table) {}
	}

	return &Supervisor{
		log:     logger,
		decider: decider,
		delay:   delay,
		notify:  notify,
		running: make(map[string]bool),
	}
}

// Wake starts a decision cycle for the table unless one is already running
// or no automated seat is due to act. Call it after anything that may hand
// the action to a bot: creating a table, starting a hand, a human action.
// The running flag only changes under s.mu, and always together with a
// BotToAct check, so a pending bot turn can never be stranded between a
// cycle winding down and a Wake skipping the stale flag.
func (s *Supervisor) Wake(t *table.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running[t.ID()] {
		return
	}

	if _, ok := t.BotToAct(); !ok {
		return
	}

	s.running[t.ID()] = true
	go s.cycle(t)
}

// release clears the table's running flag, unless a bot came back on the
// clock since the caller last looked; then the flag stays and the cycle
// keeps going
func (s *Supervisor) release(t *table.Table) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := t.BotToAct(); ok {
		return false
	}

	delete(s.running, t.ID())
	return true
}

func (s *Supervisor) cycle(t *table.Table) {
	log := s.log.WithField("table", t.ID())

	for {
		playerID, ok := t.BotToAct()
		if !ok {
			if s.release(t) {
				return
			}

			continue
		}

		// snapshot under the table lock; think without it
		state := t.State(playerID)

		time.Sleep(s.delay)

		decision, err := s.decider.Decide(state, playerID)
		if err != nil || !decision.Action.IsValid() {
			log.WithError(err).WithField("player", playerID).Warn("decider failed, using safe default")
			decision = safeDefault(state, playerID)
		}

		if err := t.ProcessAction(playerID, decision.Action, decision.Amount); err != nil {
			log.WithError(err).WithField("player", playerID).Error("could not apply decision")

			if err := t.ProcessAction(playerID, table.Fold, 0); err != nil {
				// the seat is no longer on the clock; the next pass decides
				// whether the cycle still has work
				continue
			}
		}

		s.notify(t)
	}
}
