package state

import (
	"go.uber.org/zap"
)

// Observer receives the readout after every accepted transition.
type Observer interface {
	OnUpdate(r Readout)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(r Readout)

func (f ObserverFunc) OnUpdate(r Readout) { f(r) }

// Session owns the current state of one interactive run. Edits are applied
// one at a time, each as a complete old -> new transition. A Session is not
// safe for concurrent use.
type Session struct {
	prop      *Propagator
	current   State
	marker    *Marker
	history   []Edit
	observers []Observer
	log       *zap.SugaredLogger
}

// NewSession starts a session at initial. A nil logger disables logging.
func NewSession(prop *Propagator, initial State, logger *zap.SugaredLogger) *Session {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Session{
		prop:    prop,
		current: initial,
		history: make([]Edit, 0),
		log:     logger,
	}
}

func (s *Session) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Session) State() State { return s.current }

func (s *Session) Readout() Readout { return NewReadout(s.current) }

func (s *Session) Propagator() *Propagator { return s.prop }

// History returns the edits accepted so far, oldest first.
func (s *Session) History() []Edit {
	out := make([]Edit, len(s.history))
	copy(out, s.history)
	return out
}

// Apply runs one edit through the propagator and notifies observers.
func (s *Session) Apply(e Edit) (State, error) {
	next, err := s.prop.Apply(s.current, e)
	if err != nil {
		s.log.Warnw("edit rejected", "edit", e.String(), "error", err)
		return s.current, err
	}
	s.current = next
	s.history = append(s.history, e)
	s.log.Debugw("edit applied",
		"field", e.Field.String(),
		"value", e.Value,
		"temperature", next.Temperature,
		"pressure", next.Pressure,
		"altitude", next.Altitude,
		"rh", next.RelativeHumidity,
	)
	s.notify()
	return next, nil
}

// Reconfigure swaps the lapse policy or altimeter reference. The current
// state is kept; the change only affects later edits.
func (s *Session) Reconfigure(lapse LapsePolicy, ref Reference) {
	s.prop.Lapse = lapse
	s.prop.Reference = ref
	s.log.Debugw("propagator reconfigured", "lapse", lapse.String(), "mode", ref.Mode.String())
}

// Mark captures the current state as the comparison marker.
func (s *Session) Mark() Marker {
	m := Capture(s.current)
	s.marker = &m
	s.log.Debugw("marker captured", "altitude", m.State.Altitude, "density", m.AirDensity)
	return m
}

// Marker returns the last captured marker, if any.
func (s *Session) Marker() (Marker, bool) {
	if s.marker == nil {
		return Marker{}, false
	}
	return *s.marker, true
}

func (s *Session) ClearMarker() { s.marker = nil }

func (s *Session) notify() {
	if len(s.observers) == 0 {
		return
	}
	r := NewReadout(s.current)
	for _, o := range s.observers {
		o.OnUpdate(r)
	}
}
