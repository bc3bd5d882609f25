package state_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/atmolab/internal/state"
)

var _ = Describe("Session", func() {
	var (
		sess     *state.Session
		readouts []state.Readout
	)

	BeforeEach(func() {
		prop := state.NewPropagator(state.LapseDry, state.StandardReference())
		sess = state.NewSession(prop, prop.New(15, 1013, 0), nil)
		readouts = nil
		sess.AddObserver(state.ObserverFunc(func(r state.Readout) {
			readouts = append(readouts, r)
		}))
	})

	It("notifies observers once per accepted edit", func() {
		_, err := sess.Apply(state.Edit{Field: state.RelativeHumidity, Value: 50})
		Expect(err).NotTo(HaveOccurred())
		_, err = sess.Apply(state.Edit{Field: state.Altitude, Value: 1000})
		Expect(err).NotTo(HaveOccurred())

		Expect(readouts).To(HaveLen(2))
		last := readouts[1]
		Expect(last.Altitude).To(Equal(1000.0))
		Expect(last.AirDensity).To(BeNumerically(">", 1.0))
		Expect(last.BoilingPoint).To(BeNumerically("<", 100))
		Expect(last.FlightLevel).To(BeNumerically("~", 1000*3.28084/100, 1e-6))
		Expect(sess.History()).To(HaveLen(2))
	})

	It("keeps the state on a rejected edit", func() {
		before := sess.State()
		_, err := sess.Apply(state.Edit{Field: state.Field(-1), Value: 3})
		Expect(err).To(MatchError(state.ErrUnknownField))
		Expect(sess.State()).To(Equal(before))
		Expect(readouts).To(BeEmpty())
		Expect(sess.History()).To(BeEmpty())
	})

	It("captures a marker that later edits do not alter", func() {
		_, ok := sess.Marker()
		Expect(ok).To(BeFalse())

		m := sess.Mark()
		_, err := sess.Apply(state.Edit{Field: state.Temperature, Value: 30})
		Expect(err).NotTo(HaveOccurred())

		got, ok := sess.Marker()
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(m))
		Expect(got.State.Temperature).To(Equal(15.0))
		Expect(got.AirDensity).To(BeNumerically(">", sess.Readout().AirDensity))

		sess.ClearMarker()
		_, ok = sess.Marker()
		Expect(ok).To(BeFalse())
	})

	It("applies a new lapse policy to later edits only", func() {
		sess.Reconfigure(state.LapseNone, state.StandardReference())
		s, err := sess.Apply(state.Edit{Field: state.Altitude, Value: 2000})
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Temperature).To(Equal(15.0))
	})

	It("flags saturated air in the readout", func() {
		_, err := sess.Apply(state.Edit{Field: state.DewPoint, Value: 15})
		Expect(err).NotTo(HaveOccurred())
		r := sess.Readout()
		Expect(r.RelativeHumidity).To(BeNumerically("~", 100, 1e-9))
		Expect(r.SaturationHumidity).To(BeNumerically("~", r.SpecificHumidity, 1e-9))
	})
})
