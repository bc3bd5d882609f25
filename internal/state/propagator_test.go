package state_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/atmolab/internal/atmos"
	"github.com/san-kum/atmolab/internal/state"
)

var _ = Describe("Propagator", func() {
	var (
		prop  *state.Propagator
		start state.State
	)

	BeforeEach(func() {
		prop = state.NewPropagator(state.LapseNone, state.StandardReference())
		start = prop.New(15, 1013, 8)
	})

	Describe("New", func() {
		It("derives altitude from the standard atmosphere", func() {
			Expect(start.Altitude).To(BeNumerically("~", atmos.AltitudeFromStandardPressure(1013), 1e-9))
			Expect(prop.Verify(start, state.DefaultTolerance)).To(Succeed())
		})

		It("places the MSL pressure at zero altitude in QFF mode", func() {
			ref := state.Reference{GroundTemperature: 20, MSLPressure: 1020, Mode: state.QFF}
			qff := state.NewPropagator(state.LapseNone, ref)
			Expect(qff.New(20, 1020, 5).Altitude).To(BeNumerically("~", 0, 1e-9))
		})
	})

	Describe("humidity edits", func() {
		It("reads back the edited relative humidity", func() {
			s := prop.FromRelativeHumidity(start, 63)
			Expect(s.RelativeHumidity).To(BeNumerically("~", 63, 1e-9))
			Expect(s.Temperature).To(Equal(start.Temperature))
		})

		It("reads back the edited dew point", func() {
			s := prop.FromDewPoint(start, 4)
			Expect(s.DewPoint).To(BeNumerically("~", 4, 1e-9))
		})

		It("converts mixing ratio to specific humidity first", func() {
			s := prop.FromMixingRatio(start, 12)
			Expect(s.MixingRatio).To(BeNumerically("~", 12, 1e-9))
			Expect(s.SpecificHumidity).To(BeNumerically("~", atmos.SpecificHumidityFromMixingRatio(12), 1e-12))
			Expect(s.SpecificHumidity).To(BeNumerically("<", 12))
		})

		It("reads 100% at the saturation specific humidity", func() {
			for _, t := range []float64{-10, 5, 25, 35} {
				s := prop.FromTemperature(start, t)
				s = prop.FromSpecificHumidity(s, atmos.SpecificHumidity(100, s.Pressure, t))
				Expect(s.RelativeHumidity).To(BeNumerically("~", 100, 1e-9))
				Expect(s.DewPoint).To(BeNumerically("~", t, 1e-9))
			}
		})

		It("gives dry air a dew point of -Inf and stays consistent", func() {
			s := prop.FromSpecificHumidity(start, 0)
			Expect(s.RelativeHumidity).To(BeZero())
			Expect(math.IsInf(s.DewPoint, -1)).To(BeTrue())
			Expect(prop.Verify(s, state.DefaultTolerance)).To(Succeed())
		})
	})

	Describe("temperature edits", func() {
		It("does not change pressure or altitude", func() {
			prop.Lapse = state.LapseAuto
			s := prop.FromTemperature(start, 32)
			Expect(s.Pressure).To(Equal(start.Pressure))
			Expect(s.Altitude).To(Equal(start.Altitude))
			Expect(s.SpecificHumidity).To(Equal(start.SpecificHumidity))
			Expect(s.RelativeHumidity).To(BeNumerically("<", start.RelativeHumidity))
		})
	})

	Describe("altitude edits", func() {
		It("leaves temperature unchanged without a lapse policy", func() {
			s := prop.FromAltitude(start, 2500)
			Expect(s.Temperature).To(Equal(start.Temperature))
			Expect(s.Pressure).To(BeNumerically("~", atmos.PressureFromStandardAltitude(2500), 1e-9))
			Expect(s.SpecificHumidity).To(Equal(start.SpecificHumidity))
		})

		It("cools at the dry rate", func() {
			prop.Lapse = state.LapseDry
			s := prop.FromAltitude(start, start.Altitude+1000)
			Expect(s.Temperature).To(BeNumerically("~", start.Temperature-atmos.Gamma*1000, 1e-9))
		})

		It("handles a final partial step", func() {
			prop.Lapse = state.LapseDry
			s := prop.FromAltitude(start, start.Altitude+15)
			Expect(s.Temperature).To(BeNumerically("~", start.Temperature-atmos.Gamma*15, 1e-12))
		})

		It("warms when descending", func() {
			prop.Lapse = state.LapseAverage
			s := prop.FromAltitude(start, start.Altitude+2000)
			back := prop.FromAltitude(s, start.Altitude)
			Expect(s.Temperature).To(BeNumerically("~", start.Temperature-13, 1e-9))
			Expect(back.Temperature).To(BeNumerically("~", start.Temperature, 1e-9))
		})

		It("cools less under the moist rate", func() {
			dry := state.NewPropagator(state.LapseDry, state.StandardReference()).FromAltitude(start, 1500)
			prop.Lapse = state.LapseMoist
			moist := prop.FromAltitude(start, 1500)
			Expect(moist.Temperature).To(BeNumerically(">", dry.Temperature))
		})

		It("switches to the moist rate once saturated under auto", func() {
			prop.Lapse = state.LapseAuto
			saturated := prop.FromRelativeHumidity(start, 100)
			auto := prop.FromAltitude(saturated, saturated.Altitude+500)
			drop := saturated.Temperature - auto.Temperature
			Expect(drop).To(BeNumerically("<", atmos.Gamma*500))

			dryAir := prop.FromRelativeHumidity(start, 20)
			lifted := prop.FromAltitude(dryAir, dryAir.Altitude+500)
			Expect(dryAir.Temperature - lifted.Temperature).To(BeNumerically("~", atmos.Gamma*500, 1e-9))
		})

		It("conserves specific humidity so lifted air gets more humid", func() {
			prop.Lapse = state.LapseDry
			s := prop.FromRelativeHumidity(start, 50)
			lifted := prop.FromAltitude(s, s.Altitude+800)
			Expect(lifted.SpecificHumidity).To(Equal(s.SpecificHumidity))
			Expect(lifted.RelativeHumidity).To(BeNumerically(">", s.RelativeHumidity))
			Expect(prop.Verify(lifted, state.DefaultTolerance)).To(Succeed())
		})
	})

	Describe("pressure edits", func() {
		It("keeps the edited pressure and moves to its altitude", func() {
			s := prop.FromPressure(start, 850)
			Expect(s.Pressure).To(Equal(850.0))
			Expect(s.Altitude).To(BeNumerically("~", atmos.AltitudeFromStandardPressure(850), 1e-9))
			Expect(prop.Verify(s, state.DefaultTolerance)).To(Succeed())
		})

		It("integrates temperature like an altitude edit", func() {
			prop.Lapse = state.LapseAverage
			s := prop.FromPressure(start, 900)
			viaAltitude := prop.FromAltitude(start, atmos.AltitudeFromStandardPressure(900))
			Expect(s.Temperature).To(BeNumerically("~", viaAltitude.Temperature, 1e-9))
		})

		It("uses the hypsometric equation in QFF mode", func() {
			ref := state.Reference{GroundTemperature: 15, MSLPressure: 1013.25, Mode: state.QFF}
			qff := state.NewPropagator(state.LapseNone, ref)
			s := qff.FromPressure(start, 900)
			Expect(s.Altitude).To(BeNumerically("~", atmos.AltitudeFromPressure(900, 1013.25, 15), 1e-9))
		})

		It("keeps pressure and altitude on the QFF column when the temperature moves", func() {
			ref := state.Reference{GroundTemperature: 15, MSLPressure: 1013.25, Mode: state.QFF}
			qff := state.NewPropagator(state.LapseDry, ref)
			s := qff.FromPressure(qff.New(15, 1013.25, 5), 700)
			Expect(s.Pressure).To(Equal(700.0))
			Expect(s.Temperature).To(BeNumerically("<", 0))
			Expect(ref.PressureAt(s.Altitude, s.Temperature)).To(BeNumerically("~", 700, 1e-6))
			Expect(ref.AltitudeAt(s.Pressure, s.Temperature)).To(BeNumerically("~", s.Altitude, 1e-3))
			Expect(qff.Verify(s, state.DefaultTolerance)).To(Succeed())
		})
	})

	Describe("Apply", func() {
		It("dispatches each field and stays consistent", func() {
			prop.Lapse = state.LapseAuto
			edits := []state.Edit{
				{Field: state.RelativeHumidity, Value: 70},
				{Field: state.Altitude, Value: 1200},
				{Field: state.Temperature, Value: 18},
				{Field: state.DewPoint, Value: 9},
				{Field: state.Pressure, Value: 700},
				{Field: state.MixingRatio, Value: 3},
				{Field: state.Altitude, Value: 0},
				{Field: state.SpecificHumidity, Value: 11},
			}
			s := start
			for _, e := range edits {
				var err error
				s, err = prop.Apply(s, e)
				Expect(err).NotTo(HaveOccurred())
				Expect(prop.Verify(s, state.DefaultTolerance)).To(Succeed(), "after %s", e)
			}
		})

		It("does not modify its input", func() {
			before := start
			_, err := prop.Apply(start, state.Edit{Field: state.Altitude, Value: 3000})
			Expect(err).NotTo(HaveOccurred())
			Expect(start).To(Equal(before))
		})

		It("rejects unknown fields", func() {
			_, err := prop.Apply(start, state.Edit{Field: state.Field(42), Value: 1})
			Expect(errors.Is(err, state.ErrUnknownField)).To(BeTrue())
		})
	})

	Describe("Verify", func() {
		It("reports the inconsistent field", func() {
			s := start
			s.MixingRatio += 1
			err := prop.Verify(s, state.DefaultTolerance)
			Expect(errors.Is(err, state.ErrInconsistent)).To(BeTrue())

			var fe *state.FieldError
			Expect(errors.As(err, &fe)).To(BeTrue())
			Expect(fe.Field).To(Equal(state.MixingRatio))
		})

		It("checks pressure against altitude in QNH mode", func() {
			s := start
			s.Altitude += 100
			Expect(prop.Verify(s, state.DefaultTolerance)).To(MatchError(state.ErrInconsistent))
		})

		It("checks pressure against altitude in QFF mode", func() {
			ref := state.Reference{GroundTemperature: 15, MSLPressure: 1013.25, Mode: state.QFF}
			qff := state.NewPropagator(state.LapseDry, ref)
			s := qff.FromAltitude(qff.New(15, 1013.25, 5), 1500)
			Expect(qff.Verify(s, state.DefaultTolerance)).To(Succeed())

			s.Altitude += 100
			err := qff.Verify(s, state.DefaultTolerance)
			var fe *state.FieldError
			Expect(errors.As(err, &fe)).To(BeTrue())
			Expect(fe.Field).To(Equal(state.Pressure))
		})
	})
})

var _ = Describe("parsing", func() {
	DescribeTable("fields",
		func(in string, want state.Field) {
			f, err := state.ParseField(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(f).To(Equal(want))
		},
		Entry("snake case", "relative_humidity", state.RelativeHumidity),
		Entry("alias", "rh", state.RelativeHumidity),
		Entry("dew point alias", "td", state.DewPoint),
		Entry("altitude alias", "alt", state.Altitude),
		Entry("mixed case", " Pressure ", state.Pressure),
	)

	It("rejects unknown names", func() {
		_, err := state.ParseField("wind")
		Expect(err).To(MatchError(state.ErrUnknownField))
		_, err = state.ParseLapsePolicy("steep")
		Expect(err).To(MatchError(state.ErrUnknownPolicy))
		_, err = state.ParseAltimeterMode("qne")
		Expect(err).To(MatchError(state.ErrUnknownMode))
	})

	It("round-trips policy names", func() {
		for p := state.LapseNone; p <= state.LapseAverage; p++ {
			got, err := state.ParseLapsePolicy(p.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(p))
		}
		Expect(state.LapseAverage.Next()).To(Equal(state.LapseNone))
	})
})
