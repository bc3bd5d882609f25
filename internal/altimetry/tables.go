package altimetry

// ErrorStat is a mean and maximum absolute altitude error (m).
type ErrorStat struct {
	Mean float64 `json:"mean"`
	Max  float64 `json:"max"`
}

// ErrorRow aggregates the errors of every method for levels below Below (m).
type ErrorRow struct {
	Below float64 `json:"below"`

	// Static ICAO standard atmosphere.
	Standard ErrorStat `json:"standard"`
	// Standard atmosphere compensated for the MSL pressure of the day.
	Barometric ErrorStat `json:"barometric"`
	// Hypsometric equation with the MSL temperature fixed at 15°C.
	HypsometricFixed ErrorStat `json:"hypsometric_fixed"`
	// Hypsometric equation with the actual MSL temperature.
	Hypsometric ErrorStat `json:"hypsometric"`
}

// ErrorTable compares computed altitudes against weather balloon soundings.
type ErrorTable struct {
	Station     string     `json:"station"`
	Period      string     `json:"period"`
	Description string     `json:"description"`
	Rows        []ErrorRow `json:"rows"`
}

func row(below float64, std, baro, fixed, actual [2]float64) ErrorRow {
	return ErrorRow{
		Below:            below,
		Standard:         ErrorStat{Mean: std[0], Max: std[1]},
		Barometric:       ErrorStat{Mean: baro[0], Max: baro[1]},
		HypsometricFixed: ErrorStat{Mean: fixed[0], Max: fixed[1]},
		Hypsometric:      ErrorStat{Mean: actual[0], Max: actual[1]},
	}
}

// ErrorTables holds the measured errors of each altitude method.
var ErrorTables = []ErrorTable{
	{
		Station:     "Brest",
		Period:      "Aug 2025",
		Description: "stable maritime atmosphere in anticyclonic conditions",
		Rows: []ErrorRow{
			row(500, [2]float64{85, 169}, [2]float64{5, 18}, [2]float64{4, 16}, [2]float64{1, 3}),
			row(1000, [2]float64{94, 175}, [2]float64{13, 43}, [2]float64{9, 33}, [2]float64{3, 10}),
			row(1500, [2]float64{114, 198}, [2]float64{26, 70}, [2]float64{15, 48}, [2]float64{10, 44}),
			row(2000, [2]float64{128, 221}, [2]float64{37, 97}, [2]float64{18, 57}, [2]float64{14, 45}),
			row(2500, [2]float64{143, 246}, [2]float64{49, 124}, [2]float64{22, 62}, [2]float64{20, 45}),
			row(3000, [2]float64{159, 270}, [2]float64{62, 153}, [2]float64{26, 62}, [2]float64{27, 53}),
			row(4000, [2]float64{203, 314}, [2]float64{88, 204}, [2]float64{55, 91}, [2]float64{43, 76}),
		},
	},
	{
		Station:     "Trappes",
		Period:      "Aug 2025",
		Description: "convective atmosphere over plains in anticyclonic conditions",
		Rows: []ErrorRow{
			row(500, [2]float64{130, 437}, [2]float64{4, 19}, [2]float64{4, 17}, [2]float64{0, 2}),
			row(1000, [2]float64{137, 440}, [2]float64{11, 45}, [2]float64{8, 37}, [2]float64{1, 6}),
			row(1500, [2]float64{147, 442}, [2]float64{19, 72}, [2]float64{11, 53}, [2]float64{3, 10}),
			row(2000, [2]float64{159, 444}, [2]float64{29, 98}, [2]float64{15, 62}, [2]float64{4, 12}),
			row(2500, [2]float64{173, 446}, [2]float64{39, 125}, [2]float64{17, 66}, [2]float64{6, 16}),
			row(3000, [2]float64{188, 448}, [2]float64{51, 150}, [2]float64{20, 66}, [2]float64{9, 23}),
			row(4000, [2]float64{221, 450}, [2]float64{76, 194}, [2]float64{40, 98}, [2]float64{18, 44}),
		},
	},
}
