package refdata

// laborStandards maps service names to book labor hours. The flat-rate values
// are compiled in rather than shipped as a table: they change far less often
// than pricing and every deployment needs the identical set.
var laborStandards = map[string]float64{
	"Oil Change":                      0.5,
	"Transmission Fluid Change":       0.75,
	"Brake Fluid Change":              0.5,
	"Air Filter":                      0.25,
	"Cabin Air Filter":                0.25,
	"TPMS Sensor":                     0.5,
	"Brake Pad Replacement (Front)":   1.5,
	"Brake Pad Replacement (Rear)":    1.0,
	"Brake Rotor Replacement (Front)": 1.0,
	"Brake Rotor Replacement (Rear)":  1.0,
	"Alternator Replacement":          1.5,
	"Starter Replacement":             1.0,
	"Battery Replacement":             0.25,
	"Spark Plug Replacement (4-cyl)":  1.0,
	"Spark Plug Replacement (6-cyl)":  1.5,
	"Spark Plug Replacement (8-cyl)":  2.0,
	"Timing Belt Replacement":         4.0,
	"Water Pump Replacement":          2.5,
	"Thermostat Replacement":          1.0,
	"Radiator Replacement":            3.0,
	"AC Recharge":                     0.5,
	"Compressor Replacement":          3.0,
	"Tire Rotation":                   0.25,
	"Wheel Alignment":                 1.0,
	"Strut Replacement (Front)":       2.0,
	"Strut Replacement (Rear)":        1.5,
}
