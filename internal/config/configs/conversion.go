package configs

// Conversion configures offline conversion uploads triggered by bookings.
type Conversion struct {
	ActionName string  `env:"ACTION_NAME" envDefault:"Membership Booking"`
	Value      float64 `env:"VALUE" envDefault:"100"`
	Currency   string  `env:"CURRENCY" envDefault:"USD"`
}
