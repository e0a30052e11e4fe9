package configs

// Pipeline holds defaults applied while generating campaign artifacts.
type Pipeline struct {
	// LandingBaseURL is the public origin landing pages are served from.
	LandingBaseURL string `env:"LANDING_BASE_URL" envDefault:"http://localhost:8080"`
	// DefaultBudget and DefaultTargetCPA replace non-positive generated
	// values.
	DefaultBudget    float64  `env:"DEFAULT_BUDGET" envDefault:"50"`
	DefaultTargetCPA float64  `env:"DEFAULT_TARGET_CPA" envDefault:"75"`
	DefaultGeo       string   `env:"DEFAULT_GEO" envDefault:"US"`
	Modifiers        []string `env:"KEYWORD_MODIFIERS" envSeparator:","`
	// MetricsWindowDays is the trailing window pulled from the platform.
	MetricsWindowDays int `env:"METRICS_WINDOW_DAYS" envDefault:"30"`
}
