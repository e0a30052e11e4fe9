package configs

import (
	"time"
)

// Ads configures the advertising platform REST client. The platform counts
// as configured only when DeveloperToken, CustomerID and AccessToken are all
// set.
type Ads struct {
	BaseURL         string `env:"BASE_URL" envDefault:"https://googleads.googleapis.com/v17"`
	DeveloperToken  string `env:"DEVELOPER_TOKEN"`
	CustomerID      string `env:"CUSTOMER_ID"`
	LoginCustomerID string `env:"LOGIN_CUSTOMER_ID"`
	AccessToken     string `env:"ACCESS_TOKEN"`
	// Timeout applies to every platform call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"20s"`
	// RateLimit is the sustained requests per second sent to the platform.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"5"`
	RateBurst int     `env:"RATE_BURST" envDefault:"5"`
	// CPCBid is the default ad group max CPC in account currency.
	CPCBid float64 `env:"CPC_BID" envDefault:"2.5"`
}

// Missing names the credentials that are not set.
func (c Ads) Missing() []string {
	var out []string
	if c.DeveloperToken == "" {
		out = append(out, "ADS_DEVELOPER_TOKEN")
	}
	if c.CustomerID == "" {
		out = append(out, "ADS_CUSTOMER_ID")
	}
	if c.AccessToken == "" {
		out = append(out, "ADS_ACCESS_TOKEN")
	}
	return out
}
