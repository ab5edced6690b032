// Package catalog defines the trade-compliance records shown by the dashboard
// and the sample rows the database is seeded with.
package catalog

// TariffCode is an HS code entry with its duty rate.
type TariffCode struct {
	Code        string
	Description string
	Duty        string
	Status      string
}

// RegulatoryUpdate is a published change in trade regulation.
type RegulatoryUpdate struct {
	PublishedOn string
	Title       string
	Description string
	Priority    string
	Countries   []string
}

// Watchlist is a sanctions or restricted-party list screened against.
type Watchlist struct {
	Name            string
	EntryCount      int
	UpdateFrequency string
	Status          string
}

// ScreeningResult is the outcome of a past screening of one entity.
type ScreeningResult struct {
	Entity      string
	Status      string
	RiskLevel   string
	Lists       []string
	LastChecked string
}

// LicenseApplication is an export or import license request.
type LicenseApplication struct {
	Reference        string
	Type             string
	Product          string
	Destination      string
	Status           string
	Priority         string
	SubmittedOn      string
	ExpectedDecision string
	ApprovedOn       string
	DaysRemaining    *int
	ECCN             string
	Quantity         int64
	UnitValue        float64
	EndUser          string
	EndUse           string
}

// LicenseRequirement states whether a product needs a license for a destination.
type LicenseRequirement struct {
	Product        string
	Destination    string
	Required       bool
	Type           string
	ProcessingTime string
	ECCN           string
	Reason         string
	Exception      string
}

// Integration is a connection to an external trade or ERP system.
type Integration struct {
	Name        string
	Description string
	Status      string
	LastSync    string
	Health      int
	Features    []string
}

// APIEndpoint is a public endpoint with its traffic figures.
type APIEndpoint struct {
	Name          string
	Endpoint      string
	Status        string
	Requests      int
	AvgResponseMS int
}

// Option is a select-list choice.
type Option struct {
	Value string
	Label string
}

// ShippingOption compares the cost and transit time of a shipping mode.
type ShippingOption struct {
	Mode    string
	Cost    int
	Transit string
}

// Metric is a headline figure on the dashboard.
type Metric struct {
	Title  string
	Value  string
	Change string
	Tone   string
}

// Point is one labelled value of a chart series.
type Point struct {
	Label string
	Value int
	Tone  string
}

// Alert is an entry in the dashboard's recent alerts feed.
type Alert struct {
	Title    string
	Detail   string
	Severity string
}

// SystemStatus is the state of one platform component.
type SystemStatus struct {
	Name   string
	State  string
	Detail string
}

// Label returns the display label for value among options, or value itself.
func Label(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
