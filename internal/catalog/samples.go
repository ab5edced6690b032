package catalog

func intPtr(v int) *int { return &v }

// OriginCountries are the origins offered by the landed cost calculator.
var OriginCountries = []Option{
	{Value: "cn", Label: "China"},
	{Value: "de", Label: "Germany"},
	{Value: "jp", Label: "Japan"},
	{Value: "us", Label: "United States"},
	{Value: "mx", Label: "Mexico"},
}

// DestinationCountries are the destinations offered by the landed cost calculator.
var DestinationCountries = []Option{
	{Value: "us", Label: "United States"},
	{Value: "ca", Label: "Canada"},
	{Value: "gb", Label: "United Kingdom"},
	{Value: "de", Label: "Germany"},
	{Value: "au", Label: "Australia"},
}

// ShippingModes are the transport modes offered by the landed cost calculator.
var ShippingModes = []Option{
	{Value: "air", Label: "Air Freight"},
	{Value: "sea", Label: "Sea Freight"},
	{Value: "express", Label: "Express Courier"},
	{Value: "ground", Label: "Ground Transport"},
}

// ShippingComparison lists indicative totals per shipping mode.
var ShippingComparison = []ShippingOption{
	{Mode: "Air", Cost: 12450, Transit: "3-5 days"},
	{Mode: "Sea", Cost: 8920, Transit: "15-20 days"},
	{Mode: "Express", Cost: 15600, Transit: "1-2 days"},
	{Mode: "Ground", Cost: 7800, Transit: "7-10 days"},
}

// RegulatoryCountries are the country filters on the regulatory page.
var RegulatoryCountries = []Option{
	{Value: "all", Label: "All Countries"},
	{Value: "US", Label: "United States"},
	{Value: "CA", Label: "Canada"},
	{Value: "MX", Label: "Mexico"},
	{Value: "EU", Label: "European Union"},
	{Value: "CN", Label: "China"},
}

// LicenseDestinations are the destinations accepted on a new license application.
var LicenseDestinations = []Option{
	{Value: "cn", Label: "China"},
	{Value: "ru", Label: "Russia"},
	{Value: "ir", Label: "Iran"},
	{Value: "de", Label: "Germany"},
	{Value: "jp", Label: "Japan"},
}

// LicenseTypes are the license kinds an application can request.
var LicenseTypes = []Option{
	{Value: "export", Label: "Export License"},
	{Value: "reexport", Label: "Re-export Authorization"},
	{Value: "temporary", Label: "Temporary Import License"},
	{Value: "deemed", Label: "Deemed Export License"},
}

// LicensePriorities map the application form's urgency to a priority label.
var LicensePriorities = []Option{
	{Value: "standard", Label: "Medium"},
	{Value: "expedited", Label: "High"},
	{Value: "emergency", Label: "Critical"},
}

// DashboardMetrics are the headline figures.
var DashboardMetrics = []Metric{
	{Title: "Active Alerts", Value: "23", Change: "+12% from last month", Tone: "destructive"},
	{Title: "Compliance Rate", Value: "94.2%", Change: "+2.1% from last week", Tone: "success"},
	{Title: "Pending Licenses", Value: "47", Change: "Average: 5.2 days processing", Tone: "warning"},
	{Title: "Total Transactions", Value: "1,847", Change: "+18% from last month", Tone: "info"},
}

// AlertsTrend is the monthly count of compliance alerts.
var AlertsTrend = []Point{
	{Label: "Jan", Value: 4},
	{Label: "Feb", Value: 7},
	{Label: "Mar", Value: 12},
	{Label: "Apr", Value: 8},
	{Label: "May", Value: 15},
	{Label: "Jun", Value: 9},
}

// ComplianceDistribution splits transactions by compliance state, in percent.
var ComplianceDistribution = []Point{
	{Label: "Compliant", Value: 85, Tone: "success"},
	{Label: "Warning", Value: 12, Tone: "warning"},
	{Label: "Critical", Value: 3, Tone: "destructive"},
}

// RegionalActivity counts transactions per region.
var RegionalActivity = []Point{
	{Label: "North America", Value: 450},
	{Label: "Europe", Value: 380},
	{Label: "Asia Pacific", Value: 320},
	{Label: "Latin America", Value: 180},
	{Label: "Middle East", Value: 120},
}

// RecentAlerts is the dashboard alert feed.
var RecentAlerts = []Alert{
	{Title: "Sanctioned Entity Detected", Detail: "ABC Corp flagged in transaction TX-2024-001", Severity: "Critical"},
	{Title: "Export License Required", Detail: "Dual-use item needs approval for China export", Severity: "Warning"},
	{Title: "New Trade Agreement", Detail: "USMCA updates effective immediately", Severity: "Info"},
}

// PlatformStatus lists the health of platform components.
var PlatformStatus = []SystemStatus{
	{Name: "Data Sync Status", State: "Online", Detail: "Last sync: 2 minutes ago"},
	{Name: "API Response Time", State: "Normal", Detail: "Average: 145ms"},
	{Name: "Database Health", State: "Optimal", Detail: "99.9% uptime this month"},
}

// SampleTariffCodes seed the tariff_codes table.
var SampleTariffCodes = []TariffCode{
	{Code: "8471.30.01", Description: "Portable automatic data processing machines", Duty: "0%", Status: "Active"},
	{Code: "8517.12.00", Description: "Telephones for cellular networks", Duty: "0%", Status: "Active"},
	{Code: "2203.00.00", Description: "Beer made from malt", Duty: "$0.226/liter", Status: "Updated"},
	{Code: "8703.23.00", Description: "Motor cars with spark-ignition engine", Duty: "2.5%", Status: "Active"},
}

// SampleRegulatoryUpdates seed the regulatory_updates table.
var SampleRegulatoryUpdates = []RegulatoryUpdate{
	{
		PublishedOn: "2024-07-03",
		Title:       "New USMCA Rules of Origin Updates",
		Description: "Updated rules for automotive sector effective immediately",
		Priority:    "High",
		Countries:   []string{"US", "CA", "MX"},
	},
	{
		PublishedOn: "2024-07-02",
		Title:       "EU CBAM Phase 2 Implementation",
		Description: "Carbon Border Adjustment Mechanism expanded coverage",
		Priority:    "Medium",
		Countries:   []string{"EU"},
	},
	{
		PublishedOn: "2024-07-01",
		Title:       "China Export Control Updates",
		Description: "New dual-use items added to controlled list",
		Priority:    "Critical",
		Countries:   []string{"CN", "Global"},
	},
}

// SampleWatchlists seed the watchlists table.
var SampleWatchlists = []Watchlist{
	{Name: "OFAC SDN", EntryCount: 12847, UpdateFrequency: "Daily", Status: "Active"},
	{Name: "BIS Entity List", EntryCount: 1234, UpdateFrequency: "Weekly", Status: "Active"},
	{Name: "EU Sanctions", EntryCount: 2456, UpdateFrequency: "Daily", Status: "Active"},
	{Name: "UN Security Council", EntryCount: 987, UpdateFrequency: "Monthly", Status: "Active"},
	{Name: "UK Sanctions", EntryCount: 1567, UpdateFrequency: "Daily", Status: "Active"},
}

// SampleScreeningResults seed the screening_results table.
var SampleScreeningResults = []ScreeningResult{
	{Entity: "ABC Trading Corp", Status: "Clear", RiskLevel: "Low", Lists: []string{"SDN", "BIS DPL", "EU Sanctions"}, LastChecked: "2024-07-05 10:30"},
	{Entity: "XYZ International Ltd", Status: "Warning", RiskLevel: "Medium", Lists: []string{"OFAC 50%", "UN Sanctions"}, LastChecked: "2024-07-05 09:15"},
	{Entity: "Restricted Entity Inc", Status: "Blocked", RiskLevel: "High", Lists: []string{"SDN Match", "BIS Entity List"}, LastChecked: "2024-07-05 08:45"},
}

// SampleLicenseApplications seed the license_applications table.
var SampleLicenseApplications = []LicenseApplication{
	{
		Reference:        "LIC-2024-001",
		Type:             "Export License",
		Product:          "Advanced Semiconductors",
		Destination:      "Singapore",
		Status:           "Under Review",
		Priority:         "High",
		SubmittedOn:      "2024-06-15",
		ExpectedDecision: "2024-07-20",
		DaysRemaining:    intPtr(15),
	},
	{
		Reference:   "LIC-2024-002",
		Type:        "Re-export Authorization",
		Product:     "Encryption Software",
		Destination: "Germany",
		Status:      "Approved",
		Priority:    "Medium",
		SubmittedOn: "2024-06-01",
		ApprovedOn:  "2024-06-28",
	},
	{
		Reference:        "LIC-2024-003",
		Type:             "Temporary Import License",
		Product:          "Test Equipment",
		Destination:      "United States",
		Status:           "Pending Documentation",
		Priority:         "Critical",
		SubmittedOn:      "2024-06-20",
		ExpectedDecision: "2024-07-10",
		DaysRemaining:    intPtr(5),
	},
}

// SampleLicenseRequirements seed the license_requirements table.
var SampleLicenseRequirements = []LicenseRequirement{
	{Product: "Dual-Use Electronics", Destination: "China", Required: true, Type: "BIS Export License", ProcessingTime: "60-90 days", ECCN: "3A001.a.2"},
	{Product: "Medical Devices", Destination: "European Union", Required: false, Type: "No License Required", ProcessingTime: "N/A", Reason: "EAR99 Classification"},
	{Product: "Cybersecurity Software", Destination: "Canada", Required: true, Type: "License Exception", ProcessingTime: "Immediate", Exception: "TSR"},
}

// SampleIntegrations seed the integrations table.
var SampleIntegrations = []Integration{
	{Name: "SAP GTS", Description: "Global Trade Services integration for automated compliance", Status: "Connected", LastSync: "2024-07-05 10:30", Health: 98, Features: []string{"Compliance Engine", "Restricted Party Screening", "License Management"}},
	{Name: "Oracle GTM", Description: "Global Trade Management for supply chain compliance", Status: "Connected", LastSync: "2024-07-05 09:45", Health: 95, Features: []string{"Trade Compliance", "Duty Calculation", "Preferential Treatment"}},
	{Name: "Microsoft Dynamics", Description: "ERP integration for seamless trade data flow", Status: "Disconnected", LastSync: "2024-07-04 16:20", Health: 0, Features: []string{"Financial Data", "Product Information", "Customer Management"}},
	{Name: "Descartes", Description: "Logistics and transportation management", Status: "Connected", LastSync: "2024-07-05 11:15", Health: 89, Features: []string{"Shipping Management", "Route Optimization", "Carrier Integration"}},
	{Name: "CargoWise", Description: "Comprehensive logistics platform integration", Status: "Pending", LastSync: "Never", Health: 0, Features: []string{"Freight Management", "Documentation", "Customs Clearance"}},
	{Name: "Amber Road", Description: "Trade management and compliance platform", Status: "Connected", LastSync: "2024-07-05 08:30", Health: 92, Features: []string{"Global Trade Content", "Export Controls", "Free Trade Agreements"}},
}

// SampleAPIEndpoints seed the api_endpoints table.
var SampleAPIEndpoints = []APIEndpoint{
	{Name: "Tariff Classification API", Endpoint: "/api/v1/classification", Status: "Active", Requests: 2847, AvgResponseMS: 145},
	{Name: "Sanctions Screening API", Endpoint: "/api/v1/screening", Status: "Active", Requests: 15634, AvgResponseMS: 89},
	{Name: "Duty Calculation API", Endpoint: "/api/v1/duties", Status: "Active", Requests: 5923, AvgResponseMS: 203},
	{Name: "License Check API", Endpoint: "/api/v1/licenses", Status: "Maintenance", Requests: 1456, AvgResponseMS: 312},
}
