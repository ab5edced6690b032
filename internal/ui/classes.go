package ui

const (
	classSuccess     = "badge-success"
	classInfo        = "badge-info"
	classWarning     = "badge-warning"
	classDestructive = "badge-destructive"
	classMuted       = "badge-muted"

	textSuccess     = "text-success"
	textInfo        = "text-info"
	textWarning     = "text-warning"
	textDestructive = "text-destructive"
	textMuted       = "text-muted"
)

// classTable maps a status string to a CSS class, with a fallback for
// anything it does not know.
type classTable struct {
	classes  map[string]string
	fallback string
}

func (t classTable) lookup(key string) string {
	if c, ok := t.classes[key]; ok {
		return c
	}
	return t.fallback
}

var (
	licenseStatuses = classTable{
		classes: map[string]string{
			"Approved":              classSuccess,
			"Under Review":          classInfo,
			"Pending Documentation": classWarning,
			"Denied":                classDestructive,
		},
		fallback: classMuted,
	}

	priorities = classTable{
		classes: map[string]string{
			"Critical": textDestructive,
			"High":     textWarning,
			"Medium":   textInfo,
		},
		fallback: textMuted,
	}

	systemStatuses = classTable{
		classes: map[string]string{
			"Connected":    classSuccess,
			"Active":       classSuccess,
			"Disconnected": classDestructive,
			"Pending":      classWarning,
			"Maintenance":  classWarning,
		},
		fallback: classMuted,
	}

	screeningStatuses = classTable{
		classes: map[string]string{
			"Clear":   classSuccess,
			"Warning": classWarning,
			"Blocked": classDestructive,
		},
		fallback: classMuted,
	}

	riskLevels = classTable{
		classes: map[string]string{
			"Low":    textSuccess,
			"Medium": textWarning,
			"High":   textDestructive,
		},
		fallback: textMuted,
	}

	tones = classTable{
		classes: map[string]string{
			"success":     textSuccess,
			"info":        textInfo,
			"warning":     textWarning,
			"destructive": textDestructive,
		},
		fallback: textMuted,
	}

	severities = classTable{
		classes: map[string]string{
			"Critical": classDestructive,
			"Warning":  classWarning,
			"Info":     classInfo,
		},
		fallback: classMuted,
	}

	tariffStatuses = classTable{
		classes: map[string]string{
			"Active":  classSuccess,
			"Updated": classInfo,
		},
		fallback: classMuted,
	}
)

// LicenseStatusClass returns the badge class of a license application status.
func LicenseStatusClass(status string) string { return licenseStatuses.lookup(status) }

// PriorityClass returns the text class of a priority level.
func PriorityClass(priority string) string { return priorities.lookup(priority) }

// SystemStatusClass returns the badge class of an integration or endpoint status.
func SystemStatusClass(status string) string { return systemStatuses.lookup(status) }

// ScreeningStatusClass returns the badge class of a screening outcome.
func ScreeningStatusClass(status string) string { return screeningStatuses.lookup(status) }

// RiskClass returns the text class of a risk level.
func RiskClass(level string) string { return riskLevels.lookup(level) }

// ToneClass returns the text class of a dashboard tone.
func ToneClass(tone string) string { return tones.lookup(tone) }

// SeverityClass returns the badge class of an alert severity.
func SeverityClass(severity string) string { return severities.lookup(severity) }

// TariffStatusClass returns the badge class of a tariff code status.
func TariffStatusClass(status string) string { return tariffStatuses.lookup(status) }

// HealthClass returns the text class of an integration health score.
func HealthClass(health int) string {
	switch {
	case health >= 95:
		return textSuccess
	case health >= 80:
		return textWarning
	default:
		return textDestructive
	}
}
