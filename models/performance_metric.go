package models

// MetricType names a periodic quantitative score for a representative
type MetricType string

const (
	MetricAttendanceRate     MetricType = "ATTENDANCE_RATE"
	MetricBillsSponsored     MetricType = "BILLS_SPONSORED"
	MetricQuestionsAsked     MetricType = "QUESTIONS_ASKED"
	MetricConstituencyVisits MetricType = "CONSTITUENCY_VISITS"
	MetricResponseRate       MetricType = "RESPONSE_RATE"
)

// PerformanceMetric represents one reported score for one period,
// e.g. ATTENDANCE_RATE 0.92 for "2024-Q1"
type PerformanceMetric struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	RepresentativeID uint       `gorm:"not null;index" json:"representative_id"`
	MetricType       MetricType `gorm:"type:varchar(30);not null" json:"metric_type"`
	Value            float64    `gorm:"not null" json:"value"`
	Period           string     `gorm:"type:varchar(20);not null" json:"period"`
	Description      string     `gorm:"type:text" json:"description,omitempty"`
}
