package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns an ID when the database does not. Keeps the models
// portable between postgres and the sqlite driver used in development.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// JobStatus represents the lifecycle state of a file transform job
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// TransformJob is an asynchronous file transform: an uploaded .xyz sounding
// file converted between two vertical reference surfaces.
type TransformJob struct {
	BaseModel
	InputSurface     string    `gorm:"type:varchar(10);not null"`
	OutputSurface    string    `gorm:"type:varchar(10);not null"`
	ValueKind        string    `gorm:"type:varchar(20);not null"`
	Status           JobStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	OriginalFilename string    `gorm:"type:varchar(255);not null"`
	InputPath        string    `gorm:"type:varchar(500);not null"`
	OutputPath       string    `gorm:"type:varchar(500)"`
	TotalPoints      int       `gorm:"not null;default:0"`
	ConvertedPoints  int       `gorm:"not null;default:0"`
	OutOfRangePoints int       `gorm:"not null;default:0"`
	Error            string    `gorm:"type:text"`
	SubmittedBy      string    `gorm:"type:varchar(200);index"`
	StartedAt        *time.Time
	FinishedAt       *time.Time
}

// Benchmark is a surveyed physical point with known elevations relative to
// the vertical datums. Heights are orthometric, in metres.
type Benchmark struct {
	BaseModel
	Designation    string   `gorm:"type:varchar(50);uniqueIndex;not null"`
	Lon            float64  `gorm:"not null;index"`
	Lat            float64  `gorm:"not null;index"`
	HeightTWVD2001 *float64 // height in the 1957-1991 Keelung datum
	HeightTWCD2021 *float64 // height in the 2021 datum
	Order          string   `gorm:"type:varchar(20);column:levelling_order"` // levelling order/class
	Agency         string   `gorm:"type:varchar(100)"`
	Description    string   `gorm:"type:varchar(500)"`
}

// TideGauge is a long-term tide station contributing to the datum definition.
type TideGauge struct {
	BaseModel
	StationCode string  `gorm:"type:varchar(20);uniqueIndex;not null"`
	Name        string  `gorm:"type:varchar(100);not null"`
	Lon         float64 `gorm:"not null"`
	Lat         float64 `gorm:"not null"`
	Operator    string  `gorm:"type:varchar(100)"`
	FirstYear   int     `gorm:"not null"`
	LastYear    int     `gorm:"not null"`
	Active      bool    `gorm:"not null;default:true"`

	Levels []TideGaugeLevel `gorm:"foreignKey:TideGaugeID"`
}

// TideGaugeLevel is a reference level derived from a station's tidal record:
// the ellipsoidal height of one reference surface at the station.
type TideGaugeLevel struct {
	BaseModel
	TideGaugeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Surface     string    `gorm:"type:varchar(10);not null"` // MSS, HAT, MHW, MLW, LAT, ISLW
	Height      float64   `gorm:"not null"`
	Epoch       string    `gorm:"type:varchar(20)"` // e.g. 2005.0, 2012.0
}
