package domain

import (
	"github.com/google/uuid"
)

// PaginatedResponse wraps list payloads with paging metadata
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// SurfaceDTO describes one vertical reference surface and its load state
type SurfaceDTO struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Datum      string `json:"datum"`
	FileName   string `json:"fileName,omitempty"`
	Loaded     bool   `json:"loaded"`
	PointCount int    `json:"pointCount"`
}

// RegionDTO is the valid model coverage returned alongside surface listings
type RegionDTO struct {
	MinLon float64 `json:"minLon"`
	MaxLon float64 `json:"maxLon"`
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
}

// TransformRequest is a single-point transform
type TransformRequest struct {
	InputSurface  string   `json:"inputSurface" validate:"required"`
	OutputSurface string   `json:"outputSurface" validate:"required"`
	ValueKind     string   `json:"valueKind" validate:"required,oneof=depth ellipsoidal"`
	Lon           float64  `json:"lon" validate:"required"`
	Lat           float64  `json:"lat" validate:"required"`
	Value         *float64 `json:"value" validate:"required"`
}

// TransformResponse carries the converted value and the interpolated surface
// heights used to produce it
type TransformResponse struct {
	InputSurface  string  `json:"inputSurface"`
	OutputSurface string  `json:"outputSurface"`
	ValueKind     string  `json:"valueKind"`
	Lon           float64 `json:"lon"`
	Lat           float64 `json:"lat"`
	Input         float64 `json:"input"`
	Output        float64 `json:"output"`
	HeightIn      float64 `json:"heightIn"`
	HeightOut     float64 `json:"heightOut"`
}

// BatchPoint is one record of an inline batch transform
type BatchPoint struct {
	Lon   float64  `json:"lon"`
	Lat   float64  `json:"lat"`
	Value *float64 `json:"value" validate:"required"`
}

// BatchTransformRequest transforms a set of inline points
type BatchTransformRequest struct {
	InputSurface  string       `json:"inputSurface" validate:"required"`
	OutputSurface string       `json:"outputSurface" validate:"required"`
	ValueKind     string       `json:"valueKind" validate:"required,oneof=depth ellipsoidal"`
	Points        []BatchPoint `json:"points" validate:"required,min=1,max=10000,dive"`
}

// BatchResult is one transformed point; Output is null for points outside
// the model coverage
type BatchResult struct {
	Lon    float64  `json:"lon"`
	Lat    float64  `json:"lat"`
	Input  float64  `json:"input"`
	Output *float64 `json:"output"`
}

// BatchTransformResponse carries per-point results plus aggregate counts
type BatchTransformResponse struct {
	InputSurface  string        `json:"inputSurface"`
	OutputSurface string        `json:"outputSurface"`
	ValueKind     string        `json:"valueKind"`
	Results       []BatchResult `json:"results"`
	Total         int           `json:"total"`
	Converted     int           `json:"converted"`
	OutOfRange    int           `json:"outOfRange"`
}

// TransformJobDTO is the API view of a file transform job
type TransformJobDTO struct {
	ID               uuid.UUID `json:"id"`
	Status           string    `json:"status"`
	InputSurface     string    `json:"inputSurface"`
	OutputSurface    string    `json:"outputSurface"`
	ValueKind        string    `json:"valueKind"`
	OriginalFilename string    `json:"originalFilename"`
	TotalPoints      int       `json:"totalPoints"`
	ConvertedPoints  int       `json:"convertedPoints"`
	OutOfRangePoints int       `json:"outOfRangePoints"`
	Error            string    `json:"error,omitempty"`
	SubmittedBy      string    `json:"submittedBy,omitempty"`
	CreatedAt        string    `json:"createdAt"`
	StartedAt        string    `json:"startedAt,omitempty"`
	FinishedAt       string    `json:"finishedAt,omitempty"`
}

// BenchmarkDTO is the API view of a levelling benchmark
type BenchmarkDTO struct {
	ID             uuid.UUID `json:"id"`
	Designation    string    `json:"designation"`
	Lon            float64   `json:"lon"`
	Lat            float64   `json:"lat"`
	HeightTWVD2001 *float64  `json:"heightTwvd2001,omitempty"`
	HeightTWCD2021 *float64  `json:"heightTwcd2021,omitempty"`
	Order          string    `json:"order,omitempty"`
	Agency         string    `json:"agency,omitempty"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      string    `json:"createdAt"`
	UpdatedAt      string    `json:"updatedAt"`
}

// NearestBenchmarkDTO is a benchmark with its distance from the query point
type NearestBenchmarkDTO struct {
	BenchmarkDTO
	DistanceKm float64 `json:"distanceKm"`
}

// CreateBenchmarkRequest creates a benchmark
type CreateBenchmarkRequest struct {
	Designation    string   `json:"designation" validate:"required,max=50"`
	Lon            float64  `json:"lon" validate:"required"`
	Lat            float64  `json:"lat" validate:"required"`
	HeightTWVD2001 *float64 `json:"heightTwvd2001"`
	HeightTWCD2021 *float64 `json:"heightTwcd2021"`
	Order          string   `json:"order" validate:"max=20"`
	Agency         string   `json:"agency" validate:"max=100"`
	Description    string   `json:"description" validate:"max=500"`
}

// UpdateBenchmarkRequest updates mutable benchmark fields
type UpdateBenchmarkRequest struct {
	HeightTWVD2001 *float64 `json:"heightTwvd2001"`
	HeightTWCD2021 *float64 `json:"heightTwcd2021"`
	Order          *string  `json:"order" validate:"omitempty,max=20"`
	Agency         *string  `json:"agency" validate:"omitempty,max=100"`
	Description    *string  `json:"description" validate:"omitempty,max=500"`
}

// TideGaugeDTO is the API view of a tide station
type TideGaugeDTO struct {
	ID          uuid.UUID           `json:"id"`
	StationCode string              `json:"stationCode"`
	Name        string              `json:"name"`
	Lon         float64             `json:"lon"`
	Lat         float64             `json:"lat"`
	Operator    string              `json:"operator,omitempty"`
	FirstYear   int                 `json:"firstYear"`
	LastYear    int                 `json:"lastYear"`
	Active      bool                `json:"active"`
	Levels      []TideGaugeLevelDTO `json:"levels,omitempty"`
}

// TideGaugeLevelDTO is one derived reference level at a station
type TideGaugeLevelDTO struct {
	Surface string  `json:"surface"`
	Height  float64 `json:"height"`
	Epoch   string  `json:"epoch,omitempty"`
}
