package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/skyflying/vertical-datum/internal/domain"
	"github.com/skyflying/vertical-datum/internal/geodesy"
	"go.uber.org/zap"
)

// TransformService handles synchronous point and batch transforms between
// vertical reference surfaces
type TransformService struct {
	transformer *geodesy.Transformer
	logger      *zap.Logger
}

// NewTransformService creates a new TransformService instance
func NewTransformService(transformer *geodesy.Transformer, logger *zap.Logger) *TransformService {
	return &TransformService{
		transformer: transformer,
		logger:      logger,
	}
}

// resolveSelection parses surface codes and the value kind from a request
func resolveSelection(inCode, outCode, kindStr string) (geodesy.Surface, geodesy.Surface, geodesy.ValueKind, error) {
	in, err := geodesy.ParseSurface(inCode)
	if err != nil {
		return 0, 0, "", fmt.Errorf("%w: %s", ErrUnknownSurface, inCode)
	}
	out, err := geodesy.ParseSurface(outCode)
	if err != nil {
		return 0, 0, "", fmt.Errorf("%w: %s", ErrUnknownSurface, outCode)
	}
	kind, err := geodesy.ParseValueKind(kindStr)
	if err != nil {
		return 0, 0, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return in, out, kind, nil
}

// Point converts a single value between two surfaces
func (s *TransformService) Point(req *domain.TransformRequest) (*domain.TransformResponse, error) {
	in, out, kind, err := resolveSelection(req.InputSurface, req.OutputSurface, req.ValueKind)
	if err != nil {
		return nil, err
	}

	result, err := s.transformer.Point(in, out, kind, req.Lon, req.Lat, *req.Value)
	if err != nil {
		switch {
		case errors.Is(err, geodesy.ErrSameSurface):
			return nil, ErrSameSurface
		case errors.Is(err, geodesy.ErrOutOfRegion):
			return nil, fmt.Errorf("%w: %.4f, %.4f", ErrOutOfRegion, req.Lon, req.Lat)
		default:
			return nil, fmt.Errorf("transform failed: %w", err)
		}
	}

	return &domain.TransformResponse{
		InputSurface:  in.Code(),
		OutputSurface: out.Code(),
		ValueKind:     string(kind),
		Lon:           req.Lon,
		Lat:           req.Lat,
		Input:         *req.Value,
		Output:        result.Value,
		HeightIn:      result.HIn,
		HeightOut:     result.HOut,
	}, nil
}

// Batch converts a set of inline points. Points outside the model coverage
// produce a null output instead of failing the request.
func (s *TransformService) Batch(req *domain.BatchTransformRequest) (*domain.BatchTransformResponse, error) {
	in, out, kind, err := resolveSelection(req.InputSurface, req.OutputSurface, req.ValueKind)
	if err != nil {
		return nil, err
	}

	points := make([]geodesy.PointValue, len(req.Points))
	for i, p := range req.Points {
		points[i] = geodesy.PointValue{Lon: p.Lon, Lat: p.Lat, Value: *p.Value}
	}

	values, stats, err := s.transformer.Batch(in, out, kind, points)
	if err != nil {
		if errors.Is(err, geodesy.ErrSameSurface) {
			return nil, ErrSameSurface
		}
		return nil, fmt.Errorf("batch transform failed: %w", err)
	}

	results := make([]domain.BatchResult, len(points))
	for i := range points {
		results[i] = domain.BatchResult{
			Lon:   points[i].Lon,
			Lat:   points[i].Lat,
			Input: points[i].Value,
		}
		if !math.IsNaN(values[i]) {
			v := values[i]
			results[i].Output = &v
		}
	}

	s.logger.Info("batch transform",
		zap.String("input_surface", in.Code()),
		zap.String("output_surface", out.Code()),
		zap.Int("total", stats.Total),
		zap.Int("out_of_range", stats.OutOfRange),
	)

	return &domain.BatchTransformResponse{
		InputSurface:  in.Code(),
		OutputSurface: out.Code(),
		ValueKind:     string(kind),
		Results:       results,
		Total:         stats.Total,
		Converted:     stats.Converted,
		OutOfRange:    stats.OutOfRange,
	}, nil
}
