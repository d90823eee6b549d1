package tidewarehouse

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Station is a tide station record as stored in the warehouse
type Station struct {
	Code      string
	Name      string
	Lon       float64
	Lat       float64
	Operator  string
	FirstYear int
	LastYear  int
	Active    bool
}

// ReferenceLevel is a derived tidal level at a station: the ellipsoidal
// height of one reference surface (MSS, HAT, MHW, MLW, LAT, ISLW)
type ReferenceLevel struct {
	StationCode string
	Surface     string
	Height      float64
	Epoch       string
}

// FetchStations returns all tide stations from the warehouse
func (c *Client) FetchStations(ctx context.Context) ([]Station, error) {
	if c == nil || c.db == nil {
		return nil, fmt.Errorf("tide warehouse client not initialized")
	}

	ctx, cancel := c.queryContext(ctx)
	defer cancel()

	const query = `
		SELECT station_code, station_name, longitude, latitude,
		       operator, first_year, last_year, is_active
		FROM dbo.tide_station
		ORDER BY station_code`

	start := time.Now()

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		c.logger.Error("Tide station query failed", zap.Error(err))
		return nil, fmt.Errorf("station query failed: %w", err)
	}
	defer rows.Close()

	var stations []Station
	for rows.Next() {
		var s Station
		var operator sql.NullString
		var firstYear, lastYear sql.NullInt64
		if err := rows.Scan(&s.Code, &s.Name, &s.Lon, &s.Lat, &operator, &firstYear, &lastYear, &s.Active); err != nil {
			return nil, fmt.Errorf("failed to scan station row: %w", err)
		}
		s.Operator = operator.String
		s.FirstYear = int(firstYear.Int64)
		s.LastYear = int(lastYear.Int64)
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating station rows: %w", err)
	}

	c.logger.Debug("Tide station query completed",
		zap.Int("rows_returned", len(stations)),
		zap.Duration("duration", time.Since(start)),
	)

	return stations, nil
}

// FetchReferenceLevels returns the derived reference levels for one station
func (c *Client) FetchReferenceLevels(ctx context.Context, stationCode string) ([]ReferenceLevel, error) {
	if c == nil || c.db == nil {
		return nil, fmt.Errorf("tide warehouse client not initialized")
	}

	ctx, cancel := c.queryContext(ctx)
	defer cancel()

	const query = `
		SELECT station_code, surface_code, height_m, epoch
		FROM dbo.tide_reference_level
		WHERE station_code = @p1
		ORDER BY surface_code`

	rows, err := c.db.QueryContext(ctx, query, stationCode)
	if err != nil {
		c.logger.Error("Reference level query failed",
			zap.Error(err),
			zap.String("station_code", stationCode),
		)
		return nil, fmt.Errorf("reference level query failed: %w", err)
	}
	defer rows.Close()

	var levels []ReferenceLevel
	for rows.Next() {
		var l ReferenceLevel
		var epoch sql.NullString
		if err := rows.Scan(&l.StationCode, &l.Surface, &l.Height, &epoch); err != nil {
			return nil, fmt.Errorf("failed to scan reference level row: %w", err)
		}
		l.Epoch = epoch.String
		levels = append(levels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reference level rows: %w", err)
	}

	return levels, nil
}
