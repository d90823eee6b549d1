// Command transform converts heights and depths between Taiwan vertical
// reference surfaces from the command line, without running the API server.
//
// Single point:
//
//	transform -from MSS -to LAT -kind depth -lon 120.5 -lat 22.3 -value 18.2
//
// Whole file (lon lat value per line):
//
//	transform -from EL -to Geoid -kind ellipsoidal -in survey.xyz -out survey_geoid.xyz
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/skyflying/vertical-datum/internal/geodesy"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		dataDir  = flag.String("data", defaultDataDir(), "directory containing the surface model .xyz files")
		fromCode = flag.String("from", "", "input surface code")
		toCode   = flag.String("to", "", "output surface code")
		kindStr  = flag.String("kind", "depth", "value kind: depth or ellipsoidal")
		inPath   = flag.String("in", "", "input point file (file mode)")
		outPath  = flag.String("out", "", "output point file (file mode)")
		lon      = flag.Float64("lon", 0, "longitude in decimal degrees (point mode)")
		lat      = flag.Float64("lat", 0, "latitude in decimal degrees (point mode)")
		value    = flag.Float64("value", 0, "value to convert (point mode)")
		list     = flag.Bool("list", false, "list surface codes and exit")
	)
	flag.Parse()

	if *list {
		for _, s := range geodesy.Surfaces() {
			fmt.Printf("%-6s %s\n", s.Code(), s.Name())
		}
		return nil
	}

	in, err := geodesy.ParseSurface(*fromCode)
	if err != nil {
		return err
	}
	out, err := geodesy.ParseSurface(*toCode)
	if err != nil {
		return err
	}
	kind, err := geodesy.ParseValueKind(*kindStr)
	if err != nil {
		return err
	}

	store := geodesy.NewSurfaceStore(*dataDir, geodesy.TaiwanRegion, zap.NewNop())
	transformer := geodesy.NewTransformer(store)

	if *inPath == "" {
		// Point mode
		result, err := transformer.Point(in, out, kind, *lon, *lat, *value)
		if err != nil {
			return err
		}
		fmt.Printf("%s -> %s at (%.6f, %.6f)\n", in.Code(), out.Code(), *lon, *lat)
		fmt.Printf("  input:  %.3f\n", *value)
		fmt.Printf("  output: %.3f\n", result.Value)
		fmt.Printf("  surface heights: %.3f -> %.3f\n", result.HIn, result.HOut)
		return nil
	}

	// File mode
	if *outPath == "" {
		return fmt.Errorf("-out is required with -in")
	}

	src, err := os.Open(*inPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(*outPath)
	if err != nil {
		return err
	}

	stats, err := transformer.File(in, out, kind, src, dst)
	if err != nil {
		dst.Close()
		os.Remove(*outPath)
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}

	fmt.Printf("Converted %d of %d points (%s -> %s)\n", stats.Converted, stats.Total, in.Code(), out.Code())
	if stats.OutOfRange > 0 {
		fmt.Printf("There are %d points outside the range\n", stats.OutOfRange)
	}
	fmt.Printf("Wrote %s\n", *outPath)
	return nil
}

func defaultDataDir() string {
	if dir := os.Getenv("SURFACES_DATADIR"); dir != "" {
		return dir
	}
	return "./file"
}
