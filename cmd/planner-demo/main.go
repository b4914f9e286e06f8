// Command planner-demo is a thin binding that reads a JSON scene
// description (borders, fixed obstacles, start, finish) and prints the
// computed path. It is not part of the tested core — the real integration
// point is the Planner facade in package planner — and exists only as a
// minimal, dependency-free way to exercise the library from a shell.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"avoidance-planner/geometry"
	"avoidance-planner/obstacle"
	"avoidance-planner/planner"
)

type sceneObstacle struct {
	Kind   string  `json:"kind"` // "rectangle" or "circle"
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	O      float64 `json:"o,omitempty"`
	Lx     float64 `json:"lx,omitempty"`
	Ly     float64 `json:"ly,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Margin float64 `json:"margin"`
}

type scene struct {
	Borders []geometry.Coords `json:"borders"`
	Fixed   []sceneObstacle   `json:"fixed"`
	Start   geometry.Coords   `json:"start"`
	Finish  geometry.Coords   `json:"finish"`
}

func main() {
	path := flag.String("scene", "", "path to a JSON scene description")
	geojsonPath := flag.String("geojson-obstacles", "", "path to a GeoJSON FeatureCollection of additional fixed obstacle rings")
	simplifyEpsilon := flag.Float64("simplify-epsilon", 0, "Douglas-Peucker epsilon applied to GeoJSON obstacle rings before loading (0 disables)")
	flag.Parse()

	if *path == "" {
		log.Fatal("❌ -scene is required")
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("❌ reading scene: %v", err)
	}

	var s scene
	if err := json.Unmarshal(data, &s); err != nil {
		log.Fatalf("❌ parsing scene: %v", err)
	}

	borders, err := obstacle.NewPolygon(s.Borders, 0)
	if err != nil {
		log.Fatalf("❌ building borders: %v", err)
	}

	pl := planner.New(borders, planner.WithLogger(planner.NewStdLogger(nil)))

	for _, o := range s.Fixed {
		switch o.Kind {
		case "rectangle":
			rect, err := obstacle.NewRectangle(
				geometry.Pose{Coords: geometry.Coords{o.X, o.Y}, O: o.O}, o.Lx, o.Ly, o.Margin)
			if err != nil {
				log.Fatalf("❌ building rectangle obstacle: %v", err)
			}
			pl.AddFixed(rect)
		case "circle":
			pl.AddFixed(obstacle.NewCircle(
				geometry.Pose{Coords: geometry.Coords{o.X, o.Y}}, o.Radius, o.Margin, 0))
		default:
			log.Fatalf("❌ unknown obstacle kind %q", o.Kind)
		}
	}

	if *geojsonPath != "" {
		geojsonData, err := os.ReadFile(*geojsonPath)
		if err != nil {
			log.Fatalf("❌ reading GeoJSON obstacles: %v", err)
		}
		rings, err := obstacle.LoadRingsFromGeoJSON(geojsonData, *simplifyEpsilon)
		if err != nil {
			log.Fatalf("❌ loading GeoJSON obstacles: %v", err)
		}
		for i, ring := range rings {
			poly, err := obstacle.NewPolygon(ring, obstacle.DefaultMargin)
			if err != nil {
				log.Fatalf("❌ building obstacle from GeoJSON ring %d: %v", i, err)
			}
			pl.AddFixed(poly)
		}
	}

	if err := pl.Plan(s.Start, s.Finish); err != nil {
		log.Fatalf("❌ plan failed: %v", err)
	}

	for i := 0; i < pl.PathLength(); i++ {
		wp, _ := pl.PathPose(i)
		fmt.Printf("%d: (%.1f, %.1f)\n", i, wp.X(), wp.Y())
	}
}
