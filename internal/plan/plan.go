// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package plan adapts a 2D CAD plan drawing to the three layer-scoped
// queries the pipeline needs: points, line segments, and polygon loops.
// Layer matching is exact string equality; querying a layer with no
// entities yields an empty result, never an error. A drawing that cannot
// be read at all is fatal — geometry from a corrupt plan cannot be
// trusted for any story.
package plan

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpaloschi/dxf-go/document"
	"github.com/rpaloschi/dxf-go/entities"

	"github.com/pdiddy/model-builder/pkg/types"
)

// ErrDocumentRead marks an unreadable or structurally corrupt plan
// drawing. Always fatal for the whole run.
var ErrDocumentRead = errors.New("plan document unreadable")

// Plan wraps the entity list of a parsed drawing's model space.
type Plan struct {
	ents []entities.Entity
}

// Open parses the DXF drawing at path. Any open or parse failure wraps
// ErrDocumentRead.
func Open(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening plan %s (%v): %w", path, err, ErrDocumentRead)
	}
	defer f.Close()

	doc, err := document.DxfDocumentFromStream(f)
	if err != nil {
		return nil, fmt.Errorf("parsing plan %s (%v): %w", path, err, ErrDocumentRead)
	}
	return FromEntities(doc.Entities.Entities), nil
}

// FromEntities builds a Plan directly from parsed entities.
func FromEntities(ents []entities.Entity) *Plan {
	return &Plan{ents: ents}
}

// PointsOnLayer returns every POINT on the named layer. The drawing Z is
// passed through; downstream stages ignore it.
func (p *Plan) PointsOnLayer(layer string) []types.Point3D {
	var out []types.Point3D
	for _, e := range p.ents {
		pt, ok := e.(*entities.Point)
		if !ok || pt.LayerName != layer {
			continue
		}
		out = append(out, types.Point3D{X: pt.Location.X, Y: pt.Location.Y, Z: pt.Location.Z})
	}
	return out
}

// LinesOnLayer returns every LINE on the named layer as start/end pairs.
func (p *Plan) LinesOnLayer(layer string) []types.Segment3D {
	var out []types.Segment3D
	for _, e := range p.ents {
		ln, ok := e.(*entities.Line)
		if !ok || ln.LayerName != layer {
			continue
		}
		out = append(out, types.Segment3D{
			Start: types.Point3D{X: ln.Start.X, Y: ln.Start.Y, Z: ln.Start.Z},
			End:   types.Point3D{X: ln.End.X, Y: ln.End.Y, Z: ln.End.Z},
		})
	}
	return out
}

// PolygonsOnLayer returns the vertex loops of every LWPOLYLINE and
// POLYLINE on the named layer. When closedOnly is set, open polylines are
// skipped. LWPOLYLINE is a planar entity whose vertices carry no Z of
// their own, so its loops come back with Z 0; POLYLINE vertices keep the
// drawing Z, like points and lines do. Downstream stages ignore Z either
// way.
func (p *Plan) PolygonsOnLayer(layer string, closedOnly bool) [][]types.Point3D {
	var out [][]types.Point3D
	for _, e := range p.ents {
		switch poly := e.(type) {
		case *entities.LWPolyline:
			if poly.LayerName != layer || (closedOnly && !poly.Closed) {
				continue
			}
			pts := make([]types.Point3D, 0, len(poly.Points))
			for _, v := range poly.Points {
				pts = append(pts, types.Point3D{X: v.Point.X, Y: v.Point.Y})
			}
			out = append(out, pts)
		case *entities.Polyline:
			if poly.LayerName != layer || (closedOnly && !poly.Closed) {
				continue
			}
			pts := make([]types.Point3D, 0, len(poly.Vertices))
			for _, v := range poly.Vertices {
				pts = append(pts, types.Point3D{X: v.Location.X, Y: v.Location.Y, Z: v.Location.Z})
			}
			out = append(out, pts)
		}
	}
	return out
}
