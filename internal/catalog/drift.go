package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/harrison/catalog/internal/models"
	"github.com/harrison/catalog/internal/parser"
)

// Drift describes how the files on disk differ from a fresh generation
type Drift struct {
	Files []FileStatus

	// Undocumented examples exist on disk but are missing from the listing
	Undocumented []models.Example
	// Unknown examples are linked from the listing but no longer exist on disk
	Unknown []models.Example
}

// Clean reports whether every generated file is current and the listing
// documents exactly the examples on disk
func (d *Drift) Clean() bool {
	for _, f := range d.Files {
		if f.State != StateCurrent {
			return false
		}
	}
	return len(d.Undocumented) == 0 && len(d.Unknown) == 0
}

// Check renders every artifact in memory and compares it with the disk.
// Nothing is written.
func (g *Generator) Check(ctx context.Context) (*Drift, error) {
	result, err := g.Plan(ctx)
	if err != nil {
		return nil, err
	}

	statuses, err := Compare(result.Plan)
	if err != nil {
		return nil, err
	}
	drift := &Drift{Files: statuses}
	for _, s := range statuses {
		if s.State != StateCurrent {
			g.logger.LogWarn(fmt.Sprintf("%s is %s", s.Path, s.State))
		}
	}

	f, err := os.Open(g.config.ListingPath)
	if os.IsNotExist(err) {
		// Listing reported missing above; every example is undocumented
		drift.Undocumented = result.Catalog.All()
		return drift, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open listing: %w", err)
	}
	defer f.Close()

	listing, err := parser.ParseListing(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing %s: %w", g.config.ListingPath, err)
	}

	drift.Undocumented, drift.Unknown = diffExamples(result.Catalog.All(), listing.Examples())
	return drift, nil
}

// diffExamples compares examples by category/name identity
func diffExamples(onDisk, listed []models.Example) (undocumented, unknown []models.Example) {
	listedKeys := make(map[string]bool, len(listed))
	for _, e := range listed {
		listedKeys[e.Key()] = true
	}
	diskKeys := make(map[string]bool, len(onDisk))
	for _, e := range onDisk {
		diskKeys[e.Key()] = true
		if !listedKeys[e.Key()] {
			undocumented = append(undocumented, e)
		}
	}
	for _, e := range listed {
		if !diskKeys[e.Key()] {
			unknown = append(unknown, e)
		}
	}
	return undocumented, unknown
}
