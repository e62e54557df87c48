// Package catalog discovers pattern examples on disk and regenerates the
// files derived from them.
//
// A run is a strict pipeline:
//
//	Scan     root/<category>/<example>/ -> []models.Example (sorted, fail-fast)
//	Build    []models.Example -> *models.Catalog (grouped, order kept)
//	Validate reject duplicate (category, name) pairs
//	Plan     render one module file per category plus the listing file
//	Write    stage every artifact, then rename them all into place
//
// Nothing is written until every artifact has been rendered and staged, so a
// failure in any stage leaves the existing files as they were.
package catalog
