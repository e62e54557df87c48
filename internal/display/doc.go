// Package display provides terminal output for the catalog CLI: progress
// lines, warnings, the catalog tree and the drift report.
//
// # Progress Indicators
//
//	progress := display.NewProgressIndicator(os.Stdout, len(paths))
//	progress.Start("Writing")
//	for _, path := range paths {
//	    progress.Step(path)
//	}
//	progress.Complete("Catalog regenerated")
//
// # Warning Messages
//
//	display.WarnEmptyCategories("src", []string{"structural"}).Display(os.Stderr)
//
// # Catalog Tree
//
// RenderTree draws the scanned catalog with gtree.
//
// # Color Codes
//
//   - Yellow (\x1b[33m): warnings
//   - Cyan (\x1b[36m): progress steps
//   - Green (\x1b[32m): success checkmarks
//   - Red (\x1b[31m): stale or missing files
//   - Reset (\x1b[0m): end of colored span
package display
