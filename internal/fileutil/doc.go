// Package fileutil provides the directory listing used to discover catalog
// categories and examples.
//
// ListDirs returns the immediate subdirectories of a directory, sorted by
// name so that every run produces the same ordering on every platform.
// Files are ignored; hidden directories and an explicit exclusion list can
// be dropped through ListOptions.
//
// Errors are fatal: a missing directory, a permission failure or a path
// that is not a directory is returned to the caller without a partial
// listing.
//
//	dirs, err := fileutil.ListDirs("src", fileutil.ListOptions{SkipHidden: true})
//	if err != nil {
//	    return err
//	}
//	for _, name := range dirs {
//	    fmt.Println(name)
//	}
//
// Standard Library Only:
// The package uses os, sort and strings only.
package fileutil
