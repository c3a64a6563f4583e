package domain

// CopySpec describes a file copy handed to the host copy mechanism.
type CopySpec struct {
	// From lists the source directories.
	From []string
	// Into is the destination directory. Relative paths below each source are preserved.
	Into string
	// Includes and Excludes are doublestar patterns relative to each source directory.
	// No includes means every file.
	Includes []string
	Excludes []string
}

// CopyResult reports what a copy did.
type CopyResult struct {
	Copied  int
	Skipped int
}

// DidWork reports whether any file was written.
func (r CopyResult) DidWork() bool {
	return r.Copied > 0
}
