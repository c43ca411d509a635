package procfs

import "errors"

var (
	// ErrVanished indicates /proc/<pid>/* no longer exists — the
	// child exited between the non-blocking reap and this sample.
	// Callers should skip the sample, not fail the session.
	ErrVanished = errors.New("procfs: process vanished before sample")

	// ErrMalformedStat indicates /proc/<pid>/stat didn't contain the
	// expected utime/stime fields, or the VmPeak line of
	// /proc/<pid>/status had no parsable size.
	ErrMalformedStat = errors.New("procfs: malformed stat line")
)
