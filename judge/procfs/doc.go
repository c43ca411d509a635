// Package procfs reads the two procfs facts the supervisor needs to
// sample a live child: cumulative CPU time (in clock ticks, converted
// to milliseconds) and peak virtual memory (in KiB, converted to
// megabytes). Both readers are best-effort — a vanished /proc/<pid>
// entry (the child exited between the non-blocking reap and the
// sample) is reported via the sentinel errors in this package, not a
// generic I/O error, so callers can treat it as a benign miss.
package procfs
