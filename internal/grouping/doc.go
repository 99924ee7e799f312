// Package grouping partitions a roster into random fixed-size groups.
//
// [Partition] is the pure core: shuffle a copy, cut it into consecutive chunks, and let the last chunk
// run short. [Engine] wraps it with the configured size, the locale's group labels and the most recent
// result, which it can export as CSV.
package grouping
