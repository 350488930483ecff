// Package parallel provides a work-stealing worker pool used to fan a
// layer's composite out across disjoint, tile-aligned row bands.
package parallel
