// Package codec provides the dispatch-facing wrappers around the
// protocol's optional replay-handling machinery: components that sit
// above a single message decode, consumed through dispatch.Dispatcher's
// functional options (package codec/szseopts).
package codec

import "github.com/yzcpleo/szse-v5-parser/internal/dedup"

// DedupFilter tracks (ChannelNo, ApplSeqNum) pairs already decoded, so a
// ReTransmit replay batch that overlaps a channel's live stream doesn't
// get processed twice (spec section 4.5, ReTransmit). It wraps
// internal/dedup.Filter behind the package boundary dispatch.Dispatcher
// consumes.
type DedupFilter struct {
	f *dedup.Filter
}

// NewDedupFilter creates an empty DedupFilter.
func NewDedupFilter() *DedupFilter {
	return &DedupFilter{f: dedup.NewFilter()}
}

// Track records (channelNo, applSeqNum) as seen, returning
// errs.ErrDuplicateFrame if the pair was already tracked.
func (d *DedupFilter) Track(channelNo uint16, applSeqNum int64) error {
	return d.f.Track(channelNo, applSeqNum)
}

// Check reports whether (channelNo, applSeqNum) has already been
// tracked, without recording it.
func (d *DedupFilter) Check(channelNo uint16, applSeqNum int64) bool {
	return d.f.Check(channelNo, applSeqNum)
}

// Reset clears every tracked frame, preserving underlying capacity.
func (d *DedupFilter) Reset() { d.f.Reset() }

// Count returns the number of tracked frames.
func (d *DedupFilter) Count() int { return d.f.Count() }
