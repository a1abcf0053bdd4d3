// Package dedup tracks frames already seen during a ReTransmit replay
// (spec section 4.5, ReTransmit), so a resend that overlaps a channel's
// live stream does not get processed twice.
//
// Adapted from the teacher's internal/collision.Tracker, which tracks
// metric-name hash collisions during blob encoding: same map-plus-Reset
// shape, repurposed from "has this hash been claimed by a different
// name" to "has this (ChannelNo, ApplSeqNum) pair been seen before".
package dedup

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/yzcpleo/szse-v5-parser/errs"
)

// Filter tracks (ChannelNo, ApplSeqNum) pairs already processed.
type Filter struct {
	seen map[uint64]struct{}
}

// NewFilter creates an empty Filter.
func NewFilter() *Filter {
	return &Filter{seen: make(map[uint64]struct{})}
}

// Check reports whether (channelNo, applSeqNum) has already been
// tracked, without recording it.
func (f *Filter) Check(channelNo uint16, applSeqNum int64) bool {
	_, ok := f.seen[key(channelNo, applSeqNum)]
	return ok
}

// Track records (channelNo, applSeqNum) as seen. It returns
// errs.ErrDuplicateFrame if the pair was already tracked, matching the
// propagation policy in spec section 7 (callers decide whether a
// duplicate is fatal or a no-op to skip).
func (f *Filter) Track(channelNo uint16, applSeqNum int64) error {
	k := key(channelNo, applSeqNum)
	if _, exists := f.seen[k]; exists {
		return errs.ErrDuplicateFrame
	}

	f.seen[k] = struct{}{}

	return nil
}

// Count returns the number of tracked frames.
func (f *Filter) Count() int { return len(f.seen) }

// Reset clears all tracked frames, preserving the map's capacity.
func (f *Filter) Reset() {
	for k := range f.seen {
		delete(f.seen, k)
	}
}

func key(channelNo uint16, applSeqNum int64) uint64 {
	var buf [10]byte
	binary.BigEndian.PutUint16(buf[0:2], channelNo)
	binary.BigEndian.PutUint64(buf[2:10], uint64(applSeqNum))

	return xxhash.Sum64(buf[:])
}
