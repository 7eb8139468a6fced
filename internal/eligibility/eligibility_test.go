package eligibility_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/base-org/forcer/internal/core"
	"github.com/base-org/forcer/internal/eligibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceSource ... EntrySource over an in-memory queue
type sliceSource struct {
	entries []core.DelayedMessage
	reads   int
	err     error
}

func (ss *sliceSource) ReadEntry(_ context.Context, seq uint64) (core.DelayedMessage, error) {
	ss.reads++
	if ss.err != nil {
		return core.DelayedMessage{}, ss.err
	}
	if seq >= uint64(len(ss.entries)) {
		return core.DelayedMessage{}, core.ErrSequenceOutOfRange
	}
	return ss.entries[seq], nil
}

func (ss *sliceSource) state() core.QueueState {
	return core.QueueState{Count: uint64(len(ss.entries))}
}

// queueOf ... Builds n entries enqueued every blockGap blocks, 12 seconds per block
func queueOf(n int, startBlock, blockGap uint64) *sliceSource {
	ss := &sliceSource{}
	for i := 0; i < n; i++ {
		block := startBlock + uint64(i)*blockGap
		ss.entries = append(ss.entries, core.DelayedMessage{
			SequenceNumber: uint64(i),
			BlockNumber:    block,
			Timestamp:      1_700_000_000 + block*12,
		})
	}
	return ss
}

func headAt(block uint64) core.ChainHead {
	return core.ChainHead{Number: block, Timestamp: 1_700_000_000 + block*12}
}

func Test_IsEligible(t *testing.T) {
	th := core.InclusionThreshold{MaxBlockDelay: 100, MaxTimeDelay: 1200}
	msg := core.DelayedMessage{BlockNumber: 1000, Timestamp: 50_000}

	var tests = []struct {
		name     string
		head     core.ChainHead
		th       core.InclusionThreshold
		expected bool
	}{
		{
			name:     "Both bounds hold",
			head:     core.ChainHead{Number: 1100, Timestamp: 51_200},
			th:       th,
			expected: true,
		},
		{
			name:     "Block bound fails",
			head:     core.ChainHead{Number: 1099, Timestamp: 60_000},
			th:       th,
			expected: false,
		},
		{
			name:     "Time bound fails",
			head:     core.ChainHead{Number: 5000, Timestamp: 51_199},
			th:       th,
			expected: false,
		},
		{
			name:     "Head younger than the block delay",
			head:     core.ChainHead{Number: 50, Timestamp: 60_000},
			th:       th,
			expected: false,
		},
		{
			name:     "Head younger than the time delay",
			head:     core.ChainHead{Number: 5000, Timestamp: 10},
			th:       th,
			expected: false,
		},
		{
			name:     "Zero threshold",
			head:     core.ChainHead{Number: 1000, Timestamp: 50_000},
			th:       core.InclusionThreshold{},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, eligibility.IsEligible(msg, tc.head, tc.th))
		})
	}
}

func Test_FindEligibleTarget_EmptyQueue(t *testing.T) {
	ss := &sliceSource{}
	heads := []core.ChainHead{{}, headAt(10), headAt(1 << 40)}

	for _, head := range heads {
		target, ok, err := eligibility.FindEligibleTarget(context.Background(), ss,
			core.QueueState{}, head, core.InclusionThreshold{})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, target)
	}
	assert.Zero(t, ss.reads)
}

func Test_FindEligibleTarget_BlockBoundary(t *testing.T) {
	const (
		enqueueBlock = uint64(4_000_000)
		delayBlocks  = uint64(65536)
	)

	ss := queueOf(1, enqueueBlock, 1)
	th := core.InclusionThreshold{MaxBlockDelay: delayBlocks}

	_, ok, err := eligibility.FindEligibleTarget(context.Background(), ss, ss.state(),
		headAt(enqueueBlock+delayBlocks-1), th)
	require.NoError(t, err)
	assert.False(t, ok)

	target, ok, err := eligibility.FindEligibleTarget(context.Background(), ss, ss.state(),
		headAt(enqueueBlock+delayBlocks), th)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(0), target)
}

func Test_FindEligibleTarget_MatchesLinearScan(t *testing.T) {
	th := core.InclusionThreshold{MaxBlockDelay: 40, MaxTimeDelay: 300}

	for _, n := range []int{1, 2, 3, 17, 64, 100} {
		ss := queueOf(n, 1000, 3)

		for block := uint64(990); block <= 1000+uint64(n)*3+60; block += 7 {
			head := headAt(block)
			t.Run(fmt.Sprintf("n=%d/head=%d", n, block), func(t *testing.T) {
				linear, linearOk := eligibility.EligiblePrefix(ss.entries, head, th)

				target, ok, err := eligibility.FindEligibleTarget(context.Background(), ss, ss.state(), head, th)
				require.NoError(t, err)
				assert.Equal(t, linearOk, ok)
				assert.Equal(t, linear, target)
			})
		}
	}
}

func Test_FindEligibleTarget_Monotone(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	th := core.InclusionThreshold{MaxBlockDelay: 50, MaxTimeDelay: 600}

	for round := 0; round < 50; round++ {
		ss := &sliceSource{}
		block, ts := uint64(1000), uint64(1_700_000_000)

		for i := 0; i < 40; i++ {
			block += uint64(rng.Intn(5))
			ts += uint64(rng.Intn(60))
			ss.entries = append(ss.entries, core.DelayedMessage{
				SequenceNumber: uint64(i), BlockNumber: block, Timestamp: ts,
			})
		}

		head := core.ChainHead{Number: block + uint64(rng.Intn(120)), Timestamp: ts + uint64(rng.Intn(1200))}
		target, ok, err := eligibility.FindEligibleTarget(context.Background(), ss, ss.state(), head, th)
		require.NoError(t, err)

		for i, msg := range ss.entries {
			eligible := eligibility.IsEligible(msg, head, th)
			if ok && uint64(i) <= target {
				assert.True(t, eligible, "entry %d below target %d must be eligible", i, target)
			} else {
				assert.False(t, eligible, "entry %d above target must not be eligible", i)
			}
		}
	}
}

func Test_FindEligibleTarget_SearchCost(t *testing.T) {
	ss := queueOf(1024, 1000, 1)
	th := core.InclusionThreshold{MaxBlockDelay: 100}

	_, ok, err := eligibility.FindEligibleTarget(context.Background(), ss, ss.state(), headAt(1600), th)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.LessOrEqual(t, ss.reads, 12)
}

func Test_FindEligibleTargetFrom(t *testing.T) {
	ss := queueOf(10, 1000, 10)
	th := core.InclusionThreshold{MaxBlockDelay: 25}
	head := headAt(1075)

	target, ok, err := eligibility.FindEligibleTargetFrom(context.Background(), ss, 3, ss.state(), head, th)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(5), target)

	_, ok, err = eligibility.FindEligibleTargetFrom(context.Background(), ss, 6, ss.state(), head, th)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = eligibility.FindEligibleTargetFrom(context.Background(), ss, 10, ss.state(), head, th)
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_FindEligibleTarget_SourceError(t *testing.T) {
	ss := queueOf(4, 1000, 1)
	ss.err = core.ErrChainUnavailable

	_, ok, err := eligibility.FindEligibleTarget(context.Background(), ss, ss.state(), headAt(5000),
		core.InclusionThreshold{})
	assert.ErrorIs(t, err, core.ErrChainUnavailable)
	assert.False(t, ok)
}

func Test_EligibleAt(t *testing.T) {
	msg := core.DelayedMessage{BlockNumber: 10, Timestamp: 100}
	th := core.InclusionThreshold{MaxBlockDelay: 5, MaxTimeDelay: 60}

	at := eligibility.EligibleAt(msg, th)
	assert.Equal(t, core.ChainHead{Number: 15, Timestamp: 160}, at)
	assert.True(t, eligibility.IsEligible(msg, at, th))
	assert.False(t, eligibility.IsEligible(msg, core.ChainHead{Number: 14, Timestamp: 160}, th))
}

func Test_Backlog(t *testing.T) {
	assert.Equal(t, uint64(0), eligibility.Backlog(0, 0))
	assert.Equal(t, uint64(3), eligibility.Backlog(5, 2))
	assert.Equal(t, uint64(0), eligibility.Backlog(5, 5))
	assert.Equal(t, uint64(0), eligibility.Backlog(5, 9))
}
