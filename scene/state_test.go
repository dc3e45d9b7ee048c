package scene

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(s *State, key rune, times int) {
	for i := 0; i < times; i++ {
		s.KeyDown(key)
	}
}

func TestAngleStepWraps(t *testing.T) {
	assert.Equal(t, Angle(3), Angle(0).Inc())
	assert.Equal(t, Angle(-3), Angle(0).Dec())
	assert.Equal(t, Angle(0), Angle(357).Inc())
	assert.Equal(t, Angle(0), Angle(-357).Dec())
	assert.Equal(t, Angle(-354), Angle(-357).Inc())
}

func TestNetPressesWithoutWrap(t *testing.T) {
	s := &State{}
	press(s, 'q', 119) // peaks at 357, never reaches 360
	press(s, 'w', 118)
	assert.Equal(t, Angle(3), s.Spin[0])
}

func TestNetPressesAcrossWrap(t *testing.T) {
	s := &State{}
	press(s, 'q', 120) // the 120th press lands on 360 and wraps to 0
	press(s, 'w', 119)
	assert.Equal(t, Angle(-357), s.Spin[0])
}

func TestWrapIsAppliedPerStep(t *testing.T) {
	s := &State{}
	press(s, 'q', 120) // 360 wraps to 0 on the last press
	require.Equal(t, Angle(0), s.Spin[0])

	press(s, 'w', 1)
	// Step-wise: 0 - 3 = -3. A single modulo over the net count would give
	// (119 * 3) % 360 = 357.
	assert.Equal(t, Angle(-3), s.Spin[0])
	assert.NotEqual(t, Angle((119*AngleStep)%360), s.Spin[0])
}

func TestRandomKeySequencesStayInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	keys := []rune("qwertyuiaszx")
	s := &State{}
	var shadow [6]int
	for i := 0; i < 5000; i++ {
		b := KeyBindings[rng.Intn(len(keys))]
		require.True(t, s.KeyDown(b.Key))
		if b.Up {
			shadow[b.Counter] = (shadow[b.Counter] + 3) % 360
		} else {
			shadow[b.Counter] = (shadow[b.Counter] - 3) % 360
		}
		for c := CounterSpin0; c <= CounterJitter; c++ {
			v := int(s.Value(c))
			require.Equal(t, shadow[c], v, "counter %v after %d presses", c, i)
			require.Greater(t, v, -360)
			require.Less(t, v, 360)
		}
	}
}

func TestKeyBindingsTouchOneCounter(t *testing.T) {
	for _, b := range KeyBindings {
		s := &State{}
		require.True(t, s.KeyDown(b.Key))
		for c := CounterSpin0; c <= CounterJitter; c++ {
			want := Angle(0)
			if c == b.Counter {
				want = 3
				if !b.Up {
					want = -3
				}
			}
			assert.Equal(t, want, s.Value(c), "key %q counter %v", b.Key, c)
		}
	}
	assert.Len(t, KeyBindings, 12)
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	s := &State{JitterOffset: NewState(rand.New(rand.NewSource(3))).JitterOffset}
	before := *s
	assert.False(t, s.KeyDown('p'))
	assert.False(t, s.KeyDown('Q'))
	assert.Equal(t, before, *s)
}

func TestNewStateJitterOffset(t *testing.T) {
	s := NewState(rand.New(rand.NewSource(99)))
	for _, c := range []float32{s.JitterOffset.X, s.JitterOffset.Y, s.JitterOffset.Z} {
		assert.GreaterOrEqual(t, c, float32(-0.5))
		assert.Less(t, c, float32(0.5))
	}
	assert.Equal(t, [InstanceCount]Angle{}, s.Spin)
	assert.Equal(t, Angle(0), s.Orbit)
	assert.Equal(t, Angle(0), s.Jitter)

	again := NewState(rand.New(rand.NewSource(99)))
	assert.Equal(t, s.JitterOffset, again.JitterOffset)
}

func TestShiftedLettersAreUnbound(t *testing.T) {
	assert.Equal(t, 'q', KeyChar('q', false, false))
	assert.Equal(t, 'Q', KeyChar('q', true, false))
	assert.Equal(t, 'Q', KeyChar('q', false, true))
	assert.Equal(t, 'q', KeyChar('q', true, true))
	assert.Equal(t, '1', KeyChar('1', true, false))

	s := &State{}
	assert.False(t, s.KeyDown(KeyChar('q', true, false)))
	assert.False(t, s.KeyDown(KeyChar('a', false, true)))
	assert.Equal(t, State{}, *s)

	assert.True(t, s.KeyDown(KeyChar('q', true, true)))
	assert.Equal(t, Angle(3), s.Spin[0])
}
