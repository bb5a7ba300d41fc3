package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositions_EvenSlotsStartingAtTop(t *testing.T) {
	path := Circle{CX: 200, CY: 200, R: 196}
	ps := Positions(testItems(4), path, LayoutOptions{Start: -0.25})
	require.Len(t, ps, 4)

	want := []struct{ angle, x, y float64 }{
		{270, 200, 4},  // top
		{0, 396, 200},  // right
		{90, 200, 396}, // bottom
		{180, 4, 200},  // left
	}
	for i, w := range want {
		assert.Equal(t, i, ps[i].Index)
		assert.InDelta(t, w.angle, ps[i].Angle, 1e-9)
		assert.InDelta(t, w.x, ps[i].X, 1e-9)
		assert.InDelta(t, w.y, ps[i].Y, 1e-9)
		assert.Equal(t, 0.0, ps[i].Rotation)
	}
}

func TestPositions_AutoRotateFollowsTangent(t *testing.T) {
	ps := Positions(testItems(4), Circle{R: 1}, LayoutOptions{Start: -0.25, AutoRotate: true})
	assert.InDelta(t, 0.0, ps[0].Rotation, 1e-9)
	assert.InDelta(t, 90.0, ps[1].Rotation, 1e-9)
	assert.InDelta(t, 180.0, ps[2].Rotation, 1e-9)
	assert.InDelta(t, 270.0, ps[3].Rotation, 1e-9)
}

func TestPositions_SlotsPartitionCircle(t *testing.T) {
	ps := Positions(testItems(10), Circle{R: 1}, LayoutOptions{})
	for i := 1; i < len(ps); i++ {
		assert.InDelta(t, 36.0, ShortestDelta(ps[i-1].Angle, ps[i].Angle), 1e-9)
	}
	assert.InDelta(t, 36.0, ShortestDelta(ps[9].Angle, ps[0].Angle), 1e-9)
}

func TestPositions_RotationFacesViewer(t *testing.T) {
	items := testItems(10)
	ps := Positions(items, Circle{R: 1}, LayoutOptions{Start: -0.25})
	sn := NewSnapper(len(items))
	for i := range items {
		visible := Normalize360(ps[i].Angle + sn.RotationFor(i))
		assert.InDelta(t, ViewAngle, visible, 1e-9, "item %d", i)
	}
}

func TestPositions_Empty(t *testing.T) {
	assert.Nil(t, Positions(nil, Circle{R: 1}, LayoutOptions{}))
}

func TestSampleRing_Velocity(t *testing.T) {
	r := newSampleRing(4)
	assert.Equal(t, 0.0, r.velocity(epoch, time.Second))

	r.push(epoch, 0)
	assert.Equal(t, 0.0, r.velocity(epoch, time.Second), "one sample has no velocity")

	for i := 1; i <= 6; i++ {
		r.push(epoch.Add(time.Duration(i)*100*time.Millisecond), float64(i*10))
	}
	// Only the last four samples survive: 30..60 over 300ms.
	assert.InDelta(t, 100.0, r.velocity(epoch.Add(600*time.Millisecond), time.Second), 1e-9)
	// A narrow window keeps the last two.
	assert.InDelta(t, 100.0, r.velocity(epoch.Add(600*time.Millisecond), 150*time.Millisecond), 1e-9)
	// Nothing recent.
	assert.Equal(t, 0.0, r.velocity(epoch.Add(5*time.Second), 150*time.Millisecond))

	r.reset()
	assert.Nil(t, r.values())
}
