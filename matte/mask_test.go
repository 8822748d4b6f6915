package matte

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Distance(black, black))
	assert.Equal(t, 765, Distance(black, white))
	assert.Equal(t, 765, Distance(white, black))
	assert.Equal(t, 6, Distance(Color{1, 2, 3}, Color{3, 0, 5}))
}

func TestBuildCandidateMask(t *testing.T) {
	t.Parallel()

	img := solidFrame(3, 1, black)
	setPixel(img, 1, 0, Color{20, 20, 0}) // 距离 40
	setPixel(img, 2, 0, Color{20, 20, 1}) // 距离 41

	tests := []struct {
		name      string
		threshold int
		want      []bool
	}{
		{name: "阈值0只要完全相同", threshold: 0, want: []bool{true, false, false}},
		{name: "距离等于阈值算候选", threshold: 40, want: []bool{true, true, false}},
		{name: "阈值80全部是候选", threshold: 80, want: []bool{true, true, true}},
		{name: "负阈值没有候选", threshold: -1, want: []bool{false, false, false}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mask := BuildCandidateMask(img, black, tt.threshold)
			assert.Equal(t, 3, mask.W)
			assert.Equal(t, 1, mask.H)
			assert.Equal(t, tt.want, mask.Bits)
		})
	}
}

func TestBuildCandidateMaskIgnoresAlpha(t *testing.T) {
	img := solidFrame(2, 2, black)
	img.Pix[3] = 0
	img.Pix[7] = 128

	mask := BuildCandidateMask(img, black, 0)
	assert.Equal(t, 4, mask.Count())
}

func TestBuildCandidateMaskThresholdMonotonic(t *testing.T) {
	// 渐变帧：每个像素颜色不同
	img := solidFrame(16, 16, black)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			setPixel(img, x, y, Color{uint8(x * 16), uint8(y * 16), uint8((x + y) * 8)})
		}
	}
	bg := Color{40, 40, 40}

	prev := BuildCandidateMask(img, bg, 0)
	for th := 10; th <= 765; th += 10 {
		cur := BuildCandidateMask(img, bg, th)
		for i := range prev.Bits {
			if prev.Bits[i] {
				assert.True(t, cur.Bits[i], "threshold %d dropped pixel %d", th, i)
			}
		}
		assert.GreaterOrEqual(t, cur.Count(), prev.Count())
		prev = cur
	}
	assert.Equal(t, 256, prev.Count())
}

func TestMaskAt(t *testing.T) {
	m := NewMask(2, 2)
	m.Set(1, 0, true)

	assert.True(t, m.At(1, 0))
	assert.False(t, m.At(0, 0))
	assert.False(t, m.At(-1, 0))
	assert.False(t, m.At(2, 0))
	assert.Equal(t, 1, m.Count())
}
