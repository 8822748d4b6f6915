package matte

// FloodFillFromBorder 从图像边框出发，在 mask 内做四连通的多源 BFS。
// 只有能沿着候选像素走到边框的像素才算背景，被前景包住的同色像素（比如角色内部的黑色描边）保持不变。
//
// 像素入队时就标记，保证每个像素最多入队一次。
func FloodFillFromBorder(mask Mask) Mask {
	w, h := mask.W, mask.H
	out := NewMask(w, h)
	if w == 0 || h == 0 {
		return out
	}

	queue := make([]int, 0, 2*(w+h))
	push := func(x, y int) {
		if x < 0 || y < 0 || x >= w || y >= h {
			return
		}
		i := y*w + x
		if !mask.Bits[i] || out.Bits[i] {
			return
		}
		out.Bits[i] = true
		queue = append(queue, i)
	}

	// 边框种子
	for x := 0; x < w; x++ {
		push(x, 0)
		push(x, h-1)
	}
	for y := 0; y < h; y++ {
		push(0, y)
		push(w-1, y)
	}

	for head := 0; head < len(queue); head++ {
		x, y := queue[head]%w, queue[head]/w
		push(x+1, y)
		push(x-1, y)
		push(x, y+1)
		push(x, y-1)
	}

	return out
}
