package gml

// UpdateBbox recomputes an instance's bounding box from its mask (or
// sprite, if no mask is set) and clears the stale flag. A missing
// sprite/mask collapses the box to the instance's position, matching the
// reference engine's fallback.
func (eng *Engine) UpdateBbox(inst *Instance) {
	if !inst.BboxStale {
		return
	}
	maskIdx := inst.MaskIndex
	if maskIdx < 0 {
		maskIdx = inst.SpriteIndex
	}
	spr, ok := eng.Assets.Sprite(maskIdx)
	if !ok {
		inst.BboxLeft, inst.BboxRight = int32(inst.X), int32(inst.X)
		inst.BboxTop, inst.BboxBottom = int32(inst.Y), int32(inst.Y)
		inst.BboxStale = false
		return
	}
	xs, ys := float64(inst.ImageXscale), float64(inst.ImageYscale)
	left := float64(spr.BboxLeft-spr.OriginX) * xs
	right := float64(spr.BboxRight-spr.OriginX) * xs
	top := float64(spr.BboxTop-spr.OriginY) * ys
	bottom := float64(spr.BboxBottom-spr.OriginY) * ys
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	x, y := float64(inst.X), float64(inst.Y)
	inst.BboxLeft = int32(x + left)
	inst.BboxRight = int32(x + right)
	inst.BboxTop = int32(y + top)
	inst.BboxBottom = int32(y + bottom)
	inst.BboxStale = false
}
