package chart

// Surface is the drawing capability a host hands to Render.
type Surface interface {
	DrawLine(from, to Point, p Paint)
	// DrawText draws text with its baseline starting at at.
	DrawText(text string, at Point, p Paint)
	DrawPath(path *Path, p Paint)
	DrawCircle(center Point, radius float32, p Paint)
}
