package statusicon

// Renderer memoizes Render: the element is recomputed only when the props
// differ from the previous call. A Renderer is not safe for concurrent use.
type Renderer struct {
	last    Props
	el      Element
	valid   bool
	renders int
}

// Render returns the element for p, reusing the previous result when p is
// unchanged.
func (r *Renderer) Render(p Props) Element {
	if r.valid && p == r.last {
		return r.el
	}
	r.last, r.el, r.valid = p, Render(p), true
	r.renders++
	return r.el
}

// Renders reports how many times the element has been recomputed.
func (r *Renderer) Renders() int { return r.renders }
