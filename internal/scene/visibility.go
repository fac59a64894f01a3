package scene

// ApplyVisibility rewrites the visibility flags for a focus target.
// A nil focus ("") or the star shows everything. Any other focus hides
// the star mesh and every planet subtree except the system root's; the
// root keeps its pivot but loses its orbit ring. Moons are never
// toggled individually: the draw pass gates them on their parent
// planet's pivot flag, so hiding the pivot hides the whole subtree.
func ApplyVisibility(reg *Registry, focusId string) {
	if focusId == "" || focusId == reg.StarId() {
		for _, id := range reg.Ids() {
			o, _ := reg.Get(id)
			o.MeshVisible = true
			o.PivotVisible = true
			o.RingVisible = o.Kind == KindPlanet || o.Kind == KindMoon
		}
		return
	}

	root := reg.SystemRoot(focusId)

	for _, id := range reg.Ids() {
		o, _ := reg.Get(id)
		switch o.Kind {
		case KindStar:
			o.MeshVisible = false
		case KindPlanet:
			if o.Id == root {
				o.PivotVisible = true
				o.RingVisible = false
			} else {
				o.PivotVisible = false
				o.RingVisible = false
			}
		case KindBelt:
			o.PivotVisible = o.Id == focusId
			o.MeshVisible = o.Id == focusId
		case KindMoon:
			// inherited from the parent pivot
		}
	}
}
