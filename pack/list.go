package pack

// List is the ordered set of targets every generated asset is written to.
type List struct {
	targets []Target
}

// NewList returns a list of the given targets.
func NewList(targets ...Target) *List {
	return &List{targets: append([]Target(nil), targets...)}
}

// Add appends a target.
func (l *List) Add(t Target) {
	l.targets = append(l.targets, t)
}

// Len returns the number of targets.
func (l *List) Len() int { return len(l.targets) }

// At returns the i-th target.
func (l *List) At(i int) Target { return l.targets[i] }

// Targets returns a copy of the targets in order.
func (l *List) Targets() []Target {
	return append([]Target(nil), l.targets...)
}

// FindTexture returns the first target that stores the texture.
func (l *List) FindTexture(key Key) (Target, bool) {
	for _, t := range l.targets {
		if t.Exists(t.TexturePath(key)) {
			return t, true
		}
	}
	return nil, false
}
