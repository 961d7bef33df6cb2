package snake

// Body is the ordered list of segments, head at index 0 and tail last.
//
// Operations return a new Body and never write through the receiver, so a
// State handed out by a Session cannot be changed behind its back.
type Body []Cell

// NewBody creates a one-segment body at head.
func NewBody(head Cell) Body {
	return Body{head}
}

// Head returns the first segment.
func (b Body) Head() Cell {
	return b[0]
}

// Len returns the number of segments.
func (b Body) Len() int {
	return len(b)
}

// Advance prepends the head moved one cell in direction d.
// It returns the grown body and the new head.
func (b Body) Advance(d Direction) (Body, Cell) {
	head := b.Head().Step(d)
	next := make(Body, 0, len(b)+1)
	next = append(next, head)
	next = append(next, b...)
	return next, head
}

// Retract drops the tail segment.
func (b Body) Retract() Body {
	if len(b) == 0 {
		return b
	}
	return b[: len(b)-1 : len(b)-1]
}

// DetectSelfCollision reports whether head matches any segment after index 0.
func (b Body) DetectSelfCollision(head Cell) bool {
	for i := 1; i < len(b); i++ {
		if b[i] == head {
			return true
		}
	}
	return false
}

// Contains reports whether any segment occupies c.
func (b Body) Contains(c Cell) bool {
	for _, seg := range b {
		if seg == c {
			return true
		}
	}
	return false
}
