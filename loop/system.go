package loop

// System is a behaviour run once per frame. Systems read the frame's board and push
// events; they never replace the board directly. Implementations may keep state in
// their own fields between frames.
type System interface {
	Execute(frame *Frame)
}
