package snake

// System runs after every scheduler step. Systems observe the frame; they
// should not block, since the next tick waits for them.
type System interface {
	Execute(frame *TickFrame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *TickFrame)

func (f SystemFunc) Execute(frame *TickFrame) {
	f(frame)
}
