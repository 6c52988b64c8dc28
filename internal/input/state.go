package input

// State is the captured keyboard snapshot for one frame.
// Hosts fill it before calling into the game and call EndFrame afterwards.
type State struct {
	down       [keyCount]bool
	pressed    [keyCount]bool
	anyPressed bool
}

// NewState returns an empty snapshot
func NewState() *State {
	return &State{}
}

// Press marks k as held and as pressed during this frame
func (s *State) Press(k Key) {
	if !k.Valid() {
		s.anyPressed = true
		return
	}
	s.down[k] = true
	s.pressed[k] = true
	s.anyPressed = true
}

// Release marks k as no longer held
func (s *State) Release(k Key) {
	if k.Valid() {
		s.down[k] = false
	}
}

// SetDown sets the held state of k without touching pressed-this-frame
func (s *State) SetDown(k Key, down bool) {
	if k.Valid() {
		s.down[k] = down
	}
}

// MarkAnyPressed records a press of a key that has no Key mapping
func (s *State) MarkAnyPressed() {
	s.anyPressed = true
}

func (s *State) IsKeyDown(k Key) bool {
	return k.Valid() && s.down[k]
}

func (s *State) IsKeyPressed(k Key) bool {
	return k.Valid() && s.pressed[k]
}

func (s *State) AnyKeyPressed() bool {
	return s.anyPressed
}

// EndFrame clears the pressed-this-frame flags, held keys stay held
func (s *State) EndFrame() {
	s.pressed = [keyCount]bool{}
	s.anyPressed = false
}

// Reset clears everything
func (s *State) Reset() {
	*s = State{}
}
