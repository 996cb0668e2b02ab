package parse

// State is a cursor over the argument list being parsed
type State interface {
	Pos() int            // Get the current position
	Args() []string      // Get the entire argument list
	CurrentArg() string  // Get the current argument
	Peek() string        // Peek at the next argument
	Advance() bool       // Advance to the next argument
	Remaining() []string // Arguments after the current position
	Len() int            // Gets the length of the argument list
	Done() bool          // Whether every argument was consumed
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State positioned before the first argument
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the argument list
func (s *DefaultState) Pos() int {
	return s.pos
}

// Args returns the entire argument list
func (s *DefaultState) Args() []string {
	return s.args
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Advance advances to the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

// Peek returns the next argument without advancing the current position
func (s *DefaultState) Peek() string {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1]
	}

	return ""
}

// Remaining returns the arguments after the current position
func (s *DefaultState) Remaining() []string {
	if s.pos+1 >= len(s.args) {
		return nil
	}

	return s.args[s.pos+1:]
}

// Len returns the length of the argument list
func (s *DefaultState) Len() int {
	return len(s.args)
}

// Done reports whether the cursor sits on the last argument or the list is empty
func (s *DefaultState) Done() bool {
	return s.pos+1 >= len(s.args)
}
