package session

// Input is one message from the input source.
type Input interface {
	isInput()
}

// LineSubmitted carries a line the user entered.
type LineSubmitted struct {
	Line string
}

// RecallPrevious asks for the previous history entry.
type RecallPrevious struct{}

// RecallNext asks for the next history entry.
type RecallNext struct{}

func (LineSubmitted) isInput()  {}
func (RecallPrevious) isInput() {}
func (RecallNext) isInput()     {}

// Reply tells the input source what to do after a message.
type Reply struct {
	// Input replaces the input field contents when Replace is set.
	Input   string
	Replace bool
	// Terminate is set after an exit command.
	Terminate bool
}

// Handle processes one input message. Recall messages never reach the
// dispatcher.
func (d *Driver) Handle(in Input) Reply {
	switch in := in.(type) {
	case LineSubmitted:
		return Reply{Terminate: d.Submit(in.Line)}
	case RecallPrevious:
		line, ok := d.RecallPrevious()
		return Reply{Input: line, Replace: ok}
	case RecallNext:
		line, ok := d.RecallNext()
		return Reply{Input: line, Replace: ok}
	}
	return Reply{}
}
