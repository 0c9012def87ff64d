package parser

// Command is one parsed instruction. The set of variants is closed: every
// implementation lives in this file and the engine switches over them
// exhaustively.
type Command interface {
	command()
}

// PushString pushes a string literal.
type PushString struct {
	Value string
}

// PushInt pushes a 64-bit signed integer literal.
type PushInt struct {
	Value int64
}

// Echo pops a string and prints it.
type Echo struct{}

// Dup copies the top of the stack.
type Dup struct{}

// Pop discards the top of the stack.
type Pop struct{}

// Swap exchanges the top two stack values.
type Swap struct{}

// Concat pops two strings and pushes their concatenation.
type Concat struct{}

// Not pops a boolean and pushes its negation.
type Not struct{}

// ReadFile pops a path and pushes the file's contents.
type ReadFile struct{}

// WriteFile pops content then path and writes content to the path.
type WriteFile struct{}

// If pops a boolean and runs Body when it is true. There is no else clause.
type If struct {
	Body []Command
}

// While pops a boolean before each iteration and runs Body while it is true.
// The body itself must re-push the condition; the loop only re-pops.
type While struct {
	Body []Command
}

// Call runs the named directive in the caller's environment.
type Call struct {
	Directive string
}

// Store pops a value and binds it to the named variable.
type Store struct {
	Name string
}

// Load pushes a copy of the named variable's value.
type Load struct {
	Name string
}

// Shell pops a command line and runs it through the host shell.
type Shell struct{}

// Exit pops an integer and terminates the run with it as the exit code.
type Exit struct{}

// Debug prints the whole stack without modifying it.
type Debug struct{}

func (PushString) command() {}
func (PushInt) command()    {}
func (Echo) command()       {}
func (Dup) command()        {}
func (Pop) command()        {}
func (Swap) command()       {}
func (Concat) command()     {}
func (Not) command()        {}
func (ReadFile) command()   {}
func (WriteFile) command()  {}
func (If) command()         {}
func (While) command()      {}
func (Call) command()       {}
func (Store) command()      {}
func (Load) command()       {}
func (Shell) command()      {}
func (Exit) command()       {}
func (Debug) command()      {}

// Block is the parsed command sequence for one directive plus the list of
// directives it calls, in order, duplicates included. Dependencies from
// nested if/while bodies bubble up into the enclosing block.
type Block struct {
	Dependencies []string
	Commands     []Command
}

// cloneCommands deep-copies a command list so macro splices never alias the
// source block's nested bodies.
func cloneCommands(cmds []Command) []Command {
	out := make([]Command, len(cmds))
	for i, cmd := range cmds {
		switch c := cmd.(type) {
		case If:
			out[i] = If{Body: cloneCommands(c.Body)}
		case While:
			out[i] = While{Body: cloneCommands(c.Body)}
		default:
			out[i] = cmd
		}
	}
	return out
}
