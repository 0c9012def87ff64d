package interp

import "fmt"

// Environment is the shared runtime state of one run: a LIFO value stack and
// a flat variable table. Exactly one exists per run and it is threaded
// explicitly through every nested evaluation, so called blocks see and
// mutate the caller's stack and variables.
type Environment struct {
	stack []Value
	vars  map[string]Value
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value)}
}

func (e *Environment) Push(v Value) {
	e.stack = append(e.stack, v)
}

func (e *Environment) Pop() (Value, error) {
	if len(e.stack) == 0 {
		return Value{}, ErrEmptyStack
	}
	v := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return v, nil
}

// Top peeks at the top of the stack without consuming it.
func (e *Environment) Top() (Value, error) {
	if len(e.stack) == 0 {
		return Value{}, ErrEmptyStack
	}
	return e.stack[len(e.stack)-1], nil
}

func (e *Environment) PopString() (string, error) {
	v, err := e.Pop()
	if err != nil {
		return "", err
	}
	if v.Kind != KindString {
		return "", fmt.Errorf("expected String, got %s", v.TypeName())
	}
	return v.Str, nil
}

func (e *Environment) PopInt() (int64, error) {
	v, err := e.Pop()
	if err != nil {
		return 0, err
	}
	if v.Kind != KindInteger {
		return 0, fmt.Errorf("expected Integer, got %s", v.TypeName())
	}
	return v.Int, nil
}

func (e *Environment) PopBool() (bool, error) {
	v, err := e.Pop()
	if err != nil {
		return false, err
	}
	if v.Kind != KindBoolean {
		return false, fmt.Errorf("expected Boolean, got %s", v.TypeName())
	}
	return v.Bool, nil
}

func (e *Environment) Depth() int {
	return len(e.stack)
}

// Stack returns a copy of the stack, bottom first.
func (e *Environment) Stack() []Value {
	out := make([]Value, len(e.stack))
	copy(out, e.stack)
	return out
}

// SetVar binds a value to a name, overwriting any prior binding.
func (e *Environment) SetVar(name string, v Value) {
	e.vars[name] = v
}

// Var returns the value bound to name.
func (e *Environment) Var(name string) (Value, error) {
	v, ok := e.vars[name]
	if !ok {
		return Value{}, &UnboundVariableError{Name: name}
	}
	return v, nil
}
