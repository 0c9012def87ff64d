// Package interp is the tree-walking execution engine. It evaluates parsed
// command lists against a single shared Environment, performing all side
// effects through a host.Host capability.
package interp

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/proj-sh/proj/core/host"
	"github.com/proj-sh/proj/core/parser"
	"github.com/proj-sh/proj/core/resolve"
)

// DefaultMaxCallDepth bounds nested `call` evaluation when no limit is
// configured. Static cycles are caught by the resolver before execution;
// this guards recursion the resolver cannot see.
const DefaultMaxCallDepth = 256

// Engine runs directives from a block mapping. The mapping is never mutated
// during execution.
type Engine struct {
	Blocks map[string]*parser.Block
	Host   host.Host

	// MaxCallDepth is the maximum number of nested `call` invocations.
	MaxCallDepth int
}

func New(blocks map[string]*parser.Block, h host.Host) *Engine {
	return &Engine{
		Blocks:       blocks,
		Host:         h,
		MaxCallDepth: DefaultMaxCallDepth,
	}
}

// Run validates the call graph reachable from entry, then evaluates the
// entry directive with a fresh environment. An `exit` command surfaces as an
// *ExitError; every other error aborts the run at the first failure.
func (e *Engine) Run(entry string) error {
	if err := resolve.Check(e.Blocks, entry); err != nil {
		return err
	}
	return e.invoke(entry, NewEnvironment(), 0)
}

func (e *Engine) invoke(name string, env *Environment, depth int) error {
	if depth > e.MaxCallDepth {
		return &RecursionError{Limit: e.MaxCallDepth}
	}
	block, ok := e.Blocks[name]
	if !ok {
		return fmt.Errorf("call: directive %q not found", name)
	}
	return e.exec(block.Commands, env, depth)
}

func (e *Engine) exec(cmds []parser.Command, env *Environment, depth int) error {
	for _, cmd := range cmds {
		if err := e.step(cmd, env, depth); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) step(cmd parser.Command, env *Environment, depth int) error {
	switch c := cmd.(type) {
	case parser.PushString:
		env.Push(Str(c.Value))
		return nil

	case parser.PushInt:
		env.Push(Int(c.Value))
		return nil

	case parser.Echo:
		s, err := env.PopString()
		if err != nil {
			return fmt.Errorf("echo: %w", err)
		}
		fmt.Fprintln(e.Host.Stdout(), s)
		return nil

	case parser.Dup:
		v, err := env.Top()
		if err != nil {
			return fmt.Errorf("dup: %w", err)
		}
		env.Push(v)
		return nil

	case parser.Pop:
		if _, err := env.Pop(); err != nil {
			return fmt.Errorf("pop: %w", err)
		}
		return nil

	case parser.Swap:
		a, err := env.Pop()
		if err != nil {
			return fmt.Errorf("swap: %w", err)
		}
		b, err := env.Pop()
		if err != nil {
			return fmt.Errorf("swap: %w", err)
		}
		env.Push(a)
		env.Push(b)
		return nil

	case parser.Concat:
		right, err := env.PopString()
		if err != nil {
			return fmt.Errorf("concat: %w", err)
		}
		left, err := env.PopString()
		if err != nil {
			return fmt.Errorf("concat: %w", err)
		}
		env.Push(Str(left + right))
		return nil

	case parser.Not:
		b, err := env.PopBool()
		if err != nil {
			return fmt.Errorf("not: %w", err)
		}
		env.Push(Bool(!b))
		return nil

	case parser.ReadFile:
		path, err := env.PopString()
		if err != nil {
			return fmt.Errorf("readfile: %w", err)
		}
		data, err := afero.ReadFile(e.Host.Fs(), path)
		if err != nil {
			return fmt.Errorf("readfile: %w", err)
		}
		env.Push(Str(string(data)))
		return nil

	case parser.WriteFile:
		// Content sits above the path on the stack.
		content, err := env.PopString()
		if err != nil {
			return fmt.Errorf("writefile: %w", err)
		}
		path, err := env.PopString()
		if err != nil {
			return fmt.Errorf("writefile: %w", err)
		}
		if err := afero.WriteFile(e.Host.Fs(), path, []byte(content), 0644); err != nil {
			return fmt.Errorf("writefile: %w", err)
		}
		return nil

	case parser.Debug:
		e.dumpStack(env)
		return nil

	case parser.Exit:
		code, err := env.PopInt()
		if err != nil {
			return fmt.Errorf("exit: %w", err)
		}
		return &ExitError{Code: int(code)}

	case parser.If:
		cond, err := env.PopBool()
		if err != nil {
			return fmt.Errorf("if: %w", err)
		}
		if cond {
			return e.exec(c.Body, env, depth)
		}
		return nil

	case parser.While:
		// The loop re-pops the condition each time around; the body is
		// responsible for pushing the next one.
		for {
			cond, err := env.PopBool()
			if err != nil {
				return fmt.Errorf("while: %w", err)
			}
			if !cond {
				return nil
			}
			if err := e.exec(c.Body, env, depth); err != nil {
				return err
			}
		}

	case parser.Call:
		return e.invoke(c.Directive, env, depth+1)

	case parser.Store:
		v, err := env.Pop()
		if err != nil {
			return fmt.Errorf("let %s: %w", c.Name, err)
		}
		env.SetVar(c.Name, v)
		return nil

	case parser.Load:
		v, err := env.Var(c.Name)
		if err != nil {
			return err
		}
		env.Push(v)
		return nil

	case parser.Shell:
		command, err := env.PopString()
		if err != nil {
			return fmt.Errorf("shell: %w", err)
		}
		res, err := e.Host.RunShell(command)
		if err != nil {
			return fmt.Errorf("shell %q: %w", command, err)
		}
		if res.Ok() {
			env.Push(Str(strings.TrimSpace(res.Stdout)))
			env.Push(Bool(true))
		} else {
			env.Push(Str(strings.TrimSpace(res.Stderr)))
			env.Push(Bool(false))
		}
		return nil

	default:
		return fmt.Errorf("unknown command %T", cmd)
	}
}

// dumpStack prints the stack, top first, to the host's stderr.
func (e *Engine) dumpStack(env *Environment) {
	w := e.Host.Stderr()
	stack := env.Stack()
	fmt.Fprintf(w, "debug: %d value(s) on the stack\n", len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "  [%d] %s\n", len(stack)-1-i, stack[i])
	}
}
