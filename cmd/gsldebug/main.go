// Command gsldebug is an interactive console for poking at one scratch
// instance's variables and fields via a readline shell. It does not parse
// GSL source text — project-file/script compilation is out of scope —
// it issues the same accessor reads/writes the evaluator does, directly.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/isgasho/gsl8engine/gml"
	"github.com/isgasho/gsl8engine/values"
)

func main() {
	logger := log.New(os.Stderr, "gsldebug: ", log.LstdFlags)
	assets := gml.NewMemoryAssets()
	assets.AddObject(0, &gml.Object{Name: "obj_scratch", Parent: -1})

	eng := gml.NewEngine(assets, gml.DefaultEngineConfig(), logger)
	eng.Input = gml.NewDefaultInputManager()

	handle, err := eng.CreateInstance(0, 0, 0)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gsldebug:", err)
		os.Exit(1)
	}
	ctx := gml.NewContext(handle)

	rl, err := readline.New("gsl> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "gsldebug:", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Println("gsldebug: scratch instance", handle, "ready. Commands: get NAME | set NAME VALUE | field N [IDX] | setfield N VALUE [IDX] | quit")
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "gsldebug:", err)
			return
		}
		if err := dispatchLine(eng, ctx, strings.TrimSpace(line)); err != nil {
			fmt.Println("error:", err)
		}
	}
}

func dispatchLine(eng *gml.Engine, ctx *gml.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "quit", "exit":
		os.Exit(0)
	case "get":
		if len(fields) != 2 {
			return fmt.Errorf("usage: get NAME")
		}
		v, ok := gml.LookupInstanceVariable(fields[1])
		if !ok {
			return fmt.Errorf("unknown variable %q", fields[1])
		}
		val, err := eng.ReadVariable(gml.VariableAccessor{Var: v, Array: gml.ArrayNone{}, Owner: gml.IdentOwn{}}, ctx)
		if err != nil {
			return err
		}
		fmt.Println(formatValue(val))
		return nil

	case "set":
		if len(fields) != 3 {
			return fmt.Errorf("usage: set NAME VALUE")
		}
		v, ok := gml.LookupInstanceVariable(fields[1])
		if !ok {
			return fmt.Errorf("unknown variable %q", fields[1])
		}
		val := parseValue(fields[2])
		return eng.WriteVariable(gml.VariableAccessor{Var: v, Array: gml.ArrayNone{}, Owner: gml.IdentOwn{}}, ctx, val)

	case "field":
		if len(fields) != 2 && len(fields) != 3 {
			return fmt.Errorf("usage: field N [IDX]")
		}
		idx, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		acc := gml.ArrayAccessor(gml.ArrayNone{})
		if len(fields) == 3 {
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return err
			}
			acc = gml.ArraySingle{Index: gml.Literal{Value: values.NewInt(int32(n))}}
		}
		val, err := eng.ReadField(gml.FieldAccessor{Index: idx, Array: acc, Owner: gml.IdentOwn{}}, ctx)
		if err != nil {
			return err
		}
		fmt.Println(formatValue(val))
		return nil

	case "setfield":
		if len(fields) != 3 && len(fields) != 4 {
			return fmt.Errorf("usage: setfield N VALUE [IDX]")
		}
		idx, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		val := parseValue(fields[2])
		acc := gml.ArrayAccessor(gml.ArrayNone{})
		if len(fields) == 4 {
			n, err := strconv.Atoi(fields[3])
			if err != nil {
				return err
			}
			acc = gml.ArraySingle{Index: gml.Literal{Value: values.NewInt(int32(n))}}
		}
		return eng.WriteField(gml.FieldAccessor{Index: idx, Array: acc, Owner: gml.IdentOwn{}}, ctx, val)

	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}

func parseValue(s string) values.Value {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return values.NewFloat(f)
	}
	return values.NewString(s)
}

func formatValue(v values.Value) string {
	if v.IsString() {
		return v.Str()
	}
	return strconv.FormatFloat(float64(v.Real()), 'g', -1, 64)
}
