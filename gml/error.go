package gml

import (
	"fmt"

	"github.com/isgasho/gsl8engine/values"
)

// ErrorKind is the closed set of runtime error kinds the engine can raise.
// Every operator, accessor and instance-variable setter in the engine
// returns one of these rather than panicking.
type ErrorKind byte

const (
	KindInvalidOperandsUnary ErrorKind = iota
	KindInvalidOperandsBinary
	KindInvalidUnaryOperator
	KindInvalidBinaryOperator
	KindInvalidAssignment
	KindInvalidArrayAccessor
	KindInvalidArrayIndex
	KindInvalidDeref
	KindInvalidIndex
	KindInvalidIndexLhs
	KindTooManyArrayDimensions
	KindInvalidSwitchBody
	KindUnexpectedASTExpr
	KindUninitializedVariable
	KindUninitializedArgument
	KindWrongArgumentCount
	KindNonexistentAsset
	KindUnknownFunction
	KindReadOnlyVariable
	KindEndOfRoomOrder
	KindInvalidRoomSpeed
	KindFunctionError
	KindReplayError
	KindBadDirectoryError
)

// AssetKind names the asset collection an Error.NonexistentAsset refers to.
type AssetKind byte

const (
	AssetConstant AssetKind = iota
	AssetScript
	AssetObject
	AssetSprite
)

func (k AssetKind) String() string {
	switch k {
	case AssetConstant:
		return "constant"
	case AssetScript:
		return "script"
	case AssetObject:
		return "object"
	case AssetSprite:
		return "sprite"
	default:
		return "asset"
	}
}

// Error is the single runtime error type the engine ever returns. It carries
// just enough context per Kind to reproduce the original engine's
// diagnostic text; there is no stack unwinding beyond a plain
// Go error return, matching the language's lack of try/catch.
type Error struct {
	Kind ErrorKind

	Op      fmt.Stringer // operator, for Invalid{Operands,Operator} kinds
	Value1  values.Value
	Value2  values.Value
	Expr    string // string rendering of the offending AST node
	Index   int32
	AssetOf AssetKind
	AssetID int32
	VarName string
	N       int
	Exp     int
	Got     int
	Fn      string
	Msg     string
	Path    string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEndOfRoomOrder:
		return "end of room order reached"
	case KindInvalidOperandsUnary:
		return fmt.Sprintf("invalid operands %s to %s operator (%s%s)", e.Value1.TypeName(), e.Op, e.Op, e.Value1)
	case KindInvalidOperandsBinary:
		return fmt.Sprintf("invalid operands %s and %s to %s operator (%s %s %s)",
			e.Value1.TypeName(), e.Value2.TypeName(), e.Op, e.Value1, e.Op, e.Value2)
	case KindInvalidUnaryOperator:
		return fmt.Sprintf("invalid unary operator %s", e.Op)
	case KindInvalidBinaryOperator:
		return fmt.Sprintf("invalid binary operator %s", e.Op)
	case KindInvalidAssignment:
		return fmt.Sprintf("invalid assignment %s", e.Expr)
	case KindInvalidArrayAccessor:
		return fmt.Sprintf("invalid array accessor %s", e.Expr)
	case KindInvalidArrayIndex:
		return fmt.Sprintf("invalid array index %d", e.Index)
	case KindInvalidDeref:
		return fmt.Sprintf("invalid deref %s", e.Expr)
	case KindInvalidIndex:
		return fmt.Sprintf("invalid index %s", e.Expr)
	case KindInvalidIndexLhs:
		return fmt.Sprintf("invalid index lhs %s", e.Expr)
	case KindTooManyArrayDimensions:
		return fmt.Sprintf("too many array dimensions (%d)", e.N)
	case KindInvalidSwitchBody:
		return fmt.Sprintf("invalid switch body %s", e.Expr)
	case KindUnexpectedASTExpr:
		return fmt.Sprintf("unexpected AST expr %s", e.Expr)
	case KindUninitializedVariable:
		if e.Index == 0 {
			return fmt.Sprintf("uninitialized variable %q", e.VarName)
		}
		return fmt.Sprintf("uninitialized variable \"%s[%d]\"", e.VarName, e.Index)
	case KindUninitializedArgument:
		return fmt.Sprintf("uninitialized argument #%d", e.N)
	case KindWrongArgumentCount:
		return fmt.Sprintf("wrong argument count (expected: %d, got: %d)", e.Exp, e.Got)
	case KindNonexistentAsset:
		return fmt.Sprintf("nonexistent asset id %d (%s)", e.AssetID, e.AssetOf)
	case KindUnknownFunction:
		return fmt.Sprintf("unknown function %q", e.Fn)
	case KindReadOnlyVariable:
		return fmt.Sprintf("read-only variable %s", e.VarName)
	case KindInvalidRoomSpeed:
		return fmt.Sprintf("invalid room_speed %d", e.Index)
	case KindFunctionError:
		return fmt.Sprintf("%s: %s", e.Fn, e.Msg)
	case KindReplayError:
		return e.Msg
	case KindBadDirectoryError:
		return fmt.Sprintf("cannot encode working directory %s with current encoding", e.Path)
	default:
		return "unknown gml error"
	}
}

// Is supports errors.Is against the zero-value sentinel of a given Kind,
// e.g. errors.Is(err, &gml.Error{Kind: gml.KindReadOnlyVariable}).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func InvalidOperandsUnary(op UnaryOperator, v values.Value) *Error {
	return &Error{Kind: KindInvalidOperandsUnary, Op: op, Value1: v}
}

func InvalidOperandsBinary(op BinaryOperator, a, b values.Value) *Error {
	return &Error{Kind: KindInvalidOperandsBinary, Op: op, Value1: a, Value2: b}
}

func InvalidArrayIndex(i int32) *Error {
	return &Error{Kind: KindInvalidArrayIndex, Index: i}
}

func NonexistentAsset(kind AssetKind, id int32) *Error {
	return &Error{Kind: KindNonexistentAsset, AssetOf: kind, AssetID: id}
}

func UninitializedVariable(name string, index int32) *Error {
	return &Error{Kind: KindUninitializedVariable, VarName: name, Index: index}
}

func UninitializedArgument(n int) *Error {
	return &Error{Kind: KindUninitializedArgument, N: n}
}

func ReadOnlyVariable(name string) *Error {
	return &Error{Kind: KindReadOnlyVariable, VarName: name}
}

func InvalidRoomSpeed(v int32) *Error {
	return &Error{Kind: KindInvalidRoomSpeed, Index: v}
}

func FunctionError(fn, msg string) *Error {
	return &Error{Kind: KindFunctionError, Fn: fn, Msg: msg}
}

func UnknownFunction(name string) *Error {
	return &Error{Kind: KindUnknownFunction, Fn: name}
}

func ReplayError(msg string) *Error {
	return &Error{Kind: KindReplayError, Msg: msg}
}

func BadDirectoryError(path string) *Error {
	return &Error{Kind: KindBadDirectoryError, Path: path}
}

// The constructors below build the "compile-time detected" error kinds
// (invalid lvalue, invalid array accessor, malformed switch body, ...).
// The compiler that would normally raise these during compilation is out
// of scope here; most reach the engine already embedded in a RuntimeError
// instruction/node and fire verbatim when execution reaches that point.
// A few are also raised by engine code directly: UnexpectedASTExpr and
// InvalidArrayAccessor for an unrecognized tree variant, and
// WrongArgumentCount from builtins such as BuiltinInstanceCreate.

func InvalidAssignment(expr string) *Error {
	return &Error{Kind: KindInvalidAssignment, Expr: expr}
}

func InvalidArrayAccessor(expr string) *Error {
	return &Error{Kind: KindInvalidArrayAccessor, Expr: expr}
}

func InvalidDeref(expr string) *Error {
	return &Error{Kind: KindInvalidDeref, Expr: expr}
}

func InvalidIndex(expr string) *Error {
	return &Error{Kind: KindInvalidIndex, Expr: expr}
}

func InvalidIndexLhs(expr string) *Error {
	return &Error{Kind: KindInvalidIndexLhs, Expr: expr}
}

func InvalidSwitchBody(expr string) *Error {
	return &Error{Kind: KindInvalidSwitchBody, Expr: expr}
}

func UnexpectedASTExpr(expr string) *Error {
	return &Error{Kind: KindUnexpectedASTExpr, Expr: expr}
}

func EndOfRoomOrder() *Error {
	return &Error{Kind: KindEndOfRoomOrder}
}

func TooManyArrayDimensions(n int) *Error {
	return &Error{Kind: KindTooManyArrayDimensions, N: n}
}

func WrongArgumentCount(exp, got int) *Error {
	return &Error{Kind: KindWrongArgumentCount, Exp: exp, Got: got}
}
