// Package pure provides decorators that cache the results of function calls.
//
// Once runs a function a single time and replays its result forever after.
// Memo generalizes that to one call per distinct argument list. Both assume
// the wrapped function is pure: the same arguments always give the same
// result, and nothing observable happens besides computing it. Wrapping a
// function that reads the clock or does I/O freezes whatever it saw first.
//
// The typed helpers follow an arity naming scheme: MemoizeI2O1 memoizes a
// function of two inputs and one output, OnceI0O1 a function of no inputs.
//
//	var fib func(int) int
//	fib = pure.MemoizeI1O1(func(n int) int {
//	    if n <= 1 {
//	        return n
//	    }
//	    return fib(n-1) + fib(n-2)
//	})
//
// Cache keys are built by KeyOf from the argument tuple. Typed helpers only
// accept Primitive arguments, for which keys are exact. Arguments of any
// other type passed to Memo.Invoke are keyed by their String method or their
// Go-syntax representation, which is not guaranteed to distinguish values;
// use MemoizeBy with an explicit key function for structured arguments.
//
// Results live for as long as the wrapper does. The default store never
// evicts; Config selects a bounded RotatingStore or RistrettoStore instead.
// A RistrettoStore holds goroutines, so build that Memo with NewMemo and call
// Close when done with it.
package pure
