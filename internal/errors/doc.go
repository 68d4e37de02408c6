// Package errors provides structured, actionable errors for vrange.
//
// Every error carries a registered code (e.g. "E101") that maps to a
// category, a short message and a longer explanation. Engine misuse such as
// calling SetState on a component that was never mounted is reported by
// panicking with one of these errors; configuration, snapshot storage and
// CLI failures are returned as ordinary wrapped errors.
//
// # Error Categories
//
//   - runtime: reconciler and component misuse (E100-E139)
//   - config: vrange.json problems (E200-E219)
//   - cli: command-line usage problems (E300-E319)
//   - storage: snapshot persistence failures (E400-E419)
//
// # Usage
//
//	err := errors.New("E101").
//	    WithDetailf("component %T", comp).
//	    WithSuggestion("Mount the component with vdom.Render before calling SetState")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: SetState called before mount
//	//
//	//   component *demo.Counter
//	//
//	//   Hint: Mount the component with vdom.Render before calling SetState
package errors
