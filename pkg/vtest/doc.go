// Package vtest provides testing helpers for vrange components.
//
// # Mounting
//
// Mount renders a tree into a fresh in-memory document:
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.Mount(t, vdom.Mount(NewCounter()))
//	    h.Click("add")
//	    h.ExpectContains(`<span id="count">2</span>`)
//	}
//
// # Render Assertions
//
// Assert on the markup a node produces when mounted:
//
//	vtest.ExpectContains(t, comp.Render(), "Welcome Admin")
//	vtest.ExpectNotContains(t, comp.Render(), "Login")
package vtest
