// Package listview derives what the terminal client shows from the items the
// server returned.
//
// Everything here is a pure function of its inputs: the item slice in server
// order (newest first) and a Filter. The package also holds the rules for
// patching the local list after the server confirms a mutation, and the
// state of the add-item form.
package listview
