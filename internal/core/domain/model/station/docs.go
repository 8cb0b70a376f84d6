// Package station models physical work cells and their admission counter.
//
// A station admits at most Capacity concurrent units of work. Admit and Release are the
// only operations that change CurrentLoad; profile edits never touch it.
package station
