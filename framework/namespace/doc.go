// Package namespace builds the tree that nox registers objects into.
//
// A namespace path is a dot-separated list of segments such as
// "app.views.Home". Walk creates the containers app and app.views on demand
// and hands back the slot for Home; Set stores the object there.
//
// A segment is rejected when it is empty, starts with a digit or whitespace,
// or reads as a number ("+1", "-2e3", "Infinity").
package namespace
