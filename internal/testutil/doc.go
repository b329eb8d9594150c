// Package testutil contains fixtures shared by package tests: ready-made
// tools and a recording tool used to observe dispatch. They are not intended
// for production usage.
package testutil
