// Package testutil provides filesystem fixtures shared by package tests.
//
// Helpers fail the test immediately instead of returning errors, so test
// bodies stay focused on behaviour.
package testutil
