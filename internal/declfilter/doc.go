// Package declfilter decides which type declarations the checks look at.
//
// Example functions of test files are documentation: types declared inside
// them illustrate usage and are never registered, so they are skipped. Files
// marked with the standard "Code generated ... DO NOT EDIT." header are skipped
// as well.
package declfilter
