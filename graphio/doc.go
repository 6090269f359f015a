// SPDX-License-Identifier: MIT
// Package graphio reads attributed graphs from the plain-text node and edge
// files used by graphimpute and writes imputed features back out.
//
// Node file, one node per line:
//
//	<id>\t<f1>,<f2>,...\t<label>
//
// A feature written as # (or '#') is missing. Spaces after commas are
// allowed and the label column may be omitted (label 0).
//
// Edge file, one undirected edge per line:
//
//	<a> <b>
//
// Blank lines and lines starting with // are ignored. Malformed lines are
// skipped and logged at Warn; they never abort the load.
package graphio
