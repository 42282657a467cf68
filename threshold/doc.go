// Package threshold runs the Monte-Carlo threshold estimation described in
// spec.md §4.E: for each (distance, physical error rate) point in a
// configured grid, sample independent bit-flip errors, decode them with
// unionfind, and report the fraction that end in logical failure.
//
// Config mirrors the shape original_source's toric_threshold_plotting.py
// hardcodes as local variables (dimension list, probability grid, trial
// count) as a loadable, functional-options-configurable struct, in the
// style of builder.BuilderOption.
//
// The logical-operator oracle original_source leaves unimplemented
// (spec.md §9 Open Question 1) is LogicalOracle: a trial is a logical
// failure if the residual syndrome is non-zero, or if the accumulated
// correction error has odd overlap with a logical operator even though the
// residual syndrome vanished.
package threshold
