// Package ordinal formats non-negative integers with their English ordinal
// suffix: 1st, 2nd, 3rd, 4th, 11th, 21st, 112th.
//
// Numbers ending in 11, 12 or 13 always take "th". Negative numbers have no
// ordinal form and are rejected with ErrNegativeInteger.
package ordinal
