// Package aggregator derives the figures shown on the dashboard, budget and
// analytics screens from snapshot lists of wallets, categories, transactions
// and budgets.
//
// Every function is pure: inputs are never mutated and results hold no
// references back into them. Nothing here returns an error. Malformed
// decimal strings count as zero, nil lists are treated as empty and any
// percentage with a zero denominator is zero.
package aggregator
