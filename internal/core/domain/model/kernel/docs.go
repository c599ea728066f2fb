// Package kernel provides core domain primitives shared by the order model.
//
// The package includes:
//   - Money: an exact decimal amount with two fraction digits, bounded by the
//     decimal(10,2) columns that store it
//
// Money never goes through float64. All arithmetic is done on shopspring/decimal
// values so sums of line values carry no rounding drift.
package kernel
