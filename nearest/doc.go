// SPDX-License-Identifier: MIT

// Package nearest assigns arbitrary query points to the closest service
// center by Euclidean distance.
//
// The center set of a case is small (at most a hundred) and fixed for the
// life of the case, so a linear scan is exact and fast enough; ties go to the
// center listed first. Index copies the centers once and answers many queries
// without further allocation per query.
package nearest
