// Package score computes the suitability score (SS) of a street/driver pair.
//
// The score depends only on the two names:
//
//  1. Keep only the ASCII letters of the street name.
//  2. Even letter count → vowels × 1.5; odd letter count → consonants × 1.0.
//  3. If the raw lengths of the two names share a common factor greater
//     than 1, multiply by 1.5.
//
// Example:
//
//	score.Score("Elm", "Al")   // "Elm": 3 letters (odd) → 2 consonants → 2.0; gcd(3,2)=1 → 2.0
//	score.Score("ab", "cd")    // 2 letters (even) → 1 vowel × 1.5; gcd(2,2)=2 → 2.25
//
// Scorer carries custom multipliers (Weights); the package-level Score uses
// DefaultWeights. All functions are pure and deterministic.
package score
