// Package zodiac holds the fixed reference tables the interpretation engine
// reads from: planets, signs, houses, sign lordship, dignities and nakshatras.
//
// Every table is a package-level array initialized at compile time and never
// written to. Lookups return copies, so callers cannot mutate shared state.
//
// Enumeration order matters. Planets are always iterated as
// Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu and signs as
// Aries through Pisces; output ordering elsewhere in the engine relies on it.
package zodiac
