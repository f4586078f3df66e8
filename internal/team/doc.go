// Package team provides the normalized records produced by the extraction engine.
//
// A Team carries its front-office metadata, its schedule as a list of Match
// values, its roster keyed by jersey number and its team statistics. Derived
// fields (match winner, player first and last name) are computed when the
// records are built and never change afterwards.
package team
