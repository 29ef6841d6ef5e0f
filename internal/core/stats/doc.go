// Package stats turns a user's check-in history into streaks, completion
// rates, heatmaps and a consistency score.
//
// Every function here is pure: "today" and the query window are passed in
// by the caller, and calendar dates are civil dates at midnight UTC (see
// domain.CivilDate). Weeks start on Monday.
package stats
