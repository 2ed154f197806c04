// Package quiz implements the quiz runtime: building sessions from a question
// pool, tracking answers and navigation, running the countdown, scoring a
// finished session and projecting it into a view model.
//
// A Controller owns the single live session and its timer. All mutations go
// through the controller, which serializes user actions and timer ticks.
package quiz
