// Package roadfile reads road networks with route requests from the
// sectioned text format and writes solved results back as text.
//
// Input:
//
//	[CITIES]
//	1: Moscow
//	2: Saint Petersburg
//
//	[ROADS]
//	1 - 2: 700, 480, 800          // distance, time, cost
//
//	[REQUESTS]
//	Moscow -> Saint Petersburg | (D,T,C)
//
// Lines are trimmed; blank lines are skipped. A line of the form "[NAME]"
// opens a section; sections other than CITIES, ROADS and REQUESTS are
// skipped silently. Any other content before the first section header is a
// syntax error. Priority codes are Latin D/T/C or Cyrillic Д/В/С.
//
// Repeated city ids keep the first registration. Roads must reference
// cities declared earlier; requests must name declared cities.
//
// Errors:
//
// Every parse failure is a *LineError carrying the 1-based line number and
// wrapping one of ErrSyntax, ErrUnknownCity, core.ErrNodeNotFound,
// core.ErrUnknownCriterion or core.ErrInvalidPriority. Weights are unsigned
// decimal integers; a minus sign is a syntax error.
//
// Output:
//
// Per request four lines, labelled DISTANCE, TIME, COST and COMPROMISE:
//
//	DISTANCE: Moscow -> Saint Petersburg | distance=700, time=480, cost=800
//	COMPROMISE: no route
//
// with one blank line between consecutive requests and none after the last.
package roadfile
