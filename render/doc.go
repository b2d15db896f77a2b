// Package render draws grids and search results, either as plain text or
// onto a tcell screen with a step-by-step replay of the search.
//
// Glyphs: '.' free, '#' obstacle, 'S' start, 'G' goal, 'o' visited,
// '@' the cell being expanded, '*' path, 'R' robot.
package render
