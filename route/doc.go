// Package route turns predecessor maps into ordered paths and checks
// that a path is walkable on a grid.
package route
