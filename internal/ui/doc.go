// Package ui provides the color themes shared by the CLI and the dashboard.
// Colors are off when NO_COLOR is set or --no-color is given.
package ui
