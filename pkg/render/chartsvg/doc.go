// Package chartsvg assembles SVG markup from positioned chart
// geometry. It draws shapes only; colors are left to stylesheet rules
// keyed on the stable class indices each element carries.
package chartsvg
