// Package tagedit provides a Bubble Tea component for entering free text
// mixed with removable tag chips picked from a palette.
//
// The component is a thin interaction layer over the content package: every
// key press, mouse click, or host call is mapped to a content.Command, and the
// view is re-rendered from the resulting content.State. Nothing on screen is
// edited in place.
package tagedit
