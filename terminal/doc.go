// Package terminal is a tcell front end for the editor
//
// Features:
//   - Mouse and keyboard translation into input events
//   - Cell-resolution drawing of rooms, doors and previews
//   - Status line with mode, selection and the last validation error
//   - Middle-drag and plain wheel pan the viewport
//
// Plan coordinates map to cells through a Viewport; cells are about twice as
// tall as wide, so one row covers TerminalAspect times the units of one column
package terminal
