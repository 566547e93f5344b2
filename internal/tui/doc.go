// Package tui provides the Terminal User Interface for aocctl.
//
// The TUI is a puzzle console: a sidebar of day pages, the selected page with
// its input and both part answers, and overlays for help, the activity log and
// file upload.
//
// # Architecture
//
// The TUI follows a Model-View-Controller (MVC) pattern:
//
//   - Model (internal/tui/model/): application state. It owns the
//     console.Shell whose sessions hold each page's input and outcomes.
//   - View (internal/tui/view/): renders the header, sidebar, page and
//     overlays, using the shared components and design packages.
//   - Controller (internal/tui/controller/): processes key presses and
//     command results and manages the Bubble Tea program lifecycle.
//
// # Solving
//
// Input changes never block the update loop. The model is the console
// dispatcher: a changed input queues a command that runs both parts and comes
// back as a SolveCompletedMsg, which the controller applies to the session's
// pipeline. Results of superseded inputs are dropped there.
//
// # Input
//
// Input is typed in an inline editor and committed with ctrl+s or esc,
// uploaded through a file picker, or pasted from the system clipboard.
// Uploaded and pasted text is normalized to LF line endings.
//
// # Logging
//
// The TUI consumes the pkg/logging channel and shows entries in the activity
// log overlay (L).
package tui
