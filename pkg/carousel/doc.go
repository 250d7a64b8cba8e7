// Package carousel implements the state machine behind the screenshots viewer.
//
// A carousel cycles through a fixed, ordered, non-empty list of items, one
// visible at a time. Its state is split into three cooperating parts:
//
//   - Store holds the active index and the direction of the last move. It is
//     the only place state is written, and it keeps the index inside
//     [0, len(items)) with true modulo arithmetic.
//   - Controller exposes the navigation operations (Advance for the arrow
//     buttons, Select for tabs and dots) and derives the direction of each
//     move from the state observed before the move.
//   - Machine tracks the rendering phase (Idle or Transitioning) so that any
//     renderer can animate the outgoing and incoming items.
//
// Carousel bundles the three behind a mutex for callers that deliver input
// from several goroutines, such as HTTP handlers.
//
// Nothing in this package knows how a frame is drawn. The web page and the
// terminal preview both consume Frame and Slide values and run their own
// interpolation.
package carousel
