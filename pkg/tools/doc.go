// Package tools exposes floorplan editing as discrete, text-in/text-out
// actions for agents and scripts.
//
// Every [Toolkit] method takes the current document text, parses it, runs
// one editing session and returns a [Result] holding the new text. An
// action that does not apply to the document (unknown room, variable-sized
// room resized, ...) is not an error: the result carries the unchanged text,
// Applied == false and a message in Errors. Errors are returned only for
// unparsable input and internal failures.
//
// [Toolkit.Run] executes a [Batch] of steps, typically decoded from TOML with
// [ParseBatch]. Each step sees the text produced by the previous one; a step
// that fails is recorded and the batch continues.
package tools
