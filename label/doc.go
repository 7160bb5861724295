// Package label assigns player-visible labels to the tubes of a puzzle grid.
//
// Apply extracts the tube grid once and walks it column by column, top to
// bottom. Every connectivity group gets a palette slot the first time any of
// its cells is met, and a label the first time one of its ends is met, so the
// assignment depends only on the grid.
//
// Scheme flattens a Labeling row by row into the string the player UI
// decodes: an end cell becomes its label shifted by the offset, every other
// cell the filler. With DefaultAlphabet and DefaultOffset the labels read
// '0', '1', '2', ... in encounter order.
package label
