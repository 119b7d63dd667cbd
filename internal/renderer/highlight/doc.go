// Package highlight classifies the text of a line into coloured spans.
//
// A Classifier is a pure function of one line. The renderer asks it for
// spans only when a panel has highlighting enabled, and the editor never
// depends on its output. Two classifiers are provided: Chroma, backed by
// the chroma lexer for the panel's file type, and Keywords, a small word
// matcher driven by configuration.
package highlight
