/*
Package randomtext builds character-level Markov models from input text and
uses them to synthesize new text by probabilistic sampling.

A model maps every k-character prefix observed in the training corpus to the
multiset of characters that followed it. Generation seeds the output with a
randomly chosen prefix and then repeatedly samples a successor, sliding the
prefix window forward one character at a time. Sampling is purely empirical:
each recorded successor occurrence is equally likely, with no smoothing or
backoff.

Models live entirely in memory and are never serialized; they are built once,
read-only afterwards, and discarded when the process exits.
*/
package randomtext
