// Package pack models resource packs: the output targets a font sequence is
// rendered in.
//
// A pack stores textures and font definitions under resource locations
// ([Key]) such as "minecraft:gui/icons.png". Every [Target] lays its files out
// the same way:
//
//	assets/<namespace>/textures/<path>   textures
//	assets/<namespace>/font/<path>.json  font definitions
//
// [WriteAll] replicates one generated texture into every target of a [List],
// and [Source] decodes source textures for drawing.
//
// Targets do no internal locking. Writes to a given target must be
// serialized by the caller.
package pack
