// Package mem packs encoded instructions into a program image, and reads and
// writes the image as a .mem hex listing.
//
// A .mem listing has one line per 4-byte group of the image. Each line is
// eight uppercase hex digits holding the group as a little-endian 32-bit
// word: bytes b3 b2 b1 b0. Words are packed into the image high byte first,
// so a word's bytes appear swapped within a line.
package mem
