// Package trash computes where items go inside the trash directory.
//
// IDSource hands out timestamp ids (YYYYMMDDHHMMSS, local time) that never go
// backwards. Namer turns an item path plus an id into a collision-free path
// inside the trash directory: the bare file name when it is free, otherwise
// stem.ID.ext, and stem.ID-N.ext when even that is taken.
package trash
