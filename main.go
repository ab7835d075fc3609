// artistinfo is a HTTP service which returns a summary for a music artist: the
// introduction of their English Wikipedia article and the cover art of their
// albums. Artists are identified by their MusicBrainz IDs.
//
// This file is only here to make installing with go install easier. All of the
// source is in the src directory.
package main

import "github.com/ironsmile/artistinfo/src"

func main() {
	src.Main()
}
