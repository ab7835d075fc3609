/*
Package upstream is responsible for getting everything known about an artist from
the internet.

It finds the artist's release groups and a link to their Wikipedia article using the
MusicBrainz web service. When MusicBrainz only knows the artist's Wikidata entity the
article title is looked up in Wikidata. The article introduction then comes from the
English Wikipedia. Cover images for the release groups are searched for in the Cover
Art Archive, all of them at the same time.

The following APIs are used to achieve this packages' objective:

  - MusicBrainz API: https://musicbrainz.org/doc/MusicBrainz_API
  - Wikidata API: https://www.wikidata.org/w/api.php
  - Wikipedia API: https://en.wikipedia.org/w/api.php
  - Cover Art Archive: https://musicbrainz.org/doc/Cover_Art_Archive/API
*/
package upstream
