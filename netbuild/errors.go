package netbuild

import "errors"

// ErrDisconnected is returned when an endpoint of a coforest edge was not
// reached by dijkstrabasis.Root, so the edge could never be placed on a tree
// path. Root starts a search in every component of the graph, whether or
// not the forest hint touches it.
var ErrDisconnected = errors.New("netbuild: graph has a node unreachable from any hinted root")
