// Package netbuild builds a representation matrix from a graph and a
// forest hint (C3, spec.md §4.3), and the other direction: recognising
// whether a {0,1} or {-1,0,1} matrix is a network (or conetwork) matrix for
// some graph. Grounded on src/cmr/network.c's orientation/sign propagation
// algorithm and dijkstrabasis's spanning-forest rooting.
package netbuild
