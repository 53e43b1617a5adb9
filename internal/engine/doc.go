// Package engine is the navigation and progress core: it walks the global
// wrap-around card sequence across category boundaries, tracks per-category
// viewed sets and favorites, drives autoplay and the voice gate, and
// persists its state through a key-value store. It renders nothing and
// plays nothing itself; presentation and speech plug in at the edges.
package engine
