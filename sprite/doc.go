// Package sprite turns exposed wall runs into positioned texture sprites.
//
// A Resolver looks up the material's parts for one side and emits, in order,
// a tiling middle piece and optional left and right end caps. Caps that
// require a corner are emitted only for runs at least MinCapRunWidth wide
// whose matching corner flag is set. Sprites whose image is missing or still
// loading are left out; the next resolve picks them up.
//
// Resolve returns sprites relative to the run start and the wall edge.
// Place converts a wall's runs into absolute plane coordinates.
package sprite
