// Package directedid bit-packs and unpacks the four-field identifier used
// by the U-turn-aware directed STSP solver: (physical vertex id, arrival
// side, departure side, turn). Consumers rely only on Build/ExtractAll;
// the packing scheme itself is an implementation detail.
package directedid
