package announcement

// ZstdCodec is the FormatZstd codec. Its Compress/Decompress bodies
// live in zstd_cgo.go (cgo builds, via valyala/gozstd) or zstd_pure.go
// (the default, via klauspost/compress/zstd), the same split the
// teacher uses for its own Zstd compressor.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
