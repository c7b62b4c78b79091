package pack

// Wire format marker bytes. Names follow the family each byte introduces;
// fix-family bases are combined with a small integer via bitwise OR.
const (
	markerPosFixintMax = 0x7f
	markerFixmapBase   = 0x80
	markerFixarrayBase = 0x90
	markerFixstrBase   = 0xa0
	markerFixstrMax    = 0xbf

	markerNil    = 0xc0
	markerFalse  = 0xc2
	markerTrue   = 0xc3
	markerBin8   = 0xc4
	markerBin16  = 0xc5
	markerBin32  = 0xc6
	markerExt8   = 0xc7
	markerExt16  = 0xc8
	markerExt32  = 0xc9
	markerFloat  = 0xca
	markerDouble = 0xcb
	markerUint8  = 0xcc
	markerUint16 = 0xcd
	markerUint32 = 0xce
	markerUint64 = 0xcf
	markerInt8   = 0xd0
	markerInt16  = 0xd1
	markerInt32  = 0xd2
	markerInt64  = 0xd3

	markerFixext1  = 0xd4
	markerFixext2  = 0xd5
	markerFixext4  = 0xd6
	markerFixext8  = 0xd7
	markerFixext16 = 0xd8

	markerStr8  = 0xd9
	markerStr16 = 0xda
	markerStr32 = 0xdb

	markerArray16 = 0xdc
	markerArray32 = 0xdd

	markerMap16 = 0xde
	markerMap32 = 0xdf

	markerNegFixintBase = 0xe0
)
