package pack

// typeTable maps the first byte of an encoded value to its logical Type in
// O(1). 0xc1 is reserved by the format (never emitted by an encoder) and is
// classified as TypeExt; decoders must treat it conservatively.
var typeTable = [256]Type{
	/* 0x00 */ TypeUint,
	/* 0x01 */ TypeUint,
	/* 0x02 */ TypeUint,
	/* 0x03 */ TypeUint,
	/* 0x04 */ TypeUint,
	/* 0x05 */ TypeUint,
	/* 0x06 */ TypeUint,
	/* 0x07 */ TypeUint,
	/* 0x08 */ TypeUint,
	/* 0x09 */ TypeUint,
	/* 0x0a */ TypeUint,
	/* 0x0b */ TypeUint,
	/* 0x0c */ TypeUint,
	/* 0x0d */ TypeUint,
	/* 0x0e */ TypeUint,
	/* 0x0f */ TypeUint,
	/* 0x10 */ TypeUint,
	/* 0x11 */ TypeUint,
	/* 0x12 */ TypeUint,
	/* 0x13 */ TypeUint,
	/* 0x14 */ TypeUint,
	/* 0x15 */ TypeUint,
	/* 0x16 */ TypeUint,
	/* 0x17 */ TypeUint,
	/* 0x18 */ TypeUint,
	/* 0x19 */ TypeUint,
	/* 0x1a */ TypeUint,
	/* 0x1b */ TypeUint,
	/* 0x1c */ TypeUint,
	/* 0x1d */ TypeUint,
	/* 0x1e */ TypeUint,
	/* 0x1f */ TypeUint,
	/* 0x20 */ TypeUint,
	/* 0x21 */ TypeUint,
	/* 0x22 */ TypeUint,
	/* 0x23 */ TypeUint,
	/* 0x24 */ TypeUint,
	/* 0x25 */ TypeUint,
	/* 0x26 */ TypeUint,
	/* 0x27 */ TypeUint,
	/* 0x28 */ TypeUint,
	/* 0x29 */ TypeUint,
	/* 0x2a */ TypeUint,
	/* 0x2b */ TypeUint,
	/* 0x2c */ TypeUint,
	/* 0x2d */ TypeUint,
	/* 0x2e */ TypeUint,
	/* 0x2f */ TypeUint,
	/* 0x30 */ TypeUint,
	/* 0x31 */ TypeUint,
	/* 0x32 */ TypeUint,
	/* 0x33 */ TypeUint,
	/* 0x34 */ TypeUint,
	/* 0x35 */ TypeUint,
	/* 0x36 */ TypeUint,
	/* 0x37 */ TypeUint,
	/* 0x38 */ TypeUint,
	/* 0x39 */ TypeUint,
	/* 0x3a */ TypeUint,
	/* 0x3b */ TypeUint,
	/* 0x3c */ TypeUint,
	/* 0x3d */ TypeUint,
	/* 0x3e */ TypeUint,
	/* 0x3f */ TypeUint,
	/* 0x40 */ TypeUint,
	/* 0x41 */ TypeUint,
	/* 0x42 */ TypeUint,
	/* 0x43 */ TypeUint,
	/* 0x44 */ TypeUint,
	/* 0x45 */ TypeUint,
	/* 0x46 */ TypeUint,
	/* 0x47 */ TypeUint,
	/* 0x48 */ TypeUint,
	/* 0x49 */ TypeUint,
	/* 0x4a */ TypeUint,
	/* 0x4b */ TypeUint,
	/* 0x4c */ TypeUint,
	/* 0x4d */ TypeUint,
	/* 0x4e */ TypeUint,
	/* 0x4f */ TypeUint,
	/* 0x50 */ TypeUint,
	/* 0x51 */ TypeUint,
	/* 0x52 */ TypeUint,
	/* 0x53 */ TypeUint,
	/* 0x54 */ TypeUint,
	/* 0x55 */ TypeUint,
	/* 0x56 */ TypeUint,
	/* 0x57 */ TypeUint,
	/* 0x58 */ TypeUint,
	/* 0x59 */ TypeUint,
	/* 0x5a */ TypeUint,
	/* 0x5b */ TypeUint,
	/* 0x5c */ TypeUint,
	/* 0x5d */ TypeUint,
	/* 0x5e */ TypeUint,
	/* 0x5f */ TypeUint,
	/* 0x60 */ TypeUint,
	/* 0x61 */ TypeUint,
	/* 0x62 */ TypeUint,
	/* 0x63 */ TypeUint,
	/* 0x64 */ TypeUint,
	/* 0x65 */ TypeUint,
	/* 0x66 */ TypeUint,
	/* 0x67 */ TypeUint,
	/* 0x68 */ TypeUint,
	/* 0x69 */ TypeUint,
	/* 0x6a */ TypeUint,
	/* 0x6b */ TypeUint,
	/* 0x6c */ TypeUint,
	/* 0x6d */ TypeUint,
	/* 0x6e */ TypeUint,
	/* 0x6f */ TypeUint,
	/* 0x70 */ TypeUint,
	/* 0x71 */ TypeUint,
	/* 0x72 */ TypeUint,
	/* 0x73 */ TypeUint,
	/* 0x74 */ TypeUint,
	/* 0x75 */ TypeUint,
	/* 0x76 */ TypeUint,
	/* 0x77 */ TypeUint,
	/* 0x78 */ TypeUint,
	/* 0x79 */ TypeUint,
	/* 0x7a */ TypeUint,
	/* 0x7b */ TypeUint,
	/* 0x7c */ TypeUint,
	/* 0x7d */ TypeUint,
	/* 0x7e */ TypeUint,
	/* 0x7f */ TypeUint,
	/* 0x80 */ TypeMap,
	/* 0x81 */ TypeMap,
	/* 0x82 */ TypeMap,
	/* 0x83 */ TypeMap,
	/* 0x84 */ TypeMap,
	/* 0x85 */ TypeMap,
	/* 0x86 */ TypeMap,
	/* 0x87 */ TypeMap,
	/* 0x88 */ TypeMap,
	/* 0x89 */ TypeMap,
	/* 0x8a */ TypeMap,
	/* 0x8b */ TypeMap,
	/* 0x8c */ TypeMap,
	/* 0x8d */ TypeMap,
	/* 0x8e */ TypeMap,
	/* 0x8f */ TypeMap,
	/* 0x90 */ TypeArray,
	/* 0x91 */ TypeArray,
	/* 0x92 */ TypeArray,
	/* 0x93 */ TypeArray,
	/* 0x94 */ TypeArray,
	/* 0x95 */ TypeArray,
	/* 0x96 */ TypeArray,
	/* 0x97 */ TypeArray,
	/* 0x98 */ TypeArray,
	/* 0x99 */ TypeArray,
	/* 0x9a */ TypeArray,
	/* 0x9b */ TypeArray,
	/* 0x9c */ TypeArray,
	/* 0x9d */ TypeArray,
	/* 0x9e */ TypeArray,
	/* 0x9f */ TypeArray,
	/* 0xa0 */ TypeStr,
	/* 0xa1 */ TypeStr,
	/* 0xa2 */ TypeStr,
	/* 0xa3 */ TypeStr,
	/* 0xa4 */ TypeStr,
	/* 0xa5 */ TypeStr,
	/* 0xa6 */ TypeStr,
	/* 0xa7 */ TypeStr,
	/* 0xa8 */ TypeStr,
	/* 0xa9 */ TypeStr,
	/* 0xaa */ TypeStr,
	/* 0xab */ TypeStr,
	/* 0xac */ TypeStr,
	/* 0xad */ TypeStr,
	/* 0xae */ TypeStr,
	/* 0xaf */ TypeStr,
	/* 0xb0 */ TypeStr,
	/* 0xb1 */ TypeStr,
	/* 0xb2 */ TypeStr,
	/* 0xb3 */ TypeStr,
	/* 0xb4 */ TypeStr,
	/* 0xb5 */ TypeStr,
	/* 0xb6 */ TypeStr,
	/* 0xb7 */ TypeStr,
	/* 0xb8 */ TypeStr,
	/* 0xb9 */ TypeStr,
	/* 0xba */ TypeStr,
	/* 0xbb */ TypeStr,
	/* 0xbc */ TypeStr,
	/* 0xbd */ TypeStr,
	/* 0xbe */ TypeStr,
	/* 0xbf */ TypeStr,
	/* 0xc0 */ TypeNil,
	/* 0xc1 */ TypeExt,
	/* 0xc2 */ TypeBool,
	/* 0xc3 */ TypeBool,
	/* 0xc4 */ TypeBin,
	/* 0xc5 */ TypeBin,
	/* 0xc6 */ TypeBin,
	/* 0xc7 */ TypeExt,
	/* 0xc8 */ TypeExt,
	/* 0xc9 */ TypeExt,
	/* 0xca */ TypeFloat,
	/* 0xcb */ TypeDouble,
	/* 0xcc */ TypeUint,
	/* 0xcd */ TypeUint,
	/* 0xce */ TypeUint,
	/* 0xcf */ TypeUint,
	/* 0xd0 */ TypeInt,
	/* 0xd1 */ TypeInt,
	/* 0xd2 */ TypeInt,
	/* 0xd3 */ TypeInt,
	/* 0xd4 */ TypeExt,
	/* 0xd5 */ TypeExt,
	/* 0xd6 */ TypeExt,
	/* 0xd7 */ TypeExt,
	/* 0xd8 */ TypeExt,
	/* 0xd9 */ TypeStr,
	/* 0xda */ TypeStr,
	/* 0xdb */ TypeStr,
	/* 0xdc */ TypeArray,
	/* 0xdd */ TypeArray,
	/* 0xde */ TypeMap,
	/* 0xdf */ TypeMap,
	/* 0xe0 */ TypeInt,
	/* 0xe1 */ TypeInt,
	/* 0xe2 */ TypeInt,
	/* 0xe3 */ TypeInt,
	/* 0xe4 */ TypeInt,
	/* 0xe5 */ TypeInt,
	/* 0xe6 */ TypeInt,
	/* 0xe7 */ TypeInt,
	/* 0xe8 */ TypeInt,
	/* 0xe9 */ TypeInt,
	/* 0xea */ TypeInt,
	/* 0xeb */ TypeInt,
	/* 0xec */ TypeInt,
	/* 0xed */ TypeInt,
	/* 0xee */ TypeInt,
	/* 0xef */ TypeInt,
	/* 0xf0 */ TypeInt,
	/* 0xf1 */ TypeInt,
	/* 0xf2 */ TypeInt,
	/* 0xf3 */ TypeInt,
	/* 0xf4 */ TypeInt,
	/* 0xf5 */ TypeInt,
	/* 0xf6 */ TypeInt,
	/* 0xf7 */ TypeInt,
	/* 0xf8 */ TypeInt,
	/* 0xf9 */ TypeInt,
	/* 0xfa */ TypeInt,
	/* 0xfb */ TypeInt,
	/* 0xfc */ TypeInt,
	/* 0xfd */ TypeInt,
	/* 0xfe */ TypeInt,
	/* 0xff */ TypeInt,
}

// Parser-hint sentinel family. hint values are stored as int8: a
// non-negative hint is a fixed trailing-byte count to skip; a small
// negative hint in (hintSentinel, 0) encodes a fix-array/fix-map child
// count; the remaining sentinel values name a variable-length family
// handled by a switch on the hint value in Next and Check.
const (
	hintSentinel = -32

	hintLen8  = hintSentinel     // str8 or bin8: read a uint8 length, then skip that many bytes
	hintLen16 = hintSentinel - 1 // str16 or bin16: read a uint16 length
	hintLen32 = hintSentinel - 2 // str32 or bin32: read a uint32 length

	hintArray16 = hintSentinel - 3
	hintArray32 = hintSentinel - 4

	hintMap16 = hintSentinel - 5
	hintMap32 = hintSentinel - 6

	hintExt8  = hintSentinel - 7
	hintExt16 = hintSentinel - 8
	hintExt32 = hintSentinel - 9
)

// hintTable gives the skip cost for the first byte of an encoded value. See
// the hint* sentinel constants above for how to interpret a negative entry.
var hintTable = [256]int8{
	/* 0x00 */ 0,
	/* 0x01 */ 0,
	/* 0x02 */ 0,
	/* 0x03 */ 0,
	/* 0x04 */ 0,
	/* 0x05 */ 0,
	/* 0x06 */ 0,
	/* 0x07 */ 0,
	/* 0x08 */ 0,
	/* 0x09 */ 0,
	/* 0x0a */ 0,
	/* 0x0b */ 0,
	/* 0x0c */ 0,
	/* 0x0d */ 0,
	/* 0x0e */ 0,
	/* 0x0f */ 0,
	/* 0x10 */ 0,
	/* 0x11 */ 0,
	/* 0x12 */ 0,
	/* 0x13 */ 0,
	/* 0x14 */ 0,
	/* 0x15 */ 0,
	/* 0x16 */ 0,
	/* 0x17 */ 0,
	/* 0x18 */ 0,
	/* 0x19 */ 0,
	/* 0x1a */ 0,
	/* 0x1b */ 0,
	/* 0x1c */ 0,
	/* 0x1d */ 0,
	/* 0x1e */ 0,
	/* 0x1f */ 0,
	/* 0x20 */ 0,
	/* 0x21 */ 0,
	/* 0x22 */ 0,
	/* 0x23 */ 0,
	/* 0x24 */ 0,
	/* 0x25 */ 0,
	/* 0x26 */ 0,
	/* 0x27 */ 0,
	/* 0x28 */ 0,
	/* 0x29 */ 0,
	/* 0x2a */ 0,
	/* 0x2b */ 0,
	/* 0x2c */ 0,
	/* 0x2d */ 0,
	/* 0x2e */ 0,
	/* 0x2f */ 0,
	/* 0x30 */ 0,
	/* 0x31 */ 0,
	/* 0x32 */ 0,
	/* 0x33 */ 0,
	/* 0x34 */ 0,
	/* 0x35 */ 0,
	/* 0x36 */ 0,
	/* 0x37 */ 0,
	/* 0x38 */ 0,
	/* 0x39 */ 0,
	/* 0x3a */ 0,
	/* 0x3b */ 0,
	/* 0x3c */ 0,
	/* 0x3d */ 0,
	/* 0x3e */ 0,
	/* 0x3f */ 0,
	/* 0x40 */ 0,
	/* 0x41 */ 0,
	/* 0x42 */ 0,
	/* 0x43 */ 0,
	/* 0x44 */ 0,
	/* 0x45 */ 0,
	/* 0x46 */ 0,
	/* 0x47 */ 0,
	/* 0x48 */ 0,
	/* 0x49 */ 0,
	/* 0x4a */ 0,
	/* 0x4b */ 0,
	/* 0x4c */ 0,
	/* 0x4d */ 0,
	/* 0x4e */ 0,
	/* 0x4f */ 0,
	/* 0x50 */ 0,
	/* 0x51 */ 0,
	/* 0x52 */ 0,
	/* 0x53 */ 0,
	/* 0x54 */ 0,
	/* 0x55 */ 0,
	/* 0x56 */ 0,
	/* 0x57 */ 0,
	/* 0x58 */ 0,
	/* 0x59 */ 0,
	/* 0x5a */ 0,
	/* 0x5b */ 0,
	/* 0x5c */ 0,
	/* 0x5d */ 0,
	/* 0x5e */ 0,
	/* 0x5f */ 0,
	/* 0x60 */ 0,
	/* 0x61 */ 0,
	/* 0x62 */ 0,
	/* 0x63 */ 0,
	/* 0x64 */ 0,
	/* 0x65 */ 0,
	/* 0x66 */ 0,
	/* 0x67 */ 0,
	/* 0x68 */ 0,
	/* 0x69 */ 0,
	/* 0x6a */ 0,
	/* 0x6b */ 0,
	/* 0x6c */ 0,
	/* 0x6d */ 0,
	/* 0x6e */ 0,
	/* 0x6f */ 0,
	/* 0x70 */ 0,
	/* 0x71 */ 0,
	/* 0x72 */ 0,
	/* 0x73 */ 0,
	/* 0x74 */ 0,
	/* 0x75 */ 0,
	/* 0x76 */ 0,
	/* 0x77 */ 0,
	/* 0x78 */ 0,
	/* 0x79 */ 0,
	/* 0x7a */ 0,
	/* 0x7b */ 0,
	/* 0x7c */ 0,
	/* 0x7d */ 0,
	/* 0x7e */ 0,
	/* 0x7f */ 0,
	/* 0x80 */ 0,
	/* 0x81 */ -2,
	/* 0x82 */ -4,
	/* 0x83 */ -6,
	/* 0x84 */ -8,
	/* 0x85 */ -10,
	/* 0x86 */ -12,
	/* 0x87 */ -14,
	/* 0x88 */ -16,
	/* 0x89 */ -18,
	/* 0x8a */ -20,
	/* 0x8b */ -22,
	/* 0x8c */ -24,
	/* 0x8d */ -26,
	/* 0x8e */ -28,
	/* 0x8f */ -30,
	/* 0x90 */ 0,
	/* 0x91 */ -1,
	/* 0x92 */ -2,
	/* 0x93 */ -3,
	/* 0x94 */ -4,
	/* 0x95 */ -5,
	/* 0x96 */ -6,
	/* 0x97 */ -7,
	/* 0x98 */ -8,
	/* 0x99 */ -9,
	/* 0x9a */ -10,
	/* 0x9b */ -11,
	/* 0x9c */ -12,
	/* 0x9d */ -13,
	/* 0x9e */ -14,
	/* 0x9f */ -15,
	/* 0xa0 */ 0,
	/* 0xa1 */ 1,
	/* 0xa2 */ 2,
	/* 0xa3 */ 3,
	/* 0xa4 */ 4,
	/* 0xa5 */ 5,
	/* 0xa6 */ 6,
	/* 0xa7 */ 7,
	/* 0xa8 */ 8,
	/* 0xa9 */ 9,
	/* 0xaa */ 10,
	/* 0xab */ 11,
	/* 0xac */ 12,
	/* 0xad */ 13,
	/* 0xae */ 14,
	/* 0xaf */ 15,
	/* 0xb0 */ 16,
	/* 0xb1 */ 17,
	/* 0xb2 */ 18,
	/* 0xb3 */ 19,
	/* 0xb4 */ 20,
	/* 0xb5 */ 21,
	/* 0xb6 */ 22,
	/* 0xb7 */ 23,
	/* 0xb8 */ 24,
	/* 0xb9 */ 25,
	/* 0xba */ 26,
	/* 0xbb */ 27,
	/* 0xbc */ 28,
	/* 0xbd */ 29,
	/* 0xbe */ 30,
	/* 0xbf */ 31,
	/* 0xc0 */ 0,
	/* 0xc1 */ 0,
	/* 0xc2 */ 0,
	/* 0xc3 */ 0,
	/* 0xc4 */ hintLen8,
	/* 0xc5 */ hintLen16,
	/* 0xc6 */ hintLen32,
	/* 0xc7 */ hintExt8,
	/* 0xc8 */ hintExt16,
	/* 0xc9 */ hintExt32,
	/* 0xca */ 4,
	/* 0xcb */ 8,
	/* 0xcc */ 1,
	/* 0xcd */ 2,
	/* 0xce */ 4,
	/* 0xcf */ 8,
	/* 0xd0 */ 1,
	/* 0xd1 */ 2,
	/* 0xd2 */ 4,
	/* 0xd3 */ 8,
	/* 0xd4 */ 2,
	/* 0xd5 */ 3,
	/* 0xd6 */ 5,
	/* 0xd7 */ 9,
	/* 0xd8 */ 17,
	/* 0xd9 */ hintLen8,
	/* 0xda */ hintLen16,
	/* 0xdb */ hintLen32,
	/* 0xdc */ hintArray16,
	/* 0xdd */ hintArray32,
	/* 0xde */ hintMap16,
	/* 0xdf */ hintMap32,
	/* 0xe0 */ 0,
	/* 0xe1 */ 0,
	/* 0xe2 */ 0,
	/* 0xe3 */ 0,
	/* 0xe4 */ 0,
	/* 0xe5 */ 0,
	/* 0xe6 */ 0,
	/* 0xe7 */ 0,
	/* 0xe8 */ 0,
	/* 0xe9 */ 0,
	/* 0xea */ 0,
	/* 0xeb */ 0,
	/* 0xec */ 0,
	/* 0xed */ 0,
	/* 0xee */ 0,
	/* 0xef */ 0,
	/* 0xf0 */ 0,
	/* 0xf1 */ 0,
	/* 0xf2 */ 0,
	/* 0xf3 */ 0,
	/* 0xf4 */ 0,
	/* 0xf5 */ 0,
	/* 0xf6 */ 0,
	/* 0xf7 */ 0,
	/* 0xf8 */ 0,
	/* 0xf9 */ 0,
	/* 0xfa */ 0,
	/* 0xfb */ 0,
	/* 0xfc */ 0,
	/* 0xfd */ 0,
	/* 0xfe */ 0,
	/* 0xff */ 0,
}

// escapeTable holds the JSON escape sequence for each control byte and for
// '"', '/', '\\' below 0x80. An empty entry means the byte is printed as-is.
var escapeTable = [128]string{
	/* 0x00 */ "\\u0000",
	/* 0x01 */ "\\u0001",
	/* 0x02 */ "\\u0002",
	/* 0x03 */ "\\u0003",
	/* 0x04 */ "\\u0004",
	/* 0x05 */ "\\u0005",
	/* 0x06 */ "\\u0006",
	/* 0x07 */ "\\u0007",
	/* 0x08 */ "\\b",
	/* 0x09 */ "\\t",
	/* 0x0a */ "\\n",
	/* 0x0b */ "\\u000b",
	/* 0x0c */ "\\f",
	/* 0x0d */ "\\r",
	/* 0x0e */ "\\u000e",
	/* 0x0f */ "\\u000f",
	/* 0x10 */ "\\u0010",
	/* 0x11 */ "\\u0011",
	/* 0x12 */ "\\u0012",
	/* 0x13 */ "\\u0013",
	/* 0x14 */ "\\u0014",
	/* 0x15 */ "\\u0015",
	/* 0x16 */ "\\u0016",
	/* 0x17 */ "\\u0017",
	/* 0x18 */ "\\u0018",
	/* 0x19 */ "\\u0019",
	/* 0x1a */ "\\u001a",
	/* 0x1b */ "\\u001b",
	/* 0x1c */ "\\u001c",
	/* 0x1d */ "\\u001d",
	/* 0x1e */ "\\u001e",
	/* 0x1f */ "\\u001f",
	/* 0x20 */ "",
	/* 0x21 */ "",
	/* 0x22 */ "\\\"",
	/* 0x23 */ "",
	/* 0x24 */ "",
	/* 0x25 */ "",
	/* 0x26 */ "",
	/* 0x27 */ "",
	/* 0x28 */ "",
	/* 0x29 */ "",
	/* 0x2a */ "",
	/* 0x2b */ "",
	/* 0x2c */ "",
	/* 0x2d */ "",
	/* 0x2e */ "",
	/* 0x2f */ "\\/",
	/* 0x30 */ "",
	/* 0x31 */ "",
	/* 0x32 */ "",
	/* 0x33 */ "",
	/* 0x34 */ "",
	/* 0x35 */ "",
	/* 0x36 */ "",
	/* 0x37 */ "",
	/* 0x38 */ "",
	/* 0x39 */ "",
	/* 0x3a */ "",
	/* 0x3b */ "",
	/* 0x3c */ "",
	/* 0x3d */ "",
	/* 0x3e */ "",
	/* 0x3f */ "",
	/* 0x40 */ "",
	/* 0x41 */ "",
	/* 0x42 */ "",
	/* 0x43 */ "",
	/* 0x44 */ "",
	/* 0x45 */ "",
	/* 0x46 */ "",
	/* 0x47 */ "",
	/* 0x48 */ "",
	/* 0x49 */ "",
	/* 0x4a */ "",
	/* 0x4b */ "",
	/* 0x4c */ "",
	/* 0x4d */ "",
	/* 0x4e */ "",
	/* 0x4f */ "",
	/* 0x50 */ "",
	/* 0x51 */ "",
	/* 0x52 */ "",
	/* 0x53 */ "",
	/* 0x54 */ "",
	/* 0x55 */ "",
	/* 0x56 */ "",
	/* 0x57 */ "",
	/* 0x58 */ "",
	/* 0x59 */ "",
	/* 0x5a */ "",
	/* 0x5b */ "",
	/* 0x5c */ "\\\\",
	/* 0x5d */ "",
	/* 0x5e */ "",
	/* 0x5f */ "",
	/* 0x60 */ "",
	/* 0x61 */ "",
	/* 0x62 */ "",
	/* 0x63 */ "",
	/* 0x64 */ "",
	/* 0x65 */ "",
	/* 0x66 */ "",
	/* 0x67 */ "",
	/* 0x68 */ "",
	/* 0x69 */ "",
	/* 0x6a */ "",
	/* 0x6b */ "",
	/* 0x6c */ "",
	/* 0x6d */ "",
	/* 0x6e */ "",
	/* 0x6f */ "",
	/* 0x70 */ "",
	/* 0x71 */ "",
	/* 0x72 */ "",
	/* 0x73 */ "",
	/* 0x74 */ "",
	/* 0x75 */ "",
	/* 0x76 */ "",
	/* 0x77 */ "",
	/* 0x78 */ "",
	/* 0x79 */ "",
	/* 0x7a */ "",
	/* 0x7b */ "",
	/* 0x7c */ "",
	/* 0x7d */ "",
	/* 0x7e */ "",
	/* 0x7f */ "\\u007f",
}
