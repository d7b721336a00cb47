// Package crc implements the FIT 16-bit cyclic redundancy check.
//
// FIT files end with a 2-byte CRC computed over the file header and every
// record byte. The algorithm is the FIT protocol's canonical one: a fixed
// 16-entry lookup table applied per nibble, low nibble first. It is
// equivalent to CRC-16/ARC (polynomial 0x8005, reflected, zero init).
package crc

var table = [16]uint16{
	0x0000, 0xCC01, 0xD801, 0x1400, 0xF001, 0x3C00, 0x2800, 0xE401,
	0xA001, 0x6C00, 0x7800, 0xB401, 0x5000, 0x9C01, 0x8801, 0x4400,
}

// Update folds one byte into the running CRC and returns the new value.
func Update(crc uint16, b byte) uint16 {
	// Low nibble first.
	tmp := table[crc&0x0F]
	crc = (crc >> 4) & 0x0FFF
	crc = crc ^ tmp ^ table[b&0x0F]

	// Then the high nibble.
	tmp = table[crc&0x0F]
	crc = (crc >> 4) & 0x0FFF
	crc = crc ^ tmp ^ table[(b>>4)&0x0F]

	return crc
}

// UpdateBytes folds a byte slice into the running CRC and returns the new
// value.
func UpdateBytes(crc uint16, p []byte) uint16 {
	for _, b := range p {
		crc = Update(crc, b)
	}

	return crc
}

// Checksum returns the CRC of p starting from the zero initial value.
func Checksum(p []byte) uint16 {
	return UpdateBytes(0, p)
}
