package encoding

// ChecksumLen is the rendered width of a CheckSum value.
const ChecksumLen = 3

// CalculateChecksum returns the sum of all bytes in data modulo 256.
func CalculateChecksum(data []byte) int {
	var sum uint32
	for _, b := range data {
		sum += uint32(b)
	}

	return int(sum % 256)
}

// FormatChecksum renders sum as the three digit, zero padded CheckSum value.
func FormatChecksum(sum int) string {
	var buf [ChecksumLen]byte

	return string(AppendChecksum(buf[:0], sum))
}

// AppendChecksum appends the three digit form of sum to dst. Values outside [0, 255]
// are reduced modulo 256 first.
func AppendChecksum(dst []byte, sum int) []byte {
	sum %= 256
	if sum < 0 {
		sum += 256
	}

	return append(dst, byte('0'+sum/100), byte('0'+sum/10%10), byte('0'+sum%10))
}

// ParseChecksum parses a rendered CheckSum value. It accepts exactly three digits.
func ParseChecksum(b []byte) (int, bool) {
	if len(b) != ChecksumLen {
		return 0, false
	}

	n, ok := ParseUint(b)
	if !ok || n > 255 {
		return 0, false
	}

	return n, true
}
