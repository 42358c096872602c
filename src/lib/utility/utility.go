package utility

import "encoding/binary"

func Concat[T any](arrays ...[]T) []T {
	result := []T{}
	for _, ele := range arrays {
		result = append(result, ele...)
	}
	return result
}

func UintToBytes(u uint64) []byte {
	int_buffer := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(int_buffer, u)
	return int_buffer[:n]
}
