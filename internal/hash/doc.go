// Package hash provides the CRC32-Castagnoli checksum used to tell complete
// file contents apart from torn ones in tests.
//
//	sum := hash.CRC32C(data)
package hash
