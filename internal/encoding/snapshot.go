// Package encoding implements the binary grid snapshot format.
//
// Layout (little endian after the magic):
//
//	magic   [4]byte "ISOV"
//	version uint8
//	length  uint32  edge length of the cube
//	sum     uint64  xxhash64 of the raw block ids
//	plen    uint32  compressed payload length
//	payload []byte  zstd compressed block ids, length^3 bytes raw
package encoding

import (
	"encoding/binary"
	"fmt"
	"io"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

const (
	magic   = "ISOV"
	version = 1
)

// Encode writes the block ids of a cube with the given edge length to w.
func Encode(w io.Writer, length int, ids []byte) error {
	want := length * length * length
	if len(ids) != want {
		return fmt.Errorf("edge length %d needs %d ids, got %d", length, want, len(ids))
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return err
	}
	payload := enc.EncodeAll(ids, nil)
	enc.Close()

	if _, err := w.Write([]byte(magic)); err != nil {
		return err
	}
	for _, v := range []interface{}{
		uint8(version),
		uint32(length),
		xxhash.Sum64(ids),
		uint32(len(payload)),
	} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	_, err = w.Write(payload)
	return err
}

// Decode reads a snapshot from r, returning the edge length & block ids.
func Decode(r io.Reader) (int, []byte, error) {
	head := make([]byte, len(magic))
	if _, err := io.ReadFull(r, head); err != nil {
		return 0, nil, err
	}
	if string(head) != magic {
		return 0, nil, fmt.Errorf("not a grid snapshot (bad magic)")
	}

	var ver uint8
	var length, plen uint32
	var sum uint64

	if err := binary.Read(r, binary.LittleEndian, &ver); err != nil {
		return 0, nil, err
	}
	if ver != version {
		return 0, nil, fmt.Errorf("unsupported snapshot version %d", ver)
	}
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return 0, nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &sum); err != nil {
		return 0, nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &plen); err != nil {
		return 0, nil, err
	}

	payload := make([]byte, plen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, err
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return 0, nil, err
	}
	defer dec.Close()

	ids, err := dec.DecodeAll(payload, nil)
	if err != nil {
		return 0, nil, err
	}

	want := int(length) * int(length) * int(length)
	if len(ids) != want {
		return 0, nil, fmt.Errorf("snapshot holds %d ids, expected %d", len(ids), want)
	}
	if xxhash.Sum64(ids) != sum {
		return 0, nil, fmt.Errorf("snapshot checksum mismatch")
	}

	return int(length), ids, nil
}
