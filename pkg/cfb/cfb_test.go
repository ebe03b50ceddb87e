package cfb

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildMinimalCFB hand-assembles a minimal, spec-valid OLE2 compound file
// with a single storage ("Board6") containing one stream ("Data"), to
// exercise the directory-tree walk without needing a real Altium export on
// disk. Layout: header (sector -1), FAT sector (0), directory sector (1),
// ten data sectors (2-11) holding the stream payload.
func buildMinimalCFB(t *testing.T, payload []byte) []byte {
	t.Helper()
	const sectorSize = 512

	dataSectors := (len(payload) + sectorSize - 1) / sectorSize
	totalSectors := 2 + dataSectors // FAT + directory + data

	buf := make([]byte, headerSize+totalSectors*sectorSize)

	// --- Header ---
	copy(buf[0:8], magic[:])
	binary.LittleEndian.PutUint16(buf[24:26], 0x003E) // minor version
	binary.LittleEndian.PutUint16(buf[26:28], 3)       // major version (v3)
	binary.LittleEndian.PutUint16(buf[28:30], 0xFFFE)  // byte order
	binary.LittleEndian.PutUint16(buf[30:32], 9)        // sector shift: 512
	binary.LittleEndian.PutUint16(buf[32:34], 6)        // mini sector shift: 64
	binary.LittleEndian.PutUint32(buf[44:48], 1)        // number of FAT sectors
	binary.LittleEndian.PutUint32(buf[48:52], 1)        // first directory sector
	binary.LittleEndian.PutUint32(buf[56:60], miniSectorCut)
	binary.LittleEndian.PutUint32(buf[60:64], sectorEndChain) // no MiniFAT
	binary.LittleEndian.PutUint32(buf[64:68], 0)
	binary.LittleEndian.PutUint32(buf[68:72], sectorEndChain) // no extra DIFAT
	binary.LittleEndian.PutUint32(buf[72:76], 0)
	// DIFAT[0] = sector 0 (the FAT sector); rest FREESECT.
	binary.LittleEndian.PutUint32(buf[76:80], 0)
	for i := 1; i < 109; i++ {
		binary.LittleEndian.PutUint32(buf[76+i*4:80+i*4], sectorFree)
	}

	sector := func(n int) []byte {
		off := headerSize + n*sectorSize
		return buf[off : off+sectorSize]
	}

	// --- FAT sector (sector 0) ---
	fat := sector(0)
	for i := range fat {
		fat[i] = 0xFF // default FREESECT pattern (0xFFFFFFFF)
	}
	binary.LittleEndian.PutUint32(fat[0:4], 0xFFFFFFFD)   // sector 0: FAT sector itself
	binary.LittleEndian.PutUint32(fat[4:8], sectorEndChain) // sector 1: directory, one sector
	for i := 0; i < dataSectors; i++ {
		sectorNum := 2 + i
		var next uint32
		if i == dataSectors-1 {
			next = sectorEndChain
		} else {
			next = uint32(sectorNum + 1)
		}
		binary.LittleEndian.PutUint32(fat[sectorNum*4:sectorNum*4+4], next)
	}

	// --- Directory sector (sector 1): root, "Board6" storage, "Data" stream, padding ---
	dir := sector(1)
	writeDirEntry(dir[0:128], "Root Entry", dirRootEntry, noStream, noStream, 1, sectorEndChain, 0)
	writeDirEntry(dir[128:256], "Board6", dirStorage, noStream, noStream, 2, sectorEndChain, 0)
	writeDirEntry(dir[256:384], "Data", dirStream, noStream, noStream, noStream, 2, uint64(len(payload)))
	// dir[384:512] left as the empty fourth entry (all zero => entryType 0).

	// --- Data sectors ---
	written := 0
	for i := 0; i < dataSectors; i++ {
		s := sector(2 + i)
		n := copy(s, payload[written:])
		written += n
	}

	return buf
}

func writeDirEntry(rec []byte, name string, entryType byte, leftSib, rightSib, child, start uint32, size uint64) {
	u16 := make([]byte, 0, 64)
	for _, r := range name {
		u16 = append(u16, byte(r), 0)
	}
	u16 = append(u16, 0, 0) // null terminator
	copy(rec[0:64], u16)
	binary.LittleEndian.PutUint16(rec[64:66], uint16(len(u16)))
	rec[66] = entryType
	binary.LittleEndian.PutUint32(rec[68:72], leftSib)
	binary.LittleEndian.PutUint32(rec[72:76], rightSib)
	binary.LittleEndian.PutUint32(rec[76:80], child)
	binary.LittleEndian.PutUint32(rec[116:120], start)
	binary.LittleEndian.PutUint64(rec[120:128], size)
}

func TestOpenAndReadNestedStream(t *testing.T) {
	payload := make([]byte, 5000)
	for i := range payload {
		payload[i] = byte(i % 251)
	}

	data := buildMinimalCFB(t, payload)
	r, err := Open(data)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if !r.HasStream("Board6/Data") {
		t.Fatalf("HasStream(Board6/Data) = false, want true")
	}
	if r.HasStream("Components6/Data") {
		t.Fatalf("HasStream(Components6/Data) = true, want false (no such storage)")
	}

	got, err := r.ReadStream("Board6/Data")
	if err != nil {
		t.Fatalf("ReadStream: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("stream content mismatch: got %d bytes, want %d", len(got), len(payload))
	}
}

func TestOpenRejectsBadMagic(t *testing.T) {
	data := make([]byte, headerSize)
	if _, err := Open(data); err == nil {
		t.Fatal("Open: want error for bad magic, got nil")
	}
}

func TestDecodeUTF16LE(t *testing.T) {
	// "AB" followed by a NUL terminator, little-endian.
	raw := []byte{'A', 0, 'B', 0, 0, 0}
	if got := DecodeUTF16LE(raw); got != "AB" {
		t.Fatalf("DecodeUTF16LE = %q, want %q", got, "AB")
	}
}
