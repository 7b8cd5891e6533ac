package enginecache

import (
	"encoding/binary"
	"io"

	"github.com/go-gl/mathgl/mgl64"
)

func writeU32(w io.Writer, v uint32) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func readU32(r io.Reader) (uint32, error) {
	var v uint32
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

func writeU64(w io.Writer, v uint64) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func readU64(r io.Reader) (uint64, error) {
	var v uint64
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

func writeF32(w io.Writer, v float64) error {
	return binary.Write(w, binary.LittleEndian, float32(v))
}

func readF32(r io.Reader) (float64, error) {
	var v float32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}
	return float64(v), nil
}

func writeFloats(w io.Writer, vs ...float64) error {
	for _, v := range vs {
		if err := writeF32(w, v); err != nil {
			return err
		}
	}
	return nil
}

func readFloats(r io.Reader, n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := readF32(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func writeVec3(w io.Writer, v mgl64.Vec3) error {
	return writeFloats(w, v[0], v[1], v[2])
}

func readVec3(r io.Reader) (mgl64.Vec3, error) {
	fs, err := readFloats(r, 3)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return mgl64.Vec3{fs[0], fs[1], fs[2]}, nil
}

func writeVec4(w io.Writer, v mgl64.Vec4) error {
	return writeFloats(w, v[0], v[1], v[2], v[3])
}

func readVec4(r io.Reader) (mgl64.Vec4, error) {
	fs, err := readFloats(r, 4)
	if err != nil {
		return mgl64.Vec4{}, err
	}
	return mgl64.Vec4{fs[0], fs[1], fs[2], fs[3]}, nil
}

func writeVec2(w io.Writer, v mgl64.Vec2) error {
	return writeFloats(w, v[0], v[1])
}

func readVec2(r io.Reader) (mgl64.Vec2, error) {
	fs, err := readFloats(r, 2)
	if err != nil {
		return mgl64.Vec2{}, err
	}
	return mgl64.Vec2{fs[0], fs[1]}, nil
}
