package enginecache

import (
	"fmt"
	"io"
	"os"
)

// WriteShaderBytecode writes bytecode as a u64 length prefix followed by
// the raw bytes, the framing used for
// assets/ShaderCache/<name>_<entry>_DEBUG.bin files.
func WriteShaderBytecode(w io.Writer, bytecode []byte) error {
	if err := writeU64(w, uint64(len(bytecode))); err != nil {
		return err
	}
	_, err := w.Write(bytecode)
	return err
}

// ReadShaderBytecode reads a length-prefixed bytecode blob written by
// WriteShaderBytecode.
func ReadShaderBytecode(r io.Reader) ([]byte, error) {
	n, err := readU64(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("enginecache: reading bytecode: %w", err)
	}
	return buf, nil
}

// ShaderCacheStale reports whether the compiled shader at cachePath must be
// regenerated: true if it doesn't exist, or its mtime precedes sourcePath's.
// Compilation itself is the caller's responsibility.
func ShaderCacheStale(cachePath, sourcePath string) (bool, error) {
	cacheInfo, err := os.Stat(cachePath)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("enginecache: stat %s: %w", cachePath, err)
	}

	sourceInfo, err := os.Stat(sourcePath)
	if err != nil {
		return false, fmt.Errorf("enginecache: stat %s: %w", sourcePath, err)
	}

	return cacheInfo.ModTime().Before(sourceInfo.ModTime()), nil
}
