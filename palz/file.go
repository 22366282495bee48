package palz

import (
	"fmt"
	"io"
	"os"

	"github.com/fabiofdsantos/palz/util"
)

// Result describes one processed file.
type Result struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	SourceSize int64   `json:"source_size"`
	TargetSize int64   `json:"target_size"`
	Ratio      float64 `json:"ratio"`
	Stats      Stats   `json:"-"`
}

// CompressFile compresses path into path+".palz", replacing any previous
// output, and reports the compression ratio.
func CompressFile(path string) (Result, error) {
	res := Result{Source: path, Target: path + Extension}

	src, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	if res.SourceSize, err = sizeOf(path); err != nil {
		return res, err
	}

	err = util.WriteFileAtomic(res.Target, func(w io.Writer) error {
		var encErr error
		res.Stats, encErr = Encode(src, w)
		return encErr
	})
	if err != nil {
		return res, err
	}

	if res.TargetSize, err = sizeOf(res.Target); err != nil {
		return res, err
	}
	res.Ratio = Ratio(res.SourceSize, res.TargetSize)
	return res, nil
}

// DecompressFile expands the .palz file at path. The output goes to target,
// or when target is empty to path without its .palz suffix. A file lacking
// the suffix is rewritten in place. dict is used as the per-file dictionary.
func DecompressFile(path, target string, dict *Dictionary) (Result, error) {
	if target == "" {
		target = DecompressedName(path)
	}
	res := Result{Source: path, Target: target}

	f, err := os.Open(path)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()
	if res.SourceSize, err = sizeOf(path); err != nil {
		return res, err
	}

	// The whole file is decoded into a sibling before anything replaces
	// target, so target may equal path.
	err = util.WriteFileAtomic(target, func(w io.Writer) error {
		var decErr error
		res.Stats, decErr = Decode(f, w, dict)
		return decErr
	})
	if err != nil {
		return res, err
	}

	if res.TargetSize, err = sizeOf(res.Target); err != nil {
		return res, err
	}
	res.Ratio = Ratio(res.TargetSize, res.SourceSize)
	return res, nil
}

// DecompressedName returns the default output path for a .palz file.
func DecompressedName(path string) string {
	if util.IsDotPalz(path) {
		return util.TrimDotPalz(path)
	}
	return path
}

func sizeOf(path string) (int64, error) {
	size, err := util.FileSize(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStatus, err)
	}
	return size, nil
}
