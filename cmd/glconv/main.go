// SPDX-License-Identifier: MIT

// Command glconv converts numbers to and from the Q16.16 and half-float bit
// formats and emits packed camera-view matrices.
//
//	glconv -mode fixed-encode 1.5 -2.25
//	glconv -mode half-decode 0x3c00 7c00
//	glconv -mode transform -translate 0,1,5 -rotate 10,45,0 -order le -out view.bin
//
// Conversion modes print one "value bits" line per argument. Every argument is
// processed; the exit status is 1 if any of them failed.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/glkit/fixed"
	"github.com/katalvlaran/glkit/half"
	"github.com/katalvlaran/glkit/matrix"
)

const usage = `usage: glconv -mode fixed-encode|fixed-decode|half-encode|half-decode <values...>
       glconv -mode transform [-translate x,y,z] [-rotate pitch,yaw,roll] [-order le|be] [-out file]`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status:
// 0 on success, 1 when a conversion failed, 2 on usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("glconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		mode      = fs.String("mode", "", "fixed-encode|fixed-decode|half-encode|half-decode|transform.")
		translate = fs.String("translate", "0,0,0", "Camera position x,y,z (transform mode).")
		rotate    = fs.String("rotate", "0,0,0", "Camera pitch,yaw,roll in degrees (transform mode).")
		order     = fs.String("order", "le", "Byte order of the packed matrix: le|be.")
		outPath   = fs.String("out", "", "Output file for the packed matrix (stdout when empty).")
		logFormat = fs.String("log-format", "text", "Log format on stderr: text|json.")
		verbose   = fs.Bool("v", false, "Enable debug logging.")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log, err := newLogger(stderr, *logFormat, *verbose)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	switch strings.ToLower(*mode) {
	case "fixed-encode", "fixed-decode", "half-encode", "half-decode":
		if fs.NArg() == 0 {
			fmt.Fprintln(stderr, usage)
			return 2
		}
		err = convertAll(stdout, strings.ToLower(*mode), fs.Args(), log)
	case "transform":
		err = writeTransform(stdout, *translate, *rotate, *order, *outPath, log)
	default:
		fmt.Fprintln(stderr, usage)
		return 2
	}
	if err != nil {
		log.Error("glconv failed", "mode", *mode, "err", err)
		return 1
	}

	return 0
}

func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", format)
	}
}

// convertAll converts every argument and reports all failures together.
func convertAll(w io.Writer, mode string, args []string, log *slog.Logger) error {
	var result *multierror.Error
	for _, arg := range args {
		line, err := convert(mode, arg)
		if err != nil {
			log.Warn("conversion failed", "mode", mode, "arg", arg, "err", err)
			result = multierror.Append(result, fmt.Errorf("%q: %w", arg, err))
			continue
		}
		log.Debug("converted", "mode", mode, "arg", arg, "result", line)
		fmt.Fprintln(w, line)
	}

	return result.ErrorOrNil()
}

func convert(mode, arg string) (string, error) {
	switch mode {
	case "fixed-encode":
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return "", err
		}
		v := fixed.FromFloat64(f)
		return fmt.Sprintf("%s 0x%08x", v, uint32(v.Bits())), nil
	case "fixed-decode":
		bits, err := parseHex(arg, 32)
		if err != nil {
			return "", err
		}
		v := fixed.FromBits(int32(uint32(bits)))
		return fmt.Sprintf("%s 0x%08x", v, uint32(v.Bits())), nil
	case "half-encode":
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return "", err
		}
		h := half.FromFloat64(f)
		return fmt.Sprintf("%s 0x%04x", h, h.Bits()), nil
	case "half-decode":
		bits, err := parseHex(arg, 16)
		if err != nil {
			return "", err
		}
		h := half.Value(bits)
		return fmt.Sprintf("%s 0x%04x", h, h.Bits()), nil
	}

	return "", fmt.Errorf("unknown mode: %s", mode)
}

// parseHex accepts bit patterns with or without a 0x prefix.
func parseHex(s string, bitSize int) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	return strconv.ParseUint(s, 16, bitSize)
}

// writeTransform builds a camera view and writes its 64-byte column-major image.
func writeTransform(stdout io.Writer, translate, rotate, order, outPath string, log *slog.Logger) error {
	var errs *multierror.Error
	pos, err := parseTriple(translate)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("-translate: %w", err))
	}
	angles, err := parseTriple(rotate)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("-rotate: %w", err))
	}
	var bo binary.AppendByteOrder
	switch strings.ToLower(order) {
	case "le", "little":
		bo = binary.LittleEndian
	case "be", "big":
		bo = binary.BigEndian
	default:
		errs = multierror.Append(errs, fmt.Errorf("-order: unknown byte order %q", order))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}

	m, err := matrix.NewDense(4, 4, matrix.WithLogger(log))
	if err != nil {
		return err
	}
	if err := m.LoadCameraView(pos[0], pos[1], pos[2], angles[0], angles[1], angles[2]); err != nil {
		return err
	}
	log.Debug("camera view", "matrix", m.String())
	buf := m.AppendBytes(make([]byte, 0, m.Len()*matrix.FloatBytes), bo)

	if outPath == "" {
		_, err = stdout.Write(buf)
		return err
	}
	if err := os.WriteFile(outPath, buf, 0o644); err != nil {
		return err
	}
	log.Info("wrote transform", "path", outPath, "bytes", len(buf), "order", order)

	return nil
}

func parseTriple(s string) ([3]float32, error) {
	var out [3]float32
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("want 3 comma-separated values, got %d", len(parts))
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return out, err
		}
		out[i] = float32(f)
	}

	return out, nil
}
