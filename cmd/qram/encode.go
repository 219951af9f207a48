package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/qram-go/qram-core/build"
	"github.com/qram-go/qram-core/envelope"
	"github.com/qram-go/qram-core/fountain"
)

var encodeCommand = cli.Command{
	Name:      "encode",
	Usage:     "encode a file into an LT packet transcript",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "out", Usage: "transcript output path (default: stdout)"},
		cli.UintFlag{Name: "block-size", Usage: "override the configured block size"},
		cli.BoolFlag{Name: "no-compress", Usage: "skip the gzip compression envelope"},
		cli.BoolFlag{Name: "no-filename", Usage: "skip the filename envelope"},
		cli.Uint64Flag{Name: "run-id", Usage: "override the generated session id"},
	},
	Action: runEncode,
}

func runEncode(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "encode")
	}
	path := ctx.Args().First()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	log := build.SubLogger(build.SubsystemEncoder)

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %q", path)
	}

	payload := data
	if cfg.Envelope.Filename && !ctx.Bool("no-filename") {
		payload, err = envelope.WrapFile(filenameOf(path), payload)
		if err != nil {
			return errors.Wrap(err, "wrapping filename envelope")
		}
	}

	if cfg.Envelope.Compress && !ctx.Bool("no-compress") {
		wrapped, compressed := envelope.MaybeCompress(payload)
		payload = wrapped
		log.Debugf("compression envelope kept=%v size=%d", compressed, len(payload))
	}

	blockSize := cfg.Codec.BlockSize
	if ctx.IsSet("block-size") {
		blockSize = uint32(ctx.Uint("block-size"))
	}

	runID := fountain.NewRunID()
	if ctx.IsSet("run-id") {
		runID = uint32(ctx.Uint64("run-id"))
	}

	enc := fountain.NewEncoder(payload, blockSize, runID)
	log.Infof("session run_id=%d k=%d block_size=%d orig_len=%d",
		enc.RunID(), enc.BlockCount(), enc.BlockSize(), enc.OriginalLen())

	out := os.Stdout
	if outPath := ctx.String("out"); outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return errors.Wrapf(err, "creating %q", outPath)
		}
		defer f.Close()
		out = f
	}

	// Emit a modest overhead factor's worth of packets: enough that a
	// decoder fed this transcript in any order, with any duplication,
	// will virtually always complete. Typical overhead to finish a
	// session is small; this margin covers the tail.
	packetCount := int(enc.BlockCount()) * 3
	if packetCount < 8 {
		packetCount = 8
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stderr)
	tw.AppendHeader(table.Row{"seq", "k", "block_size", "bytes"})

	for i := 0; i < packetCount; i++ {
		pkt := enc.NextPacket()
		if _, err := out.Write([]byte(base64.StdEncoding.EncodeToString(pkt) + "\n")); err != nil {
			return errors.Wrap(err, "writing transcript")
		}
		if i < 5 || i == packetCount-1 {
			tw.AppendRow(table.Row{i, enc.BlockCount(), enc.BlockSize(), len(pkt)})
		}
	}
	fmt.Fprintln(os.Stderr, tw.Render())

	return nil
}

// filenameOf strips everything but the base name, so the envelope never
// leaks path information from the sender's filesystem.
func filenameOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
