package main

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/qram-go/qram-core/build"
	"github.com/qram-go/qram-core/envelope"
	"github.com/qram-go/qram-core/fountain"
)

var decodeCommand = cli.Command{
	Name:      "decode",
	Usage:     "decode an LT packet transcript back into a file",
	ArgsUsage: "<transcript>",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "out", Usage: "output path (default: derived from the file envelope, or stdout)"},
	},
	Action: runDecode,
}

func runDecode(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "decode")
	}
	path := ctx.Args().First()

	if _, err := loadConfig(ctx); err != nil {
		return err
	}
	log := build.SubLogger(build.SubsystemDecoder)

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %q", path)
	}
	defer f.Close()

	var dec *fountain.Decoder
	var origLen uint32
	var done bool

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		pkt, err := base64.StdEncoding.DecodeString(line)
		if err != nil {
			log.Warnf("skipping transcript line that is not valid base64: %v", err)
			continue
		}

		if dec == nil {
			runID, k, pktOrigLen, _, blockSize, ok := fountain.PacketHeader(pkt)
			if !ok {
				continue
			}
			dec = fountain.NewDecoder(k, uint32(blockSize), runID)
			origLen = pktOrigLen
		}

		if dec.PushPacket(pkt) {
			done = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading transcript")
	}

	if dec == nil {
		return errors.New("transcript contained no usable packets")
	}

	log.Infof("decoded %d/%d blocks, done=%v", dec.DecodedCount(), dec.BlockCount(), done)
	if !done {
		return errors.Errorf("transcript exhausted before completion (%d/%d blocks)", dec.DecodedCount(), dec.BlockCount())
	}

	payload := dec.GetResult(origLen)

	payload, wasCompressed, mismatch, err := envelope.MaybeDecompress(payload)
	if err != nil {
		return errors.Wrap(err, "decompressing payload")
	}
	if wasCompressed && mismatch {
		log.Warnf("decompressed length did not match the envelope's declared original length")
	}

	name, body, hasName := envelope.UnwrapFile(payload)
	if hasName {
		payload = body
	}

	outPath := ctx.String("out")
	switch {
	case outPath != "":
	case hasName:
		outPath = name
	default:
		if _, err := os.Stdout.Write(payload); err != nil {
			return errors.Wrap(err, "writing to stdout")
		}
		return nil
	}

	if err := os.WriteFile(outPath, payload, 0o644); err != nil {
		return errors.Wrapf(err, "writing %q", outPath)
	}
	fmt.Fprintf(os.Stderr, "wrote %d bytes to %s\n", len(payload), outPath)
	return nil
}
