package main

import (
	"os"
	"sync/atomic"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	bytering "github.com/cloneable/bytering"
)

// CLI replaces the teacher's hardcoded TCP_PORT/N constants with
// configurable flags, the way a demo command in this corpus is expected to
// expose its knobs (kong.Parse over a struct, e.g. the CLI-driven pack
// examples).
type CLI struct {
	Addr       string `help:"TCP address to listen on." default:":9000"`
	Capacity   uint64 `help:"Ring buffer capacity in bytes; must be a power of two." default:"4096"`
	Align      uint64 `help:"Alignment of the ring's backing storage, in bytes." default:"64"`
	TotalBytes uint64 `help:"Total number of bytes the upstream generator produces." default:"1000000000"`
	Seed       uint64 `help:"PRNG seed for the upstream generator; 0 selects the built-in default." default:"0"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("bytepump"),
		kong.Description("Streams a deterministic byte sequence through a shared ring buffer to connected TCP clients."),
	)

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	sugar := log.Sugar()

	ring := bytering.MustNew(cli.Capacity, cli.Align)
	consumer, producer := ring.IntoParts()

	var exhausted atomic.Bool

	pipeR, pipeW, err := os.Pipe()
	if err != nil {
		sugar.Fatalw("failed to create upstream pipe", "error", err)
	}

	gen := newXorshiftGenerator(cli.Seed)
	go func() {
		if err := gen.writeTo(pipeW, cli.TotalBytes); err != nil {
			sugar.Errorw("generator write failed", "error", err)
		}
	}()

	go func() {
		src := newSyscallVectored(pipeR)
		if err := runProducerPump(producer, src, &exhausted); err != nil {
			sugar.Errorw("producer pump failed", "error", err)
		}
		sugar.Infow("producer exhausted", "totalBytes", cli.TotalBytes)
	}()

	server, err := NewServer(cli.Addr, consumer, producer, &exhausted, sugar)
	if err != nil {
		sugar.Fatalw("failed to start server", "error", err)
	}
	server.Start()
}
