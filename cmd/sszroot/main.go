// sszroot is a small debugging tool around the ssztypes containers: it
// builds a byte container from hex input and prints its SSZ encoding, hash
// tree root, or a Merkle proof for one of its bytes.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	"github.com/eth2030/ssztypes"
	"github.com/eth2030/ssztypes/log"
)

func main() {
	app := &cli.App{
		Name:  "sszroot",
		Usage: "encode, merkleize and prove SSZ bounded byte containers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "emit logs as JSON",
			},
			&cli.BoolFlag{
				Name:  "clamp-capacity",
				Usage: "clamp capacities exceeding the native range instead of failing",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "root",
				Usage:     "print the hash tree root of a byte container",
				ArgsUsage: "0xDATA",
				Flags:     containerFlags(),
				Action:    rootCmd,
			},
			{
				Name:      "proof",
				Usage:     "print the Merkle authentication path for one byte",
				ArgsUsage: "0xDATA",
				Flags: append(containerFlags(), &cli.Uint64Flag{
					Name:     "index",
					Usage:    "byte index to prove",
					Required: true,
				}),
				Action: proofCmd,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Error("sszroot failed", "err", err)
		os.Exit(1)
	}
}

func containerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Uint64Flag{
			Name:     "max",
			Usage:    "declared capacity in bytes",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "vector",
			Usage: "treat the input as a fixed-length vector instead of a list",
		},
	}
}

func setup(c *cli.Context) error {
	level, err := log.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	log.SetDefault(log.New(level, c.Bool("log-json")))
	if c.Bool("clamp-capacity") {
		ssztypes.SetOverflowPolicy(ssztypes.OverflowClamp)
	}
	return nil
}

func inputBytes(c *cli.Context) ([]byte, error) {
	if c.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one 0x-prefixed hex argument")
	}
	return hexutil.Decode(c.Args().First())
}

func rootCmd(c *cli.Context) error {
	data, err := inputBytes(c)
	if err != nil {
		return err
	}
	root, err := containerRoot(data, c.Uint64("max"), c.Bool("vector"))
	if err != nil {
		return err
	}
	log.Debug("computed root", "bytes", len(data), "max", c.Uint64("max"), "vector", c.Bool("vector"))
	fmt.Println(hexutil.Encode(root[:]))
	return nil
}

func containerRoot(data []byte, max uint64, vector bool) ([32]byte, error) {
	if vector {
		v, err := ssztypes.NewByteVector(data, max)
		if err != nil {
			return [32]byte{}, err
		}
		return v.HashTreeRoot()
	}
	l, err := ssztypes.NewByteList(data, max)
	if err != nil {
		return [32]byte{}, err
	}
	return l.HashTreeRoot()
}

func proofCmd(c *cli.Context) error {
	data, err := inputBytes(c)
	if err != nil {
		return err
	}
	max, index := c.Uint64("max"), c.Uint64("index")

	var proof [][32]byte
	if c.Bool("vector") {
		v, err := ssztypes.NewByteVector(data, max)
		if err != nil {
			return err
		}
		proof, err = v.Prove(index)
		if err != nil {
			return err
		}
	} else {
		l, err := ssztypes.NewByteList(data, max)
		if err != nil {
			return err
		}
		proof, err = l.Prove(index)
		if err != nil {
			return err
		}
	}
	for _, sibling := range proof {
		fmt.Println(hexutil.Encode(sibling[:]))
	}
	return nil
}
