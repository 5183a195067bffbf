// bletool inspects BLE security values from the command line: it converts
// passkeys between their numeric and ASCII forms, decodes pairing failure
// bytes, parses device addresses, generates pairing key pairs and lists
// stored bonds.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/blekit/blecore"
	"github.com/blekit/blecore/keystore"
	"github.com/blekit/blecore/smkeys"
)

func main() {
	app := cli.NewApp()
	app.Name = "bletool"
	app.Usage = "inspect BLE security values"
	app.Commands = []cli.Command{
		passkeyCommand(),
		failureCommand(),
		addrCommand(),
		keygenCommand(),
		bondsCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func passkeyCommand() cli.Command {
	return cli.Command{
		Name:      "passkey",
		Usage:     "convert a passkey between numeric and ASCII form",
		ArgsUsage: "<value>",
		Action: func(c *cli.Context) error {
			arg := c.Args().First()
			if arg == "" {
				return errors.New("missing passkey value")
			}

			n, err := strconv.ParseUint(arg, 10, 32)
			if err != nil || n > 999999 {
				return errors.Errorf("passkey must be a number in [0, 999999], got %q", arg)
			}

			p := blecore.NewPasskeyAscii(blecore.PasskeyNum(n))
			fmt.Printf("numeric: %06d\n", p.Num())
			fmt.Printf("ascii:   %s\n", p)
			return nil
		},
	}
}

func failureCommand() cli.Command {
	return cli.Command{
		Name:      "failure",
		Usage:     "decode a pairing failed reason byte",
		ArgsUsage: "<hex byte>",
		Action: func(c *cli.Context) error {
			arg := strings.TrimPrefix(c.Args().First(), "0x")
			if arg == "" {
				return errors.New("missing reason byte")
			}

			n, err := strconv.ParseUint(arg, 16, 8)
			if err != nil {
				return errors.Errorf("invalid reason byte %q", arg)
			}

			f, err := blecore.PairingFailureFromByte(byte(n))
			if err != nil {
				return err
			}

			fmt.Printf("0x%02X: %s\n", byte(f), f)
			return nil
		},
	}
}

func addrCommand() cli.Command {
	return cli.Command{
		Name:      "addr",
		Usage:     "parse a device address",
		ArgsUsage: "<aa:bb:cc:dd:ee:ff>",
		Flags: []cli.Flag{
			cli.IntFlag{
				Name:  "type, t",
				Usage: "peer address type byte (0-3)",
			},
		},
		Action: func(c *cli.Context) error {
			arg := c.Args().First()
			if arg == "" {
				return errors.New("missing address")
			}

			a, err := blecore.ParseAddress(arg)
			if err != nil {
				return err
			}

			t, err := blecore.PeerAddressTypeFromByte(byte(c.Int("type")))
			if err != nil {
				return err
			}

			fmt.Printf("address: %s (%s)\n", a, t)
			fmt.Printf("wire:    %s\n", hex.EncodeToString(a.Bytes()))
			if a.IsZero() {
				fmt.Println("note: this is the reserved invalid address")
			}
			return nil
		},
	}
}

func keygenCommand() cli.Command {
	return cli.Command{
		Name:  "keygen",
		Usage: "generate a pairing key pair and print its public coordinates",
		Action: func(c *cli.Context) error {
			kp, err := smkeys.Generate()
			if err != nil {
				return err
			}

			x, y, err := kp.PublicCoords()
			if err != nil {
				return err
			}

			fmt.Printf("x:    %s\n", x)
			fmt.Printf("y:    %s\n", y)
			fmt.Printf("wire: %s\n", hex.EncodeToString(smkeys.WireBytes(x, y)))
			return nil
		},
	}
}

func bondsCommand() cli.Command {
	return cli.Command{
		Name:  "bonds",
		Usage: "list entries in a bond file",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "file, f",
				Value: "bonds.json",
				Usage: "bond file to read",
			},
		},
		Action: func(c *cli.Context) error {
			ks := keystore.New(c.String("file"))

			entries, err := ks.All()
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("no bonds stored")
				return nil
			}

			for _, e := range entries {
				kind := "sc"
				if e.Legacy {
					kind = "legacy"
				}
				fmt.Printf("%s (%s, %s) ltk %s\n", e.Address, e.AddressType, kind, e.LongTermKey)
			}
			return nil
		},
	}
}
