// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmath/frame"
	"github.com/katalvlaran/lvmath/scalar"
)

type encodeCommand struct {
	Kind  string `long:"kind" short:"k" required:"yes" description:"element kind (i8..i128, u8..u128, f32, f64)"`
	Frame bool   `long:"frame" description:"wrap the payload in a MessagePack frame"`
	Args  struct {
		Values []string `positional-arg-name:"value" required:"1"`
	} `positional-args:"yes"`

	app *app
}

// Execute encodes the positional values and prints hex.
func (c *encodeCommand) Execute([]string) error {
	log := c.app.logger("encode")

	kind, err := scalar.ParseKind(c.Kind)
	if err != nil {
		return err
	}
	vc, err := codecFor(kind)
	if err != nil {
		return err
	}
	f, err := vc.encode(c.Args.Values)
	if err != nil {
		return err
	}

	out := f.Payload
	if c.Frame {
		if out, err = frame.Marshal(f); err != nil {
			return err
		}
	}
	log.WithFields(logrus.Fields{"kind": kind.String(), "values": len(c.Args.Values), "bytes": len(out), "frame": c.Frame}).
		Debug("encoded")

	_, err = fmt.Fprintln(c.app.stdout, hex.EncodeToString(out))
	return err
}
