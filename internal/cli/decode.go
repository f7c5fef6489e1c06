// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmath/frame"
	"github.com/katalvlaran/lvmath/scalar"
)

type decodeCommand struct {
	Kind  string `long:"kind" short:"k" description:"element kind of a raw payload"`
	Arity int    `long:"arity" short:"n" description:"print the values as vectors of this many components"`
	Frame bool   `long:"frame" description:"the input is a MessagePack frame; kind and shape come from it"`
	Args  struct {
		Hex string `positional-arg-name:"hex" required:"yes"`
	} `positional-args:"yes"`

	app *app
}

// Execute decodes the hex argument and prints it by shape.
func (c *decodeCommand) Execute([]string) error {
	log := c.app.logger("decode")

	if c.Arity < 0 {
		return fmt.Errorf("%w: negative --arity", ErrUsage)
	}
	raw, err := hex.DecodeString(c.Args.Hex)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	var f frame.Frame
	if c.Frame {
		if f, err = frame.Unmarshal(raw); err != nil {
			return err
		}
		if c.Kind != "" && c.Kind != f.Kind.String() {
			log.WithFields(logrus.Fields{"flag": c.Kind, "frame": f.Kind.String()}).Warn("--kind ignored, frame carries its own kind")
		}
	} else {
		if c.Kind == "" {
			return fmt.Errorf("%w: --kind is required without --frame", ErrUsage)
		}
		kind, err := scalar.ParseKind(c.Kind)
		if err != nil {
			return err
		}
		if len(raw) == 0 || len(raw)%kind.Width() != 0 {
			return fmt.Errorf("%w: %d bytes of %s", ErrPayload, len(raw), kind)
		}
		if f, err = frame.New(kind, []int{len(raw) / kind.Width()}, raw); err != nil {
			return err
		}
	}

	if c.Arity > 0 && (len(f.Shape) != 1 || f.Len()%c.Arity != 0) {
		return fmt.Errorf("%w: %d values with shape %v do not split into vectors of %d", ErrUsage, f.Len(), f.Shape, c.Arity)
	}

	vc, err := codecFor(f.Kind)
	if err != nil {
		return err
	}
	vals, err := vc.format(f)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"kind": f.Kind.String(), "shape": f.Shape, "frame": c.Frame}).Debug("decoded")

	_, err = io.WriteString(c.app.stdout, render(vals, f.Shape, c.Arity))
	return err
}
