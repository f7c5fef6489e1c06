// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmath/frame"
	"github.com/katalvlaran/lvmath/mat"
	"github.com/katalvlaran/lvmath/scalar"
)

type matmulCommand struct {
	File  string `long:"file" short:"f" required:"yes" description:"YAML file with kind (default f64) and row-major matrices a and b"`
	Frame bool   `long:"frame" description:"print the product as a hex MessagePack frame"`

	app *app
}

// operands is the document read by matmul:
//
//	kind: i32
//	a: [[1, 2], [3, 4]]
//	b: [[5], [6]]
//
// Entries stay textual until the kind is known, so an integer kind rejects
// 1.5 instead of truncating it.
type operands struct {
	Kind string     `yaml:"kind"`
	A    [][]string `yaml:"a"`
	B    [][]string `yaml:"b"`
}

// Execute loads the operand file and prints the product.
func (c *matmulCommand) Execute([]string) error {
	log := c.app.logger("matmul").WithField("file", c.File)

	raw, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	var doc operands
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}
	kind := scalar.F64
	if doc.Kind != "" {
		if kind, err = scalar.ParseKind(doc.Kind); err != nil {
			return err
		}
	}
	log = log.WithField("kind", kind.String())
	log.Debug("operands loaded")

	switch kind {
	case scalar.F32:
		return multiply(c, doc, parseFloat[float32](32), log)
	case scalar.F64:
		return multiply(c, doc, parseFloat[float64](64), log)
	case scalar.I32:
		return multiply(c, doc, parseSigned[int32](32), log)
	case scalar.I64:
		return multiply(c, doc, parseSigned[int64](64), log)
	}
	return fmt.Errorf("%w: matmul takes f32, f64, i32 or i64, got %s", ErrUnsupportedKind, kind)
}

// parseRows converts one textual operand, naming the first bad entry.
func parseRows[T scalar.Number](name string, rows [][]string, parse func(string) (T, error)) ([][]T, error) {
	out := make([][]T, len(rows))
	for r, row := range rows {
		out[r] = make([]T, len(row))
		for c, s := range row {
			v, err := parse(s)
			if err != nil {
				return nil, fmt.Errorf("%w: operand %s[%d][%d]: %w", ErrUsage, name, r, c, err)
			}
			out[r][c] = v
		}
	}
	return out, nil
}

func multiply[T scalar.Number](c *matmulCommand, doc operands, parse func(string) (T, error), log *logrus.Entry) error {
	av, err := parseRows("a", doc.A, parse)
	if err != nil {
		return err
	}
	bv, err := parseRows("b", doc.B, parse)
	if err != nil {
		return err
	}
	a, err := mat.New(av)
	if err != nil {
		return fmt.Errorf("operand a: %w", err)
	}
	b, err := mat.New(bv)
	if err != nil {
		return fmt.Errorf("operand b: %w", err)
	}
	p, err := mat.Product(a, b)
	if err != nil {
		return err
	}
	rows, cols := p.Shape()
	log.WithFields(logrus.Fields{"rows": rows, "cols": cols}).Debug("product computed")

	if !c.Frame {
		_, err = io.WriteString(c.app.stdout, p.String())
		return err
	}
	f, err := frame.ForMat(p)
	if err != nil {
		return err
	}
	out, err := frame.Marshal(f)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.app.stdout, hex.EncodeToString(out))
	return err
}
